// Package browscap parses HTTP User-Agent strings against a browscap
// pattern catalog and reports the capability tuple of the best-matching
// rule: the longest pattern that matches, ties broken lexically, with a
// catch-all default browser sentinel that always matches last.
//
// Example:
//
//	parser, err := browscap.LoadDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	caps := parser.Parse("Mozilla/5.0 (iPhone; CPU iPhone OS 10_2 like Mac OS X) AppleWebKit/602.3.12 (KHTML, like Gecko) Version/10.0 Mobile/14C92 Safari/602.1")
//	browser, _ := caps.GetBrowser(parser.Projection())
//	fmt.Println(browser) // "Safari"
package browscap

import (
	"strings"

	"github.com/coregx/browscap/capability"
	"github.com/coregx/browscap/catalog"
	"github.com/coregx/browscap/fields"
	"github.com/coregx/browscap/literal"
	"github.com/coregx/browscap/prefilter"
	"github.com/coregx/browscap/rule"
)

// DefaultFileName is the catalog file LoadDefault and LoadWithFields read
// from the current working directory.
const DefaultFileName = "browscap_sorted.csv"

// Parser answers Parse queries against one compiled catalog. A Parser is
// read-only and lock-free once constructed: every exported method is
// safe to call concurrently from any number of goroutines (spec.md §5).
type Parser struct {
	proj        *capability.Projection
	rules       []*rule.Rule
	literals    *literal.Interner
	filters     []*prefilter.Filter
	defaultCaps *capability.Capabilities
}

// LoadDefault loads DefaultFileName from the current working directory,
// projected onto the default field set (BROWSER, BROWSER_TYPE,
// BROWSER_MAJOR_VERSION, PLATFORM, PLATFORM_VERSION, DEVICE_TYPE).
func LoadDefault() (*Parser, error) {
	return LoadWithFields(nil)
}

// LoadWithFields loads DefaultFileName projected onto the union of
// requested and the default field set.
func LoadWithFields(requested []*fields.Field) (*Parser, error) {
	return LoadFromPath(requested, DefaultFileName)
}

// LoadFromPath loads the catalog at path, projected onto the union of
// requested and the default field set.
func LoadFromPath(requested []*fields.Field, path string) (*Parser, error) {
	proj := capability.MergeWithDefault(requested)
	cat, err := catalog.LoadFile(path, proj)
	if err != nil {
		return nil, err
	}
	return NewParser(cat, proj), nil
}

// NewParser assembles a Parser directly from an already-loaded Catalog
// and Projection, for callers that build a Catalog from something other
// than a file on disk (an embedded asset, a database blob, a test
// fixture).
func NewParser(cat *catalog.Catalog, proj *capability.Projection) *Parser {
	return &Parser{
		proj:        proj,
		rules:       cat.Rules,
		literals:    cat.Literals,
		filters:     prefilter.Build(cat.Rules, cat.Literals),
		defaultCaps: capability.NewDefault(proj),
	}
}

// Projection returns the field projection this Parser was built with -
// pass it to a Capabilities getter to read a value out of anything Parse
// returns.
func (p *Parser) Projection() *capability.Projection {
	return p.proj
}

// Parse classifies a User-Agent string against the compiled catalog,
// returning the capability tuple of the first matching rule in the
// global ordering (spec.md §4.7), or an all-Unknown tuple for an empty
// input. Every rule in the pre-filter's surviving candidate set is tried
// in ascending index order - which is also descending-pattern-length
// order, since that is how rules were sorted at load time - so the first
// hit is always the correct, most-specific match. The catalog's wildcard
// sentinel rule, sorted last, guarantees a hit is always found once
// candidates run out of more specific rules to try.
func (p *Parser) Parse(input string) *capability.Capabilities {
	if input == "" {
		return p.defaultCaps
	}

	lower := strings.ToLower(input)
	search := literal.NewSearchableString([]byte(lower), p.literals.Len())

	candidates := prefilter.Query(search, p.filters, len(p.rules))
	for i, ok := candidates.NextSet(0); ok; i, ok = candidates.NextSet(i + 1) {
		r := p.rules[i]
		if r.Matches(search) {
			return r.Capabilities()
		}
	}
	return p.defaultCaps
}
