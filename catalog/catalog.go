// Package catalog loads a browscap-format CSV file into an ordered,
// pre-filter-ready rule set: it is the one layer in this module that
// touches the outside world (spec.md marks the catalog's own file format
// an external collaborator, out of scope for redesign).
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/coregx/browscap/capability"
	"github.com/coregx/browscap/fields"
	"github.com/coregx/browscap/literal"
	"github.com/coregx/browscap/rule"
)

// minColumns is the fewest columns a data row must carry to be
// considered well-formed. Fields whose column index lies past the end of
// an accepted row read as capability.UnknownValue. Short rows are skipped,
// not an error - matching the source catalog, which tolerates the
// occasional malformed line.
const minColumns = 48

// Catalog is the compiled, query-ready result of loading one CSV file:
// the globally ordered rule set plus the literal interner those rules'
// patterns were built against. A Parser pairs this with a Projection to
// answer queries.
type Catalog struct {
	Rules    []*rule.Rule
	Literals *literal.Interner
}

// LoadFile opens path and loads it as a browscap CSV catalog projected
// onto proj.
func LoadFile(path string, proj *capability.Projection) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, proj)
}

// Load reads a browscap CSV catalog from r, projected onto proj: every
// row's pattern is normalized and decomposed into a Rule (spec.md §4.1),
// its field cells are mapped onto proj's positions (empty or missing
// cells become capability.UnknownValue), the rules are brought into the
// deterministic global order, and a wildcard sentinel rule is appended
// after them as the last rule (spec.md §4.7, §4.9).
func Load(r io.Reader, proj *capability.Projection) (*Catalog, error) {
	start := time.Now()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("catalog: empty catalog file")
		}
		return nil, fmt.Errorf("catalog: reading header: %w", err)
	}

	literals := literal.NewInterner()
	caps := capability.NewInterner()
	fieldset := proj.Fields()

	var rules []*rule.Rule
	skipped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: reading row: %w", err)
		}

		built, ok := buildRule(record, fieldset, literals, caps)
		if !ok {
			skipped++
			continue
		}
		rules = append(rules, built)
	}

	rule.Order(rules)
	rules = append(rules, rule.Wildcard(capability.NewWildcard(proj)))

	log.Printf("catalog: loaded %d rules (%d skipped) in %s", len(rules), skipped, time.Since(start))

	return &Catalog{Rules: rules, Literals: literals}, nil
}

func buildRule(record []string, fieldset []*fields.Field, literals *literal.Interner, caps *capability.Interner) (*rule.Rule, bool) {
	if len(record) < minColumns {
		return nil, false
	}

	pattern := rule.Normalize(record[0])
	values := extractValues(record, fieldset)
	capTuple := caps.Intern(values)

	r, err := rule.New(pattern, capTuple, literals)
	if err != nil {
		return nil, false
	}
	return r, true
}

func extractValues(record []string, fieldset []*fields.Field) []string {
	out := make([]string, len(fieldset))
	for i, f := range fieldset {
		if f.Index >= len(record) {
			out[i] = capability.UnknownValue
			continue
		}
		v := strings.TrimSpace(record[f.Index])
		if v == "" {
			out[i] = capability.UnknownValue
			continue
		}
		out[i] = v
	}
	return out
}
