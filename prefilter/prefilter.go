// Package prefilter implements the bitmap pre-filter that narrows the
// candidate rule set for a query before any rule is actually matched
// (spec.md §4.8): each probe - a fixed prefix or contains check - carries
// a precomputed bitmask of every rule it could eliminate, and a query
// tests every probe and ORs in the masks of those absent from the input.
package prefilter

import (
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/coregx/browscap/literal"
	"github.com/coregx/browscap/rule"
)

// prefixProbes anchors at the start of the input. These two cover the
// overwhelming majority of real user agent strings, which all begin
// with one of the two historical Mozilla compatibility tokens.
var prefixProbes = [...]string{
	"mozilla/5.0",
	"mozilla/4",
}

// containsProbes is the fixed set of substrings every query is tested
// against, reproduced verbatim so the resulting masks stay bit-for-bit
// compatible with the catalog this engine was distilled from: digits and
// a handful of browser/platform/version tokens common enough to rule out
// large swaths of the catalog in one check.
var containsProbes = [...]string{
	"-",
	"0",
	"1",
	"2",
	"3",
	"4",
	"5",
	"6",
	"7",
	"8",
	"9",
	"profile",
	"player",
	"compatible",
	"android",
	"google",
	"tab",
	"transformer",
	"lenovo",
	"micro",
	"edge",
	"safari",
	"opera",
	"chrome",
	"firefox",
	"msie",
	"chromium",
	"cpu os ",
	"cpu iphone os ",
	"windows nt ",
	"mac os x ",
	"linux",
	"bsd",
	"windows phone",
	"iphone",
	"pad",
	"blackberry",
	"nokia",
	"alcatel",
	"ucbrowser",
	"mobile",
	"ie",
	"mercury",
	"samsung",
	"browser",
	"wow64",
	"silk",
	"lunascape",
	"crios",
	"epiphany",
	"konqueror",
	"version",
	"rv:",
	"build",
	"bot",
	"like gecko",
	"applewebkit",
	"trident",
	"mozilla",
	"windows nt 4",
	"windows nt 5.0",
	"windows nt 5.1",
	"windows nt 5.2",
	"windows nt 6.0",
	"windows nt 6.1",
	"windows nt 6.2",
	"windows nt 6.3",
	"windows nt 10.0",
	"android?4.0",
	"android?4.1",
	"android?4.2",
	"android?4.3",
	"android?4.4",
	"android?2.3",
	"android?5",
}

type kind int

const (
	prefixKind kind = iota
	containsKind
)

// Filter pairs one probe with the precomputed bitmask of rules it can
// eliminate: mask bit i is set when rule i actually needs the probe (its
// prefix starts with it, for a prefix probe; or some part of it contains
// it, for a contains probe). When the probe is absent from a query, every
// rule whose bit is set can be skipped.
type Filter struct {
	kind kind
	lit  *literal.Literal
	mask *bitset.BitSet
}

// Build compiles one Filter per fixed probe against rules, sized for a
// catalog of len(rules) entries. interner supplies the Literal instances
// the resulting filters test queries against.
func Build(rules []*rule.Rule, interner *literal.Interner) []*Filter {
	filters := make([]*Filter, 0, len(prefixProbes)+len(containsProbes))

	for _, probe := range prefixProbes {
		filters = append(filters, &Filter{
			kind: prefixKind,
			lit:  interner.Intern(probe),
			mask: prefixMask(rules, probe),
		})
	}
	for _, probe := range containsProbes {
		filters = append(filters, &Filter{
			kind: containsKind,
			lit:  interner.Intern(probe),
			mask: containsMask(rules, probe),
		})
	}
	return filters
}

func prefixMask(rules []*rule.Rule, probe string) *bitset.BitSet {
	mask := bitset.New(uint(len(rules)))
	for i, r := range rules {
		p := r.Prefix()
		if p != nil && strings.HasPrefix(p.String(), probe) {
			mask.Set(uint(i))
		}
	}
	return mask
}

func containsMask(rules []*rule.Rule, probe string) *bitset.BitSet {
	mask := bitset.New(uint(len(rules)))
	for i, r := range rules {
		if r.Requires(probe) {
			mask.Set(uint(i))
		}
	}
	return mask
}

// Query returns the set of candidate rule indices - every rule that was
// not eliminated by any filter - as a BitSet of length totalRules.
// Iterate it in ascending order with NextSet(0).
func Query(search *literal.SearchableString, filters []*Filter, totalRules int) *bitset.BitSet {
	eliminated := bitset.New(uint(totalRules))
	for _, f := range filters {
		if !f.present(search) {
			eliminated.InPlaceUnion(f.mask)
		}
	}
	return eliminated.Complement()
}

func (f *Filter) present(search *literal.SearchableString) bool {
	switch f.kind {
	case prefixKind:
		return search.StartsWith(f.lit)
	default:
		return len(search.IndicesOf(f.lit)) > 0
	}
}
