// Package rule implements glob pattern decomposition, matching and the
// deterministic ordering the pre-filter and catalog depend on (spec.md
// §4.1, §4.6, §4.7).
package rule

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/coregx/browscap/capability"
	"github.com/coregx/browscap/internal/conv"
	"github.com/coregx/browscap/literal"
)

// ErrEmptyPattern is returned when a normalized pattern has no characters
// at all - an empty catalog row pattern.
var ErrEmptyPattern = errors.New("rule: empty pattern")

// ErrFixedPattern is returned for a pattern that is exactly "*": such a
// pattern carries no information a rule can usefully anchor on, and is
// reserved for the wildcard sentinel produced by Wildcard.
var ErrFixedPattern = errors.New("rule: pattern is a bare wildcard")

var collapseStars = regexp.MustCompile(`\*+`)

// Normalize lowercases pattern and collapses any run of consecutive '*'
// into a single '*', matching the glob semantics where "**" and "*" are
// equivalent.
func Normalize(pattern string) string {
	lower := strings.ToLower(pattern)
	if strings.Contains(lower, "**") {
		return collapseStars.ReplaceAllString(lower, "*")
	}
	return lower
}

// Rule is one compiled catalog entry: an optional anchored prefix and
// postfix literal plus an ordered list of interior literals to be matched
// greedily between them, alongside the capability tuple it reports on a
// match.
type Rule struct {
	prefix  *literal.Literal
	infixes []*literal.Literal // nil means the pattern had no '*' at all
	postfix *literal.Literal
	length  uint32
	caps    *capability.Capabilities
}

// New decomposes pattern (already normalized - see Normalize) into a Rule
// backed by literals drawn from interner, associated with caps. It
// returns ErrEmptyPattern or ErrFixedPattern for patterns that carry no
// literal content to anchor on.
func New(pattern string, caps *capability.Capabilities, interner *literal.Interner) (*Rule, error) {
	parts := splitOnStars(pattern)
	if len(parts) == 0 {
		return nil, ErrEmptyPattern
	}

	if len(parts) == 1 {
		if parts[0] == "*" {
			return nil, ErrFixedPattern
		}
		return &Rule{
			prefix: interner.Intern(parts[0]),
			length: conv.IntToUint32(len(pattern)),
			caps:   caps,
		}, nil
	}

	first := parts[0]
	last := parts[len(parts)-1]
	hasPrefix := first != "*"
	hasPostfix := last != "*"

	lo := 0
	if hasPrefix {
		lo = 1
	}
	hi := len(parts)
	if hasPostfix {
		hi = len(parts) - 1
	}

	infixes := make([]*literal.Literal, 0, hi-lo)
	for _, part := range parts[lo:hi] {
		if part == "*" {
			continue
		}
		infixes = append(infixes, interner.Intern(part))
	}

	r := &Rule{infixes: infixes, length: conv.IntToUint32(len(pattern)), caps: caps}
	if hasPrefix {
		r.prefix = interner.Intern(first)
	}
	if hasPostfix {
		r.postfix = interner.Intern(last)
	}
	return r, nil
}

// Wildcard builds the catch-all sentinel rule (spec.md §4.9): it has no
// prefix or postfix, an empty (non-nil) infix list so it matches any
// input of any length, and reports caps on every match.
func Wildcard(caps *capability.Capabilities) *Rule {
	return &Rule{infixes: []*literal.Literal{}, length: 1, caps: caps}
}

// Length returns the original pattern's length in bytes, the primary key
// of the global rule ordering (spec.md §4.7).
func (r *Rule) Length() int {
	return int(r.length)
}

// splitOnStars splits pattern into alternating literal/"*" parts, the Go
// analogue of a call that separates a glob into its wildcard-delimited
// fragments. Consecutive non-'*' runs become one part; each '*' becomes
// its own one-character part.
func splitOnStars(pattern string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '*' {
			if i > start {
				parts = append(parts, pattern[start:i])
			}
			parts = append(parts, "*")
			start = i + 1
		}
	}
	if start < len(pattern) {
		parts = append(parts, pattern[start:])
	}
	return parts
}

// Capabilities returns the tuple this rule reports on a match.
func (r *Rule) Capabilities() *capability.Capabilities {
	return r.caps
}

// Prefix returns the rule's anchored prefix literal, or nil if the
// pattern began with '*'. Used by the pre-filter to build prefix masks
// without re-deriving rule structure.
func (r *Rule) Prefix() *literal.Literal {
	return r.prefix
}

// Pattern reconstructs the glob pattern this rule was built from,
// re-inserting '*' at every wildcard boundary. Used only for the lexical
// tie-break in the global ordering (spec.md §4.7) - equal-length rules
// are vanishingly rare in practice, so this is never on the hot path.
func (r *Rule) Pattern() string {
	var b strings.Builder
	if r.prefix != nil {
		b.WriteString(r.prefix.String())
	}
	if r.infixes != nil {
		b.WriteByte('*')
		for _, lit := range r.infixes {
			b.WriteString(lit.String())
			b.WriteByte('*')
		}
	}
	if r.postfix != nil {
		b.WriteString(r.postfix.String())
	}
	return b.String()
}

// Requires reports whether any of this rule's literals contains substr,
// so that the rule cannot match an input that lacks substr - used to
// build the pre-filter's contains masks (spec.md §4.8): if it returns
// true, the rule can be eliminated whenever substr is absent from the
// query.
func (r *Rule) Requires(substr string) bool {
	if r.prefix != nil && r.prefix.Requires(substr) {
		return true
	}
	if r.postfix != nil && r.postfix.Requires(substr) {
		return true
	}
	for _, lit := range r.infixes {
		if lit.Requires(substr) {
			return true
		}
	}
	return false
}

// Matches reports whether search satisfies the rule: the prefix and
// postfix literals (if any) anchor the match window, and the interior
// literals are then located greedily, in order, without backtracking,
// within that window (spec.md §4.6).
func (r *Rule) Matches(search *literal.SearchableString) bool {
	var start int
	if r.prefix == nil {
		start = 0
	} else if search.StartsWith(r.prefix) {
		start = r.prefix.Len()
	} else {
		return false
	}

	var end int
	if r.postfix == nil {
		end = search.Len() - 1
	} else if search.EndsWith(r.postfix) {
		end = search.Len() - 1 - r.postfix.Len()
	} else {
		return false
	}

	return r.matchInfixes(search, start, end)
}

func (r *Rule) matchInfixes(search *literal.SearchableString, start, end int) bool {
	if r.infixes == nil {
		// No wildcard at all: prefix and postfix must meet exactly.
		return start == end+1
	}
	if len(r.infixes) == 0 {
		// A single '*' between (possibly absent) prefix and postfix.
		return start <= end+1
	}

	from := start
	for _, lit := range r.infixes {
		pos := firstIndexAtOrAfter(search, lit, from)
		if pos < 0 {
			return false
		}
		from = pos + lit.Len()
		if from > end+1 {
			return false
		}
	}
	return true
}

func firstIndexAtOrAfter(search *literal.SearchableString, lit *literal.Literal, from int) int {
	for _, idx := range search.IndicesOf(lit) {
		if idx >= from {
			return idx
		}
	}
	return -1
}

// Order sorts rules in place by descending pattern length, breaking ties
// by ascending lexical order of the reconstructed pattern string
// (spec.md §4.7). Pattern() is only invoked for rules sharing a length
// with at least one other rule, since it is otherwise irrelevant to the
// ordering.
func Order(rules []*Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].length > rules[j].length
	})

	i := 0
	for i < len(rules) {
		j := i + 1
		for j < len(rules) && rules[j].length == rules[i].length {
			j++
		}
		if j-i > 1 {
			group := rules[i:j]
			sort.SliceStable(group, func(a, b int) bool {
				return group[a].Pattern() < group[b].Pattern()
			})
		}
		i = j
	}
}
