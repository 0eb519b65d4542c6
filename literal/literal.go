// Package literal implements interned glob-pattern fragments (Literal) and
// the per-query scratch object (SearchableString) that caches literal
// match results across all rules still in contention for one input.
//
// Unlike the upstream implementation this was distilled from, the Literal
// interner here is scoped to one Parser instance rather than held in
// process-wide global state (spec.md §9's "prefer scoping them to the
// Parser instance" design note): each Parser owns its own Interner, so
// Literal ids - and therefore SearchableString cache layouts - never
// outlive or cross between independently built Parsers.
package literal

import (
	"sync"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/browscap/simd"
)

// Literal is an interned, immutable pattern fragment: a string that may
// contain the single-character wildcard '?' but never '*'. Two Literal
// values are equal iff they are the same instance; the Interner
// guarantees that interning equal strings returns the same instance.
type Literal struct {
	str string
	id  int

	autoOnce sync.Once
	auto     *ahocorasick.Automaton
}

// String returns the literal's underlying text.
func (l *Literal) String() string {
	return l.str
}

// ID returns the literal's dense, monotonically assigned id. Ids start at
// 0 and are never recycled for the lifetime of the Interner that produced
// them; SearchableString uses them as flat-array cache indices.
func (l *Literal) ID() int {
	return l.id
}

// Len returns the length of the literal's string, in bytes.
func (l *Literal) Len() int {
	return len(l.str)
}

// HasWildcard reports whether the literal contains a '?' single-character
// wildcard. Wildcard-free literals are located in an input with an
// exact-match Aho-Corasick automaton; literals with '?' require a
// character-by-character scan.
func (l *Literal) HasWildcard() bool {
	for i := 0; i < len(l.str); i++ {
		if l.str[i] == '?' {
			return true
		}
	}
	return false
}

// Matches reports whether, at byte offset from in text, every character of
// the literal equals the corresponding character of text, treating '?' as
// matching any single character. Returns false if the literal would run
// past the end of text, or if from is negative.
func (l *Literal) Matches(text []byte, from int) bool {
	n := len(l.str)
	if from < 0 || from+n > len(text) {
		return false
	}
	for i := 0; i < n; i++ {
		c := l.str[i]
		if c != text[from+i] && c != '?' {
			return false
		}
	}
	return true
}

// Requires reports whether the literal's own string contains substr -
// used by the contains-probe pre-filter (spec.md §4.8) to decide, at
// build time, which rules could ever be eliminated by a given probe.
func (l *Literal) Requires(substr string) bool {
	if len(substr) == 0 {
		return true
	}
	if l.HasWildcard() || containsWildcard(substr) {
		// '?' is a single-char wildcard in our alphabet, not a literal
		// question mark; a literal containing '?' cannot be tested for
		// plain substring containment byte-for-byte against a probe that
		// itself has no wildcard semantics, so fall back to exact text
		// containment (the '?' is only ever compared as itself here).
		return simpleContains(l.str, substr)
	}
	return simd.Memmem([]byte(l.str), []byte(substr)) >= 0
}

func containsWildcard(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '?' {
			return true
		}
	}
	return false
}

func simpleContains(s, substr string) bool {
	if len(substr) > len(s) {
		return false
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}

// Interner deduplicates literal strings within one Parser, assigning each
// distinct string a dense, monotonically increasing id on first
// occurrence. Not safe for concurrent use - it is only ever touched during
// the single-threaded build phase.
type Interner struct {
	byString map[string]*Literal
	ordered  []*Literal
}

// NewInterner returns an empty literal interner.
func NewInterner() *Interner {
	return &Interner{byString: make(map[string]*Literal)}
}

// Intern returns the unique Literal for s, creating and assigning it the
// next dense id if this is the first time s has been interned.
func (in *Interner) Intern(s string) *Literal {
	if existing, ok := in.byString[s]; ok {
		return existing
	}
	l := &Literal{str: s, id: len(in.ordered)}
	in.byString[s] = l
	in.ordered = append(in.ordered, l)
	return l
}

// Len returns the number of distinct literals interned so far; also the
// id that would be assigned to the next new literal.
func (in *Interner) Len() int {
	return len(in.ordered)
}

// All returns every interned literal, indexed by id (All()[i].ID() == i).
func (in *Interner) All() []*Literal {
	out := make([]*Literal, len(in.ordered))
	copy(out, in.ordered)
	return out
}
