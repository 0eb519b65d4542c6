package literal

import (
	"github.com/coregx/ahocorasick"
)

// tristate caches a lazily-computed boolean per literal id: unknown until
// first computed, then pinned to true or false for the lifetime of the
// SearchableString.
type tristate struct {
	known []bool
	value []bool
}

func newTristate(size int) tristate {
	return tristate{known: make([]bool, size), value: make([]bool, size)}
}

func (t *tristate) get(id int) (bool, bool) {
	if id >= len(t.known) || !t.known[id] {
		return false, false
	}
	return t.value[id], true
}

func (t *tristate) set(id int, v bool) {
	if id >= len(t.known) {
		grown := make([]bool, id+1)
		copy(grown, t.known)
		t.known = grown
		grownV := make([]bool, id+1)
		copy(grownV, t.value)
		t.value = grownV
	}
	t.known[id] = true
	t.value[id] = v
}

// SearchableString is a per-query scratch object: the lowercased input
// text plus three memoising caches keyed by Literal id (spec.md §3/§4.5).
// It must never be shared across queries or goroutines - each call to
// Parser.Parse constructs and discards its own instance.
type SearchableString struct {
	text      []byte
	positions []([]int) // lazily populated, indexed by literal id
	hasPos    []bool
	prefix    tristate
	postfix   tristate
}

// NewSearchableString builds a scratch object over the lowercased input
// text. maxLiteralID should be the interner's current high-water mark
// (Interner.Len()) so the positions table can be sized up front; ids
// above that bound still work via lazy growth.
func NewSearchableString(text []byte, maxLiteralID int) *SearchableString {
	return &SearchableString{
		text:      text,
		positions: make([][]int, maxLiteralID),
		hasPos:    make([]bool, maxLiteralID),
		prefix:    newTristate(maxLiteralID),
		postfix:   newTristate(maxLiteralID),
	}
}

// Len returns the length, in bytes, of the lowercased input.
func (s *SearchableString) Len() int {
	return len(s.text)
}

// StartsWith reports whether the input begins with lit, memoising the
// result by lit's id.
func (s *SearchableString) StartsWith(lit *Literal) bool {
	if v, ok := s.prefix.get(lit.id); ok {
		return v
	}
	v := lit.Matches(s.text, 0)
	s.prefix.set(lit.id, v)
	return v
}

// EndsWith reports whether the input ends with lit, memoising the result
// by lit's id.
func (s *SearchableString) EndsWith(lit *Literal) bool {
	if v, ok := s.postfix.get(lit.id); ok {
		return v
	}
	v := lit.Matches(s.text, len(s.text)-lit.Len())
	s.postfix.set(lit.id, v)
	return v
}

// IndicesOf returns every offset at which lit matches the input, computed
// and cached on first demand. The returned slice must not be mutated; it
// is reused across every caller that asks for the same literal within
// this SearchableString.
func (s *SearchableString) IndicesOf(lit *Literal) []int {
	id := lit.id
	if id < len(s.hasPos) && s.hasPos[id] {
		return s.positions[id]
	}

	found := s.findIndices(lit)

	if id >= len(s.hasPos) {
		growPos := make([][]int, id+1)
		copy(growPos, s.positions)
		s.positions = growPos
		growHas := make([]bool, id+1)
		copy(growHas, s.hasPos)
		s.hasPos = growHas
	}
	s.positions[id] = found
	s.hasPos[id] = true
	return found
}

func (s *SearchableString) findIndices(lit *Literal) []int {
	if auto := lit.automaton(); auto != nil {
		return findIndicesViaAutomaton(auto, s.text)
	}
	return findIndicesScan(lit, s.text)
}

// findIndicesScan is the portable fallback: scan every position, checking
// the literal's first character (or '?') before attempting a full match.
// Used for literals containing '?' (which an exact-match automaton cannot
// represent).
func findIndicesScan(lit *Literal, text []byte) []int {
	str := lit.str
	if len(str) == 0 {
		return nil
	}
	first := str[0]
	var out []int
	for i := 0; i+len(str) <= len(text); i++ {
		if (text[i] == first || first == '?') && lit.Matches(text, i) {
			out = append(out, i)
		}
	}
	return out
}

// findIndicesViaAutomaton enumerates every occurrence of a single-pattern
// Aho-Corasick automaton by repeatedly searching from just past the start
// of the previous hit. Because the automaton holds exactly one pattern,
// there is no ambiguity about which pattern a hit belongs to, regardless
// of the library's tie-breaking rules for multi-pattern automata.
func findIndicesViaAutomaton(auto *ahocorasick.Automaton, text []byte) []int {
	var out []int
	at := 0
	for at <= len(text) {
		m := auto.Find(text, at)
		if m == nil {
			break
		}
		out = append(out, m.Start)
		at = m.Start + 1
	}
	return out
}

// automaton lazily builds and caches a single-pattern Aho-Corasick
// automaton for wildcard-free literals. Building is idempotent and safe
// for concurrent callers (multiple SearchableStrings across goroutines
// may race to build the same literal's automaton).
func (l *Literal) automaton() *ahocorasick.Automaton {
	if l.HasWildcard() || len(l.str) == 0 {
		return nil
	}
	l.autoOnce.Do(func() {
		builder := ahocorasick.NewBuilder()
		builder.AddPattern([]byte(l.str))
		if auto, err := builder.Build(); err == nil {
			l.auto = auto
		}
	})
	return l.auto
}
