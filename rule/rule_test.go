package rule

import (
	"testing"

	"github.com/coregx/browscap/capability"
	"github.com/coregx/browscap/literal"
)

func newSearch(in *literal.Interner, text string) *literal.SearchableString {
	return literal.NewSearchableString([]byte(text), in.Len())
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Mozilla/5.0*":    "mozilla/5.0*",
		"a**b":            "a*b",
		"a***b**c":        "a*b*c",
		"NoWildcardsHere": "nowildcardshere",
	}
	for in, want := range cases {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewEmptyPattern(t *testing.T) {
	in := literal.NewInterner()
	if _, err := New("", capability.NewDefault(capability.MergeWithDefault(nil)), in); err != ErrEmptyPattern {
		t.Errorf("New(\"\") error = %v, want ErrEmptyPattern", err)
	}
}

func TestNewFixedPattern(t *testing.T) {
	in := literal.NewInterner()
	if _, err := New("*", capability.NewDefault(capability.MergeWithDefault(nil)), in); err != ErrFixedPattern {
		t.Errorf("New(\"*\") error = %v, want ErrFixedPattern", err)
	}
}

func TestMatchesFixedLiteral(t *testing.T) {
	in := literal.NewInterner()
	proj := capability.MergeWithDefault(nil)
	caps := capability.NewDefault(proj)
	r, err := New("mozilla/5.0", caps, in)
	if err != nil {
		t.Fatal(err)
	}
	if r.Length() != len("mozilla/5.0") {
		t.Errorf("Length() = %d", r.Length())
	}

	if !r.Matches(newSearch(in, "mozilla/5.0")) {
		t.Error("exact literal should match")
	}
	if r.Matches(newSearch(in, "mozilla/5.0x")) {
		t.Error("a pattern with no wildcard must match the input exactly")
	}
}

func TestMatchesPrefixAndPostfix(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	r, err := New("mozilla/5.0*safari*", caps, in)
	if err != nil {
		t.Fatal(err)
	}

	if !r.Matches(newSearch(in, "mozilla/5.0 (iphone) safari/604.1")) {
		t.Error("expected match")
	}
	if r.Matches(newSearch(in, "mozilla/4.0 (iphone) safari/604.1")) {
		t.Error("prefix mismatch should not match")
	}
}

func TestMatchesInteriorOrderedNoBacktrack(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	r, err := New("a*b*c*d", caps, in)
	if err != nil {
		t.Fatal(err)
	}

	if !r.Matches(newSearch(in, "a b c d")) {
		t.Error("expected match when interior literals appear in declared order")
	}
	if r.Matches(newSearch(in, "a c b d")) {
		t.Error("interior literals must be matched in declared order, without backtracking")
	}
}

func TestMatchesWithWildcardLiteral(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	r, err := New("android?4.0", caps, in)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Matches(newSearch(in, "android 4.0")) {
		t.Error("'?' in the pattern should match any single character")
	}
}

func TestWildcardSentinelMatchesAnything(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	w := Wildcard(caps)
	for _, text := range []string{"", "anything at all", "mozilla/5.0"} {
		if !w.Matches(newSearch(in, text)) {
			t.Errorf("wildcard sentinel should match %q", text)
		}
	}
}

func TestPatternRoundTrip(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	cases := []string{"mozilla/5.0*safari*", "a*b*c", "exact-literal", "*suffixonly"}
	for _, p := range cases {
		r, err := New(p, caps, in)
		if err != nil {
			t.Fatalf("New(%q): %v", p, err)
		}
		if got := r.Pattern(); got != p {
			t.Errorf("Pattern() round trip = %q, want %q", got, p)
		}
	}
}

func TestOrderDescendingLengthThenLexical(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))

	mk := func(p string) *Rule {
		r, err := New(p, caps, in)
		if err != nil {
			t.Fatalf("New(%q): %v", p, err)
		}
		return r
	}

	rules := []*Rule{mk("bb"), mk("a*bb"), mk("aaa"), mk("a*b")}
	Order(rules)

	var got []string
	for _, r := range rules {
		got = append(got, r.Pattern())
	}
	want := []string{"a*bb", "a*b", "aaa", "bb"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Order() = %v, want %v", got, want)
		}
	}
}

func TestRequires(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	r, err := New("mozilla/5.0*safari*", caps, in)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Requires("mozilla") {
		t.Error("Requires should be true for a substring of the prefix")
	}
	if !r.Requires("safari") {
		t.Error("Requires should be true for a substring of the postfix")
	}
	if r.Requires("msie") {
		t.Error("Requires should be false for an absent substring")
	}
}
