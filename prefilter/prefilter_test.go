package prefilter

import (
	"testing"

	"github.com/coregx/browscap/capability"
	"github.com/coregx/browscap/literal"
	"github.com/coregx/browscap/rule"
)

func mustRule(t *testing.T, in *literal.Interner, pattern string) *rule.Rule {
	t.Helper()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	r, err := rule.New(pattern, caps, in)
	if err != nil {
		t.Fatalf("rule.New(%q): %v", pattern, err)
	}
	return r
}

func candidateSet(bs interface {
	NextSet(uint) (uint, bool)
}) []uint {
	var out []uint
	i, ok := bs.NextSet(0)
	for ok {
		out = append(out, i)
		i, ok = bs.NextSet(i + 1)
	}
	return out
}

func TestQueryEliminatesNonMatchingPrefix(t *testing.T) {
	in := literal.NewInterner()
	rules := []*rule.Rule{
		mustRule(t, in, "mozilla/5.0*safari*"),
		mustRule(t, in, "msie*windows*"),
	}
	filters := Build(rules, in)

	search := literal.NewSearchableString([]byte("mozilla/5.0 applewebkit safari/604"), in.Len())
	candidates := Query(search, filters, len(rules))

	got := candidateSet(candidates)
	foundRule0 := false
	for _, i := range got {
		if i == 1 {
			t.Error("rule requiring 'msie' should be eliminated for a mozilla/5.0 query")
		}
		if i == 0 {
			foundRule0 = true
		}
	}
	if !foundRule0 {
		t.Error("rule matching the mozilla/5.0 prefix should remain a candidate")
	}
}

func TestQueryNeverEliminatesWildcard(t *testing.T) {
	in := literal.NewInterner()
	caps := capability.NewDefault(capability.MergeWithDefault(nil))
	rules := []*rule.Rule{rule.Wildcard(caps)}
	filters := Build(rules, in)

	search := literal.NewSearchableString([]byte("anything goes here"), in.Len())
	candidates := Query(search, filters, len(rules))

	got := candidateSet(candidates)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("candidates = %v, want [0]", got)
	}
}

func TestBuildProbeCounts(t *testing.T) {
	in := literal.NewInterner()
	rules := []*rule.Rule{mustRule(t, in, "mozilla/5.0*")}
	filters := Build(rules, in)
	want := len(prefixProbes) + len(containsProbes)
	if len(filters) != want {
		t.Errorf("Build produced %d filters, want %d", len(filters), want)
	}
}
