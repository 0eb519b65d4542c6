package catalog

import (
	"strings"
	"testing"

	"github.com/coregx/browscap/capability"
)

// row builds a well-formed 50-column data row: the pattern in column 0,
// then 49 field cells (columns 1-49, IS_LITE_MODE .. RENDERING_ENGINE_MAKER),
// filling named columns by index and leaving everything else blank.
func row(pattern string, cells map[int]string) string {
	fieldsN := 50
	out := make([]string, fieldsN)
	out[0] = pattern
	for i, v := range cells {
		out[i] = v
	}
	return strings.Join(out, ",")
}

func TestLoadBuildsOrderedRulesWithSentinel(t *testing.T) {
	header := "PropertyName,IS_MASTER_PARENT,PARENT,COMMENT,BROWSER,BROWSER_TYPE"
	csv := strings.Join([]string{
		header,
		row("mozilla/5.0*safari*", map[int]string{4: "Safari", 5: "Browser"}),
		row("msie*windows*", map[int]string{4: "IE", 5: "Browser"}),
	}, "\n")

	proj := capability.MergeWithDefault(nil)
	cat, err := Load(strings.NewReader(csv), proj)
	if err != nil {
		t.Fatal(err)
	}

	if len(cat.Rules) != 3 {
		t.Fatalf("got %d rules, want 3 (2 data rows + sentinel)", len(cat.Rules))
	}
	last := cat.Rules[len(cat.Rules)-1]
	if last.Pattern() != "*" {
		t.Errorf("wildcard sentinel should reconstruct to \"*\", got %q", last.Pattern())
	}
}

func TestLoadSkipsShortRows(t *testing.T) {
	header := "PropertyName,IS_MASTER_PARENT"
	csv := strings.Join([]string{
		header,
		"too,short,row",
		row("mozilla/5.0*", map[int]string{4: "Chrome"}),
	}, "\n")

	proj := capability.MergeWithDefault(nil)
	cat, err := Load(strings.NewReader(csv), proj)
	if err != nil {
		t.Fatal(err)
	}
	// one valid data row plus the sentinel
	if len(cat.Rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(cat.Rules))
	}
}

func TestLoadEmptyCellsBecomeUnknown(t *testing.T) {
	header := "PropertyName"
	csv := strings.Join([]string{
		header,
		row("mozilla/5.0*", map[int]string{4: "  "}),
	}, "\n")

	proj := capability.MergeWithDefault(nil)
	cat, err := Load(strings.NewReader(csv), proj)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := cat.Rules[0].Capabilities().GetBrowser(proj); !ok || v != capability.UnknownValue {
		t.Errorf("blank cell should map to UnknownValue, got %q, %v", v, ok)
	}
}

func TestLoadRejectsEmptyFile(t *testing.T) {
	proj := capability.MergeWithDefault(nil)
	if _, err := Load(strings.NewReader(""), proj); err == nil {
		t.Error("expected an error loading an empty catalog")
	}
}
