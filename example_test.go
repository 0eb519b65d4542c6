package browscap_test

import (
	"fmt"
	"strings"

	"github.com/coregx/browscap"
	"github.com/coregx/browscap/capability"
	"github.com/coregx/browscap/catalog"
)

// Example demonstrates loading a small catalog and classifying a
// User-Agent string.
func Example() {
	row := func(pattern string, cells map[int]string) string {
		out := make([]string, 50)
		out[0] = pattern
		for i, v := range cells {
			out[i] = v
		}
		return strings.Join(out, ",")
	}

	csv := strings.Join([]string{
		"PropertyName,IS_MASTER_PARENT,PARENT,COMMENT,BROWSER,BROWSER_TYPE",
		row("mozilla/5.0*iphone*safari*", map[int]string{
			4: "Safari", 12: "iOS", 42: "Mobile Phone",
		}),
	}, "\n")

	proj := capability.MergeWithDefault(nil)
	cat, err := catalog.Load(strings.NewReader(csv), proj)
	if err != nil {
		fmt.Println(err)
		return
	}

	parser := browscap.NewParser(cat, proj)
	caps := parser.Parse("Mozilla/5.0 (iPhone; CPU iPhone OS 10_2 like Mac OS X) AppleWebKit/602.1 Safari/602.1")

	browser, _ := caps.GetBrowser(parser.Projection())
	platform, _ := caps.GetPlatform(parser.Projection())
	fmt.Println(browser, platform)

	// Output:
	// Safari iOS
}
