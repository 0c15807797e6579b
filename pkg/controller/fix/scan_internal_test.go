package fix

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/josephmate/atfix/pkg/config"
	"github.com/spf13/afero"
)

func TestController_parseLine(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name  string
		line  string
		exp   *Violation
		isErr bool
	}{
		{
			name: "unrelated",
			line: "unrelated",
		},
		{
			name: "checkstyle format",
			line: "[checkstyle] [ERROR] src/main/java/Foo.java:42: Javadoc at-clause '@param' should be preceded with an empty line. [JavadocParagraph]",
			exp: &Violation{
				File: "src/main/java/Foo.java",
				Line: 42,
			},
		},
		{
			name: "checkstyle format with throws",
			line: "[checkstyle] [ERROR] Foo.java:7: Javadoc at-clause '@throws' should be preceded with an empty line. [JavadocParagraph]",
			exp: &Violation{
				File: "Foo.java",
				Line: 7,
			},
		},
		{
			name: "sevntu format",
			line: "[ERROR] src/main/java/Bar.java:[13] (javadoc) JavadocParagraph: Javadoc at-clause '@return' should be preceded with an empty line.",
			exp: &Violation{
				File: "src/main/java/Bar.java",
				Line: 13,
			},
		},
		{
			name: "different rule is ignored",
			line: "[checkstyle] [ERROR] Foo.java:42: Line is longer than 100 characters. [LineLength]",
		},
		{
			name: "trailing garbage breaks the whole-line match",
			line: "[checkstyle] [ERROR] Foo.java:42: Javadoc at-clause '@param' should be preceded with an empty line. [JavadocParagraph] extra",
		},
	}
	c := &Controller{
		matchers: builtinMatchers,
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			v, err := c.parseLine(d.line)
			if err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			if diff := cmp.Diff(d.exp, v); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestController_parseLine_invalidLineNumber(t *testing.T) {
	t.Parallel()
	m := &config.Matcher{
		Pattern:   `issue (.*) at (\w+)`,
		PathGroup: 1,
		LineGroup: 2,
	}
	if err := m.Init(); err != nil {
		t.Fatal(err)
	}
	c := &Controller{
		matchers: []*config.Matcher{m},
	}
	if _, err := c.parseLine("issue Foo.java at abc"); err == nil {
		t.Fatal("error must be returned")
	}
}

func TestController_scanLog(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	logContent := strings.Join([]string{
		"[INFO] Scanning for projects...",
		"[checkstyle] [ERROR] A.java:4: Javadoc at-clause '@param' should be preceded with an empty line. [JavadocParagraph]",
		"[INFO] BUILD FAILURE",
		"[ERROR] B.java:[9] (javadoc) JavadocParagraph: Javadoc at-clause '@throws' should be preceded with an empty line.",
		"[checkstyle] [ERROR] A.java:20: Javadoc at-clause '@return' should be preceded with an empty line. [JavadocParagraph]",
	}, "\n") + "\n"
	if err := afero.WriteFile(fs, "build.log", []byte(logContent), 0o644); err != nil {
		t.Fatal(err)
	}
	c := &Controller{
		fs:       fs,
		matchers: builtinMatchers,
	}
	violations, err := c.scanLog("build.log")
	if err != nil {
		t.Fatal(err)
	}
	exp := []*Violation{
		{File: "A.java", Line: 4},
		{File: "B.java", Line: 9},
		{File: "A.java", Line: 20},
	}
	if diff := cmp.Diff(exp, violations); diff != "" {
		t.Fatal(diff)
	}
}

func TestController_scanLog_missingLog(t *testing.T) {
	t.Parallel()
	c := &Controller{
		fs:       afero.NewMemMapFs(),
		matchers: builtinMatchers,
	}
	if _, err := c.scanLog("missing.log"); err == nil {
		t.Fatal("error must be returned")
	}
}
