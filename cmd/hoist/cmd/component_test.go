package cmd

import (
	"strings"
	"testing"
	"text/template"
)

func TestComponentNameValidation(t *testing.T) {
	valid := []string{"Counter", "NavBar", "X2"}
	for _, name := range valid {
		if !componentNameRe.MatchString(name) {
			t.Errorf("%q should be a valid component name", name)
		}
	}

	invalid := []string{"", "counter", "2Fast", "Nav-Bar", "Nav Bar"}
	for _, name := range invalid {
		if componentNameRe.MatchString(name) {
			t.Errorf("%q should be rejected", name)
		}
	}
}

func TestPackageName(t *testing.T) {
	tests := []struct {
		dir  string
		want string
	}{
		{"/tmp/project/widgets", "widgets"},
		{"/tmp/project/my-widgets", "mywidgets"},
		{"/tmp/project/3d", "components"},
		{"/tmp/project/UI", "ui"},
	}
	for _, tt := range tests {
		if got := packageName(tt.dir); got != tt.want {
			t.Errorf("packageName(%q) = %q, want %q", tt.dir, got, tt.want)
		}
	}
}

func TestComponentTemplateRenders(t *testing.T) {
	tmpl, err := template.New("component").Parse(componentTemplate)
	if err != nil {
		t.Fatalf("template failed to parse: %v", err)
	}

	var sb strings.Builder
	err = tmpl.Execute(&sb, componentTemplateData{
		Package:       "widgets",
		Name:          "Counter",
		Tag:           "x-counter",
		RuntimeModule: "github.com/go-hoist/hoist",
	})
	if err != nil {
		t.Fatalf("template failed to execute: %v", err)
	}

	out := sb.String()
	for _, want := range []string{
		"package widgets",
		"type Counter struct",
		`Tag:     "x-counter"`,
		"func() any { return &Counter{} }",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered stub should contain %q\n%s", want, out)
		}
	}
}
