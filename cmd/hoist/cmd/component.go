package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/go-hoist/hoist/cmd/hoist/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "component",
		Short: "Generate a component definition stub",
		Long: `Generate a Go file declaring a component type and its host
Definition, in a package under the current module.

The tag defaults to the component name lowercased with an "x-" prefix.

Examples:
  hoist component Counter
  hoist component Counter x-counter
  hoist component Counter x-counter ./internal/widgets`,
		Usage: "hoist component <Name> [tag] [directory]",
		Run:   runComponent,
	})
}

var componentNameRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

const componentTemplate = `package {{.Package}}

import "{{.RuntimeModule}}/pkg/host"

// {{.Name}} is a component hosted on the <{{.Tag}}> element.
type {{.Name}} struct {
}

// {{.Name}}Definition describes how the runtime instantiates {{.Name}}.
var {{.Name}}Definition = host.Definition{
	Tag:     "{{.Tag}}",
	Factory: func() any { return &{{.Name}}{} },
}
`

type componentTemplateData struct {
	Package       string
	Name          string
	Tag           string
	RuntimeModule string
}

func runComponent(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("component name is required\n\nUsage: hoist component <Name> [tag] [directory]")
	}

	name := args[0]
	if !componentNameRe.MatchString(name) {
		return fmt.Errorf("component name %q must be an exported Go identifier", name)
	}

	tag := "x-" + strings.ToLower(name)
	if len(args) > 1 {
		tag = args[1]
	}
	if strings.TrimSpace(tag) == "" {
		return fmt.Errorf("tag cannot be empty")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	if _, err := config.Resolve(root); err != nil {
		return err
	}

	dir := root
	if len(args) > 2 {
		dir = filepath.Join(root, filepath.Clean(args[2]))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	path := filepath.Join(dir, strings.ToLower(name)+".go")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	data := componentTemplateData{
		Package:       packageName(dir),
		Name:          name,
		Tag:           tag,
		RuntimeModule: "github.com/go-hoist/hoist",
	}

	tmpl, err := template.New("component").Parse(componentTemplate)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render component stub: %w", err)
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

// packageName derives a usable package identifier from the directory name.
func packageName(dir string) string {
	base := strings.ToLower(filepath.Base(dir))
	var sb strings.Builder
	for _, r := range base {
		if r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_' {
			sb.WriteRune(r)
		}
	}
	name := sb.String()
	if name == "" || name[0] >= '0' && name[0] <= '9' {
		return "components"
	}
	return name
}
