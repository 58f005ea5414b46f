package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <directory> [module-path]",
	Short: "Create a new wml project",
	Long: `Create a new wml project in a new directory.

This command creates:
  - A new directory at the specified path
  - go.mod with the specified module path
  - wml.yaml with project defaults
  - main.go with a starter view served by the dev server

The module path defaults to the directory basename.

Examples:
  wml init myapp
  wml init myapp github.com/username/myapp`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInit,
}

// initTemplateData contains the data for init template substitution.
type initTemplateData struct {
	ModulePath string
	AppName    string
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := filepath.Clean(args[0])
	appName := filepath.Base(dir)

	modulePath := appName
	if len(args) > 1 {
		modulePath = args[1]
	}

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %s already exists", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data := initTemplateData{ModulePath: modulePath, AppName: appName}
	files := map[string]string{
		"go.mod":   goModTemplate,
		"wml.yaml": configTemplate,
		"main.go":  mainTemplate,
	}
	for name, tmpl := range files {
		if err := writeTemplate(filepath.Join(dir, name), tmpl, data); err != nil {
			return err
		}
	}

	fmt.Printf("Created wml project in %s\n\nNext steps:\n  cd %s\n  go mod tidy\n  go run .\n", dir, dir)
	return nil
}

func writeTemplate(path, tmpl string, data initTemplateData) error {
	t, err := template.New(filepath.Base(path)).Parse(tmpl)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return t.Execute(f, data)
}

const goModTemplate = `module {{.ModulePath}}

go 1.24.0

require github.com/go-wml/wml v0.1.0
`

const configTemplate = `app:
  name: {{.AppName}}
server:
  addr: localhost:8780
`

const mainTemplate = `package main

import (
	"log"

	"github.com/go-wml/wml/pkg/core"
	"github.com/go-wml/wml/pkg/devserver"
	"github.com/go-wml/wml/pkg/dom"
)

type app struct {
	Greeting string
}

func view(v *core.View, ctx any) (dom.Node, error) {
	a := ctx.(*app)
	return core.NewElement(v, "div", map[string]any{
		"wml":  map[string]any{"id": "greeting"},
		"html": map[string]any{"class": "app"},
	}, []any{a.Greeting})
}

func main() {
	host := dom.NewMemoryHost()
	v := core.New(host, view, &app{Greeting: "Hello from {{.AppName}}"})
	log.Println("serving on http://localhost:8780")
	log.Fatal(devserver.New(v, host).ListenAndServe("localhost:8780"))
}
`
