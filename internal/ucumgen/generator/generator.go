// Package generator renders an analyzer.Analyzed catalog into the Go
// source files that make up internal/ucumdata: the compiled-in atom and
// prefix tables pkg/ucum builds its recognizer and evaluator from.
package generator

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"text/template"

	"github.com/hl7-ucum/ucum-go/internal/ucumgen/analyzer"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Config controls where generated output is written.
type Config struct {
	OutputDir   string
	PackageName string
}

// Generator renders an analyzed catalog into Go source files.
type Generator struct {
	config Config
}

// New creates a Generator with the given configuration.
func New(config Config) *Generator {
	if config.PackageName == "" {
		config.PackageName = "ucumdata"
	}
	return &Generator{config: config}
}

// Generate writes atoms_gen.go, prefixes_gen.go, and grammar_gen.go under
// config.OutputDir.
func (g *Generator) Generate(a *analyzer.Analyzed) error {
	if err := os.MkdirAll(g.config.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	atomsData := struct {
		PackageName string
		Atoms       []atomRecord
	}{
		PackageName: g.config.PackageName,
		Atoms:       renderAtoms(a.Atoms),
	}
	if err := g.writeTemplateFile("atoms_gen.go", "atoms.go.tmpl", atomsData); err != nil {
		return err
	}

	prefixesData := struct {
		PackageName string
		Prefixes    []prefixRecord
	}{
		PackageName: g.config.PackageName,
		Prefixes:    renderPrefixes(a.Prefixes),
	}
	if err := g.writeTemplateFile("prefixes_gen.go", "prefixes.go.tmpl", prefixesData); err != nil {
		return err
	}

	grammar := renderGrammar(g.config.PackageName, a.Atoms, a.Prefixes)
	if err := g.writeTemplateFile("grammar_gen.go", "grammar.go.tmpl", grammar); err != nil {
		return err
	}

	return nil
}

func loadTemplate(name string) (*template.Template, error) {
	content, err := templatesFS.ReadFile("templates/" + name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return tmpl, nil
}

func executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", tmpl.Name(), err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}

func (g *Generator) writeTemplateFile(outputName, templateName string, data any) error {
	tmpl, err := loadTemplate(templateName)
	if err != nil {
		return err
	}

	outputPath := filepath.Join(g.config.OutputDir, outputName)
	content, err := executeTemplate(tmpl, data)
	if err != nil {
		unformattedPath := outputPath + ".unformatted"
		if writeErr := os.WriteFile(unformattedPath, content, 0o600); writeErr != nil {
			return fmt.Errorf("%w (also failed to write debug file: %v)", err, writeErr)
		}
		return fmt.Errorf("%w (unformatted output saved to %s)", err, unformattedPath)
	}

	return os.WriteFile(outputPath, content, 0o644)
}
