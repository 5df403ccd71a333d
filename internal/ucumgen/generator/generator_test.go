package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hl7-ucum/ucum-go/internal/ucumgen/analyzer"
)

func sampleAnalyzed() *analyzer.Analyzed {
	return &analyzer.Analyzed{
		Atoms: []analyzer.AnalyzedAtom{
			{
				Code: "m", SecondaryCode: "M", Symbol: "m", Names: []string{"meter"},
				Base: true, Metric: true,
				Factor: decimal.NewFromInt(1),
				Comp:   analyzer.Composition{analyzer.Length: 1},
			},
			{
				Code: "N", SecondaryCode: "N", Names: []string{"newton"},
				Class: "si", Property: "force", Metric: true,
				Factor: decimal.NewFromInt(1000),
				Comp:   analyzer.Composition{analyzer.Length: 1, analyzer.Mass: 1, analyzer.Time: -2},
			},
		},
		Prefixes: []analyzer.AnalyzedPrefix{
			{Code: "k", SecondaryCode: "K", Symbol: "k", Names: []string{"kilo"}, Value: decimal.NewFromInt(1000)},
		},
	}
}

func TestGenerateWritesFormattedGoFiles(t *testing.T) {
	dir := t.TempDir()
	g := New(Config{OutputDir: dir})

	err := g.Generate(sampleAnalyzed())
	require.NoError(t, err)

	atomsSrc, err := os.ReadFile(filepath.Join(dir, "atoms_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(atomsSrc), "package ucumdata")
	assert.Contains(t, string(atomsSrc), `"N"`)
	assert.Contains(t, string(atomsSrc), "Code generated by ucumgen")
	assert.Contains(t, string(atomsSrc), `decimal.RequireFromString("1000")`)

	prefixesSrc, err := os.ReadFile(filepath.Join(dir, "prefixes_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(prefixesSrc), `"k"`)
	assert.Contains(t, string(prefixesSrc), "package ucumdata")
}

func TestGenerateCustomPackageName(t *testing.T) {
	dir := t.TempDir()
	g := New(Config{OutputDir: dir, PackageName: "customdata"})

	require.NoError(t, g.Generate(sampleAnalyzed()))

	atomsSrc, err := os.ReadFile(filepath.Join(dir, "atoms_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(atomsSrc), "package customdata")
}
