// Command ucumgen renders the declarative UCUM catalog into the Go source
// files compiled into internal/ucumdata.
//
// Usage:
//
//	go run ./cmd/ucumgen generate
//	go run ./cmd/ucumgen generate --catalog path/to/catalog.json --output internal/ucumdata
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hl7-ucum/ucum-go/internal/ucumgen/analyzer"
	"github.com/hl7-ucum/ucum-go/internal/ucumgen/catalog"
	"github.com/hl7-ucum/ucum-go/internal/ucumgen/generator"
)

var version = "dev"

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ucumgen",
		Short: "ucumgen generates internal/ucumdata from the UCUM catalog",
		Long: `ucumgen turns the declarative UCUM catalog (base units, prefixes and
derived units, with their dimensional definitions) into the Go lookup
tables compiled into internal/ucumdata.`,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print ucumgen's version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version)
		},
	}
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate internal/ucumdata from the UCUM catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalogPath, err := cmd.Flags().GetString("catalog")
			if err != nil {
				return err
			}
			outputDir, err := cmd.Flags().GetString("output")
			if err != nil {
				return err
			}

			var cat *catalog.Catalog
			if catalogPath == "" {
				cat, err = catalog.Default()
			} else {
				cat, err = catalog.LoadFile(catalogPath)
			}
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			fmt.Printf("Analyzing %d base units, %d prefixes, %d derived units...\n",
				len(cat.BaseUnits), len(cat.Prefixes), len(cat.Units))

			analyzed, err := analyzer.Analyze(cat)
			if err != nil {
				return fmt.Errorf("analyzing catalog: %w", err)
			}

			gen := generator.New(generator.Config{OutputDir: outputDir})
			fmt.Printf("Writing generated tables to %s...\n", outputDir)
			if err := gen.Generate(analyzed); err != nil {
				return fmt.Errorf("generating code: %w", err)
			}

			fmt.Println("Done.")
			return nil
		},
	}

	cmd.Flags().String("catalog", "", "path to a catalog JSON file (defaults to the embedded catalog)")
	cmd.Flags().String("output", "internal/ucumdata", "directory to write generated Go files to")

	return cmd
}
