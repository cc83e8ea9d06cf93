package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/pipeline"
)

var (
	exportBaseline string
	exportOutput   string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <company>",
	Short: "Export the stored schedule of a company as a workbook",
	Long: `Render the products and rates stored for a company in the same workbook
layout the parser reads, so the file can be edited and validated again.`,
	Example: `  commission-service export "Acme Energy"
  commission-service export "Acme Energy" --baseline ./baseline.yaml -o acme.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportBaseline, "baseline", "", "YAML baseline fixture (default: configured database)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default <company-slug>.xlsx, - for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	company := args[0]
	ctx := cmd.Context()

	store, closeStore, err := openBaseline(ctx, exportBaseline)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := pipeline.NewService(store, nil, pipeline.Options{})
	content, err := svc.Export(ctx, company)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	path := exportOutput
	if path == "" {
		path = identity.Slugify(company) + ".xlsx"
	}
	return writeWorkbook(path, content)
}
