package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/pipeline"
)

var (
	templateModel  string
	templateOutput string
)

// templateCmd represents the template command
var templateCmd = &cobra.Command{
	Use:   "template <company>",
	Short: "Generate an empty schedule workbook for a company",
	Long: `Generate a schedule workbook with the config sheet filled in and one empty
sheet per tariff, ready for operators to enter products and rates.`,
	Example: `  commission-service template "Acme Energy"
  commission-service template "Acme Energy" --model formula -o acme.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplate,
}

func init() {
	rootCmd.AddCommand(templateCmd)

	templateCmd.Flags().StringVar(&templateModel, "model", "table", "Commission model: table or formula")
	templateCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "Output file (default <company-slug>-template.xlsx, - for stdout)")
}

func runTemplate(cmd *cobra.Command, args []string) error {
	company := args[0]

	svc := pipeline.NewService(nil, nil, pipeline.Options{})
	content, err := svc.Template(company, identity.ParseCommissionModel(templateModel))
	if err != nil {
		return fmt.Errorf("template failed: %w", err)
	}

	path := templateOutput
	if path == "" {
		path = identity.Slugify(company) + "-template.xlsx"
	}
	return writeWorkbook(path, content)
}
