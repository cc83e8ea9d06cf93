package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viiteer2708/mega-energia-sub001/internal/pipeline"
)

var parseOutput string

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a schedule workbook without validating it",
	Long: `Parse a commission schedule workbook and print what was read: the company
metadata, parser statistics and the products found per tariff. Malformed rows
and unknown sheets are dropped silently; use this to see what survived.`,
	Example: `  commission-service parse ./acme.xlsx
  commission-service parse ./acme.xlsx --output json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", outputTable, "Output format: table or json")
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(parseOutput); err != nil {
		return err
	}

	filePath := args[0]
	logger.Info().Str("file", filePath).Msg("Reading file")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	svc := pipeline.NewService(nil, nil, pipeline.Options{})
	result, err := svc.Parse(cmd.Context(), content)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if strings.ToLower(parseOutput) == outputJSON {
		return writeJSON(out, result)
	}

	fmt.Fprintln(out, TitleStyle.Render("Parse Results for "+filePath))
	renderCompany(out, result.Schedule.Company)
	renderStats(out, result.Stats)
	fmt.Fprintln(out)
	renderProducts(out, result.Schedule.Products)
	return nil
}
