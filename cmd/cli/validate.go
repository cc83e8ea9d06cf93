package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viiteer2708/mega-energia-sub001/internal/pipeline"
	"github.com/viiteer2708/mega-energia-sub001/internal/storage"
)

var (
	validateBaseline string
	validateOutput   string
	validateArchive  bool
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a schedule workbook against the stored baseline",
	Long: `Parse and validate a commission schedule workbook. Every problem is reported
at once: errors reject the schedule, warnings do not. The impact summary shows
which products and rates are new and which update stored ones.

The baseline is read from --baseline (a YAML fixture) or from the configured
database. Without either, everything counts as new.

Exits with status 1 when the schedule is rejected.`,
	Example: `  commission-service validate ./acme.xlsx
  commission-service validate ./acme.xlsx --baseline ./testdata/baseline.yaml
  commission-service validate ./acme.xlsx --output json --archive`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateBaseline, "baseline", "", "YAML baseline fixture (default: configured database)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", outputTable, "Output format: table or json")
	validateCmd.Flags().BoolVar(&validateArchive, "archive", false, "Archive the workbook in storage when it is valid")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := checkOutputFormat(validateOutput); err != nil {
		return err
	}

	filePath := args[0]
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	ctx := cmd.Context()
	store, closeStore, err := openBaseline(ctx, validateBaseline)
	if err != nil {
		return err
	}
	defer closeStore()

	var archive storage.Storage
	if validateArchive {
		basePath := "./data/uploads"
		if cfg != nil {
			basePath = cfg.Storage.BasePath
		}
		local, err := storage.NewLocalStorage(basePath)
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		archive = local
	}

	svc := pipeline.NewService(store, archive, pipeline.Options{ArchiveUploads: validateArchive})
	report, err := svc.Validate(ctx, content, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if strings.ToLower(validateOutput) == outputJSON {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, TitleStyle.Render("Validation Report for "+filePath))
		renderCompany(out, report.Schedule.Company)
		fmt.Fprintln(out, field("Import ID", report.ImportID))
		fmt.Fprintln(out, field("Fingerprint", report.Fingerprint))
		if report.ArchiveKey != "" {
			fmt.Fprintln(out, field("Archived as", report.ArchiveKey))
		}
		fmt.Fprintln(out)
		renderResult(out, report.Result)
	}

	if !report.Result.Valid {
		return errScheduleRejected
	}
	return nil
}
