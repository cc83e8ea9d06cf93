package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func checkOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case outputTable, outputJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// writeWorkbook writes content to path, or to stdout when path is "-"
func writeWorkbook(path string, content []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(content)
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Fprintln(os.Stderr, SuccessStyle.Render(fmt.Sprintf("Wrote %s (%d bytes)", path, len(content))))
	return nil
}
