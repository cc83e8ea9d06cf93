package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/viiteer2708/mega-energia-sub001/internal/identity"
	"github.com/viiteer2708/mega-energia-sub001/internal/parsers/xlsx"
	"github.com/viiteer2708/mega-energia-sub001/internal/types"
)

// maxFindingsShown caps each findings list in table output
const maxFindingsShown = 20

var (
	successColor = lipgloss.Color("#4ECDC4")
	warningColor = lipgloss.Color("#FFE66D")
	errorColor   = lipgloss.Color("#FF6B6B")
	subtleColor  = lipgloss.Color("#666666")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().Foreground(successColor)
	WarningStyle = lipgloss.NewStyle().Foreground(warningColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(errorColor)
	SubtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)

	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(20)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtleColor).
			Padding(0, 1)
)

func field(label string, value any) string {
	return LabelStyle.Render(label) + fmt.Sprint(value)
}

// renderCompany prints the metadata block of a schedule
func renderCompany(w io.Writer, company types.CompanyConfig) {
	lines := []string{
		field("Company", displayOr(company.Name, "(empty)")),
		field("Commission model", company.CommissionModel),
		field("GNEW margin", identity.FormatNumber(company.GNEWMarginPct)+"%"),
	}
	fmt.Fprintln(w, BoxStyle.Render(strings.Join(lines, "\n")))
}

// renderStats prints what the parser read and dropped
func renderStats(w io.Writer, stats xlsx.Stats) {
	sheets := make([]string, len(stats.TariffSheets))
	for i, t := range stats.TariffSheets {
		sheets[i] = string(t)
	}
	lines := []string{
		field("Tariff sheets", displayOr(strings.Join(sheets, ", "), "none")),
		field("Rows read", stats.TotalRows),
		field("Rows accepted", stats.AcceptedRows),
		field("Rows dropped", stats.DroppedRows),
	}
	if len(stats.SkippedSheets) > 0 {
		lines = append(lines, field("Empty sheets", strings.Join(stats.SkippedSheets, ", ")))
	}
	if len(stats.IgnoredSheets) > 0 {
		lines = append(lines, field("Ignored sheets", strings.Join(stats.IgnoredSheets, ", ")))
	}
	if stats.DegradedMetadata {
		lines = append(lines, WarningStyle.Render("No config sheet; metadata read from the first tariff sheet"))
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}

// renderProducts prints one line per product grouped by tariff
func renderProducts(w io.Writer, products []types.ParsedProduct) {
	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Products (%d)", len(products))))
	for _, p := range products {
		fee := ""
		if p.FeeValue != nil {
			fee = " fee " + identity.FormatNumber(*p.FeeValue)
		}
		fmt.Fprintf(w, "  %-7s %s%s %s\n", p.Tariff, p.Name, fee,
			SubtleStyle.Render(fmt.Sprintf("(%d rates)", len(p.Rates))))
	}
}

// renderResult prints the verdict, findings and impact summary
func renderResult(w io.Writer, result *types.ValidationResult) {
	if result.Valid {
		fmt.Fprintln(w, SuccessStyle.Bold(true).Render("✓ Schedule is valid"))
	} else {
		fmt.Fprintln(w, ErrorStyle.Bold(true).Render(fmt.Sprintf("✗ Schedule rejected with %d errors", len(result.Errors))))
	}
	fmt.Fprintln(w)

	renderFindings(w, "Errors", ErrorStyle, result.Errors)
	renderFindings(w, "Warnings", WarningStyle, result.Warnings)

	s := result.Summary
	fmt.Fprintln(w, TitleStyle.Render("Impact"))
	fmt.Fprintln(w, field("Total rates", s.TotalRates))
	fmt.Fprintln(w, field("New products", displayOr(strings.Join(s.NewProducts, ", "), "none")))
	fmt.Fprintln(w, field("Existing products", displayOr(strings.Join(s.ExistingProducts, ", "), "none")))

	codes := make([]string, 0, len(s.RatesByTariff))
	for code := range s.RatesByTariff {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)
	for _, code := range codes {
		impact := s.RatesByTariff[types.TariffCode(code)]
		fmt.Fprintf(w, "  %-7s %d new, %d updated\n", code, impact.NewCount, impact.UpdateCount)
	}
}

func renderFindings(w io.Writer, title string, style lipgloss.Style, findings []types.Finding) {
	if len(findings) == 0 {
		return
	}
	fmt.Fprintln(w, style.Bold(true).Render(fmt.Sprintf("%s (%d)", title, len(findings))))
	for i, f := range findings {
		if i >= maxFindingsShown {
			fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("  ... and %d more", len(findings)-maxFindingsShown)))
			break
		}
		where := ""
		if f.Tariff != "" {
			where = string(f.Tariff)
		}
		if f.Row > 0 {
			where += fmt.Sprintf(" row %d", f.Row)
		}
		fmt.Fprintf(w, "  %s %s %s\n", style.Render(string(f.Kind)), f.Message, SubtleStyle.Render(strings.TrimSpace(where)))
	}
	fmt.Fprintln(w)
}

func displayOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
