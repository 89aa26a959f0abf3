// Package tui renders audit reports for terminal output.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/layerlint/layerlint/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	failTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// checkerTitles maps rule identifiers to report section headings.
var checkerTitles = map[string]string{
	domain.CheckerDependencyRule: "Dependency Rule",
	domain.CheckerNaming:         "Naming Conventions",
	domain.CheckerEncapsulation:  "Encapsulation",
	domain.CheckerLayerContent:   "Layer Content",
	domain.CheckerUseCaseTriad:   "Use Case Structure",
}

// RenderReport formats a full audit report: header box, one section per
// checker, skipped-file warnings, and a per-checker summary line.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("layerlint")
	subtitle := dimStyle.Render("Clean Architecture Audit")
	status := passStyle.Bold(true).Render("PASS")
	if !report.Passed() {
		status = failStyle.Bold(true).Render("FAIL")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + status))
	b.WriteString("\n\n")

	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("root: %s", report.RootPath)) + "\n")
	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("commit: %s", hash)) + "\n")
	}
	b.WriteString("  " + dimStyle.Render(fmt.Sprintf("files scanned: %d", report.FilesScanned)) + "\n\n")

	for _, result := range report.Results {
		renderChecker(&b, result)
	}

	if len(report.Warnings) > 0 {
		b.WriteString("  " + titleStyle.Render("Warnings") + "\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "    %s %s\n", warnTagStyle.Render("warn "), fileStyle.Render(w.File))
			fmt.Fprintf(&b, "          %s\n", dimStyle.Render(w.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n\n")
	renderSummary(&b, report)

	if hasDependencyViolations(report) {
		renderFixGuidance(&b)
	}

	return b.String()
}

func renderChecker(b *strings.Builder, result domain.CheckerResult) {
	title := checkerTitles[result.Checker]
	if title == "" {
		title = result.Checker
	}

	b.WriteString("  " + titleStyle.Render(title))
	if result.Passed() {
		b.WriteString("  " + passStyle.Render("✓ clean"))
		b.WriteString("\n\n")
		return
	}

	b.WriteString("  " + failTagStyle.Render(fmt.Sprintf("%d violation(s)", len(result.Violations))))
	b.WriteString("\n\n")

	for _, v := range result.Violations {
		fmt.Fprintf(b, "    %s %s\n", failTagStyle.Render("✗"), fileStyle.Render(v.File))
		fmt.Fprintf(b, "      %s\n", dimStyle.Render(v.Message))
	}
	b.WriteString("\n")
}

func renderSummary(b *strings.Builder, report *domain.Report) {
	for _, result := range report.Results {
		title := checkerTitles[result.Checker]
		if title == "" {
			title = result.Checker
		}
		count := fmt.Sprintf("%d", len(result.Violations))
		if result.Passed() {
			fmt.Fprintf(b, "  %s %s\n", passStyle.Render("✓"), dimStyle.Render(title+": "+count))
		} else {
			fmt.Fprintf(b, "  %s %s\n", failStyle.Render("✗"), dimStyle.Render(title+": "+count))
		}
	}

	total := report.TotalViolations()
	b.WriteString("\n")
	if total == 0 {
		b.WriteString("  " + passStyle.Render("All checks passed.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("Total violations: %d", total)) + "\n")
	}
}

func hasDependencyViolations(report *domain.Report) bool {
	for _, result := range report.Results {
		if result.Checker == domain.CheckerDependencyRule && !result.Passed() {
			return true
		}
	}
	return false
}

func renderFixGuidance(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("How to fix") + "\n")
	for _, line := range []string{
		"domain should not import from any outer layer",
		"application should only import from domain",
		"infrastructure should only import from domain and application",
		"frameworks can import from any inner layer",
	} {
		b.WriteString("    " + dimStyle.Render("- "+line) + "\n")
	}
}
