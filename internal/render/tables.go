// internal/render/tables.go
//
// Table rendering for match reports. Presentation only: every value printed
// here is computed by the match package.

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/gridctl/internal/match"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	resultStyles = map[match.MatchType]lipgloss.Style{
		match.Yes:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50C878")),
		match.No:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")),
		match.Maybe:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D35E")),
		match.Partial: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4A259")),
	}
)

// Qualifier returns the phrase printed next to undetermined and partial
// results in the detail table.
func Qualifier(t match.MatchType) string {
	switch t {
	case match.Maybe:
		return "no nodes have registered yet"
	case match.Partial:
		return "at least one node matches, but not all"
	}
	return ""
}

// SummaryTable renders the cross-pool overview: one row per candidate with
// its overall classification.
func SummaryTable(reports []*match.Report) string {
	headers := []string{"#", "Worker Pool", "ID", "Status", "Match"}
	rows := make([][]string, 0, len(reports))
	styles := make([]lipgloss.Style, 0, len(reports))
	for i, r := range reports {
		overall := r.Summary()
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.Pool.Name,
			r.Pool.ID,
			r.Pool.Status,
			overall.String(),
		})
		styles = append(styles, resultStyles[overall])
	}
	return renderTable(headers, rows, func(row, col int) lipgloss.Style {
		if col == len(headers)-1 {
			return styles[row]
		}
		return lipgloss.NewStyle()
	})
}

// DetailTable renders the eight per-dimension rows for one pool, with a
// qualifying phrase on MAYBE and PARTIAL results.
func DetailTable(report *match.Report) string {
	title := headerStyle.Render(fmt.Sprintf("%s (%s) · %s", report.Pool.Name, report.Pool.ID, report.Summary()))
	headers := []string{"Property", "Task Group Requires", "Worker Pool Offers", "Match"}
	rows := make([][]string, 0, len(report.Properties))
	styles := make([]lipgloss.Style, 0, len(report.Properties))
	for _, pm := range report.Properties {
		result := pm.Result.String()
		if q := Qualifier(pm.Result); q != "" {
			result = fmt.Sprintf("%s (%s)", result, q)
		}
		rows = append(rows, []string{pm.Property, pm.Required, pm.Offered, result})
		styles = append(styles, resultStyles[pm.Result])
	}
	table := renderTable(headers, rows, func(row, col int) lipgloss.Style {
		if col == len(headers)-1 {
			return styles[row]
		}
		return lipgloss.NewStyle()
	})
	return title + "\n" + table
}

// renderTable lays out a plain bordered grid. Widths come from the widest
// cell per column; styling is applied after padding so ANSI codes do not
// skew the alignment.
func renderTable(headers []string, rows [][]string, cellStyle func(row, col int) lipgloss.Style) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(col int) lipgloss.Style) {
		b.WriteString(borderStyle.Render("|"))
		for i, cell := range cells {
			padded := fmt.Sprintf(" %-*s ", widths[i], cell)
			b.WriteString(style(i).Render(padded))
			b.WriteString(borderStyle.Render("|"))
		}
		b.WriteString("\n")
	}
	divider := func() {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("-", w+2)
		}
		b.WriteString(borderStyle.Render("+" + strings.Join(parts, "+") + "+"))
		b.WriteString("\n")
	}

	divider()
	writeRow(headers, func(int) lipgloss.Style { return headerStyle })
	divider()
	for r, row := range rows {
		writeRow(row, func(c int) lipgloss.Style { return cellStyle(r, c) })
	}
	if len(rows) == 0 {
		b.WriteString(dimStyle.Render("(no worker pools)"))
		b.WriteString("\n")
	}
	divider()
	return strings.TrimRight(b.String(), "\n")
}
