package bench

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headerStyle = cellStyle.Bold(true)
	badStyle    = cellStyle.Foreground(lipgloss.Color("196"))
)

// Render writes the per-case table followed by the per-algorithm aggregate.
func Render(w io.Writer, r *Report) error {
	rows := make([][]string, 0, len(r.Results))
	for _, res := range r.Results {
		expected := "-"
		if res.Expected != nil {
			expected = strconv.FormatFloat(res.Expected.Profit, 'g', -1, 64)
		}
		profit := "-"
		selected := "-"
		if res.Err == nil {
			profit = strconv.FormatFloat(res.Solution.Profit, 'g', -1, 64)
			selected = formatSelection(res.Solution.Selected)
		}
		rows = append(rows, []string{
			res.Case,
			res.Algorithm.String(),
			selected,
			profit,
			expected,
			res.Status.String(),
			res.AvgTime.String(),
			formatBytes(res.AvgBytes),
		})
	}

	cases := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CASE", "ALGORITHM", "SELECTED", "PROFIT", "EXPECTED", "STATUS", "AVG TIME", "AVG ALLOC").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 5 && (r.Results[row].Status == Mismatch || r.Results[row].Status == Failed) {
				return badStyle
			}

			return cellStyle
		})
	if _, err := fmt.Fprintln(w, cases.Render()); err != nil {
		return err
	}

	aggs := r.Aggregates()
	totals := make([][]string, 0, len(aggs))
	for _, a := range aggs {
		totals = append(totals, []string{
			a.Algorithm.String(),
			strconv.Itoa(a.Cases),
			a.TotalTime.String(),
			formatBytes(a.TotalBytes),
		})
	}
	summary := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ALGORITHM", "CASES", "Σ AVG TIME", "Σ AVG ALLOC").
		Rows(totals...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}

			return cellStyle
		})
	_, err := fmt.Fprintln(w, summary.Render())

	return err
}

// formatSelection prints {0, 2, 3}; the empty set prints {}.
func formatSelection(sel []int) string {
	parts := make([]string, len(sel))
	for i, v := range sel {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
