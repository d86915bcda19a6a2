package tui

import (
	"github.com/charmbracelet/bubbles/v2/table"

	"github.com/harlens/harlens/report"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 60
)

// buildTableContent converts a report table into bubbles table columns and
// rows, sizing each column to its widest cell within fixed bounds.
func buildTableContent(t report.Table, terminalWidth int) ([]table.Column, []table.Row) {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	columns := make([]table.Column, len(t.Header))
	for i, h := range t.Header {
		columns[i] = table.Column{Title: h, Width: clampWidth(widths[i])}
	}

	rows := make([]table.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make(table.Row, len(columns))
		for i := range columns {
			if i < len(row) {
				cells[i] = truncateCell(row[i], columns[i].Width)
			}
		}
		rows = append(rows, cells)
	}

	return columns, rows
}

func clampWidth(w int) int {
	if w < minColumnWidth {
		return minColumnWidth
	}
	if w > maxColumnWidth {
		return maxColumnWidth
	}
	return w
}

func truncateCell(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
