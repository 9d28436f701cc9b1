package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Columns are padded to the widest visible cell, ignoring ANSI sequences.
func RenderTable(headers []string, rows [][]string) string {
	return RenderTableWithFooter(headers, rows, nil)
}

// RenderTableWithFooter is RenderTable followed by a separator and a bold
// footer row, used for totals. A nil footer renders no trailer.
func RenderTableWithFooter(headers []string, rows [][]string, footer []string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows, footer)
	var b strings.Builder

	for i, h := range headers {
		writeCell(&b, StyleHeader.Render(h), lipgloss.Width(h), widths, i)
	}
	b.WriteString("\n")
	writeSeparator(&b, widths)

	for _, row := range rows {
		writeRow(&b, row, widths)
	}

	if footer != nil {
		writeSeparator(&b, widths)
		styled := make([]string, len(footer))
		for i, cell := range footer {
			styled[i] = Bold(cell)
		}
		writeRow(&b, styled, widths)
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string, footer []string) []int {
	widths := make([]int, len(headers))
	measure := func(cells []string) {
		for i := 0; i < len(widths) && i < len(cells); i++ {
			if w := lipgloss.Width(cells[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}
	measure(footer)
	return widths
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		writeCell(b, cell, lipgloss.Width(cell), widths, i)
	}
	b.WriteString("\n")
}

func writeCell(b *strings.Builder, cell string, visible int, widths []int, i int) {
	b.WriteString(cell)
	if i == len(widths)-1 {
		return
	}
	pad := widths[i] - visible
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad+colGap))
}

func writeSeparator(b *strings.Builder, widths []int) {
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")
}
