// Package table pads rows of cells into aligned columns for plain-text
// display.
package table

import "strings"

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Render pads every row to the widest cell of its column. When header is
// non-nil it is emitted first, followed by a dashed ruler sized per column.
func Render(header []string, rows [][]string, alignments []Alignment) []string {
	all := rows
	if header != nil {
		all = append([][]string{header}, rows...)
	}
	if len(all) == 0 {
		return nil
	}
	widths := columnWidths(all)

	out := make([]string, 0, len(all)+1)
	if header != nil {
		out = append(out, renderRow(header, widths, alignments))
		ruler := make([]string, len(widths))
		for i, w := range widths {
			ruler[i] = strings.Repeat("-", w)
		}
		out = append(out, renderRow(ruler, widths, alignments))
	}
	for _, row := range rows {
		out = append(out, renderRow(row, widths, alignments))
	}
	return out
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				break
			}
			if w := len([]rune(cell)); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

func renderRow(row []string, widths []int, alignments []Alignment) string {
	var b strings.Builder
	for c, cell := range row {
		if c > 0 {
			b.WriteString("  ")
		}
		pad := 0
		if c < len(widths) {
			pad = widths[c] - len([]rune(cell))
		}
		if pad < 0 {
			pad = 0
		}
		if c < len(alignments) && alignments[c] == AlignRight {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return strings.TrimRight(b.String(), " ")
}
