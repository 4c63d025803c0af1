package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel = lipgloss.NewStyle().Foreground(colorGray).Width(20)
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
	styleYes   = lipgloss.NewStyle().Foreground(colorGreen)
	styleNo    = lipgloss.NewStyle().Foreground(colorRed)
)

// printTitle writes a bold heading line.
func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, styleTitle.Render(title))
}

// printField writes an aligned "label  value" line.
func printField(w io.Writer, label string, value any) {
	fmt.Fprintln(w, styleLabel.Render(label)+styleValue.Render(fmt.Sprint(value)))
}

// printBool writes a yes/no field.
func printBool(w io.Writer, label string, v bool) {
	s := styleNo.Render("no")
	if v {
		s = styleYes.Render("yes")
	}
	fmt.Fprintln(w, styleLabel.Render(label)+s)
}

// formatVector renders v with the given number of decimals.
func formatVector(v []float64, prec int) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'f', prec, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// printMatrix writes rows, one per line, right-aligned.
func printMatrix(w io.Writer, rows [][]float64, prec int) {
	width := 0
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, x := range row {
			cells[i][j] = strconv.FormatFloat(x, 'f', prec, 64)
			width = max(width, len(cells[i][j]))
		}
	}
	cell := lipgloss.NewStyle().Width(width + 2).Align(lipgloss.Right)
	for _, row := range cells {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(cell.Render(c))
		}
		fmt.Fprintln(w, b.String())
	}
}
