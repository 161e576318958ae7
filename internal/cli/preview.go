package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Color palette - keeping it minimal and accessible.
var (
	colorPrimary   = lipgloss.Color("39")  // Blue
	colorSecondary = lipgloss.Color("245") // Gray
	colorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	previewHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Padding(0, 1)
	previewCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	previewNullStyle   = lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Padding(0, 1)
	previewFooterStyle = lipgloss.NewStyle().Foreground(colorSecondary)
)

const (
	defaultTerminalWidth = 120
	nullMarker           = "NULL"
)

// terminalWidth returns the width of stdout, or defaultTerminalWidth when
// stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultTerminalWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}

// renderPreview formats the first maxRows rows of ds as a table no wider
// than width.
func renderPreview(ds *salesetl.Dataset, maxRows, width int) string {
	if ds == nil {
		return previewFooterStyle.Render("No data extracted; nothing to preview.")
	}

	shown := ds.Len()
	if maxRows < shown {
		shown = maxRows
	}

	rows := make([][]string, shown)
	for i := 0; i < shown; i++ {
		row := ds.Row(i)
		cells := make([]string, len(row))
		for c, cell := range row {
			if cell.IsNull() {
				cells[c] = nullMarker
			} else {
				cells[c] = cell.String()
			}
		}
		rows[i] = cells
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorSecondary)).
		Headers(ds.Columns()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return previewHeaderStyle
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) && rows[row][col] == nullMarker {
				return previewNullStyle
			}
			return previewCellStyle
		})
	if width > 0 {
		t = t.Width(width)
	}

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(previewFooterStyle.Render(fmt.Sprintf("%d of %d rows shown (dry run, nothing written)", shown, ds.Len())))
	return b.String()
}
