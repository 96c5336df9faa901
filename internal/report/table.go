package report

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DjordjeVuckovic/truthtable/internal/truthtable"
)

type Options struct {
	Color bool
}

var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorTrue    = lipgloss.Color("#10B981")
	colorFalse   = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")

	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	separatorStyle = lipgloss.NewStyle().Foreground(colorMuted)
	trueStyle      = lipgloss.NewStyle().Foreground(colorTrue)
	falseStyle     = lipgloss.NewStyle().Foreground(colorFalse)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
)

// WriteTable prints the table in the classic layout:
//
//	 A | B | A&B
//	-------------
//	 F | F | F
//
// The separator is 4 dashes per variable plus the formula length plus 2.
func WriteTable(t *truthtable.Table, w io.Writer, opts Options) error {
	return writeRows(t.Formula, t.Variables, slices.Values(t.Rows), w, opts)
}

// StreamTable prints the same layout as WriteTable while the rows of p are
// being evaluated, so memory use does not grow with the row count. It stops
// at the first write error.
func StreamTable(p *truthtable.Plan, reverse bool, w io.Writer, opts Options) error {
	return writeRows(p.Formula, p.Variables, p.Rows(reverse), w, opts)
}

func writeRows(formula string, vars truthtable.Variables, rows iter.Seq[truthtable.Row], w io.Writer, opts Options) error {
	paint := func(style lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return style.Render(text)
	}
	value := func(b bool) string {
		if b {
			return paint(trueStyle, truthtable.TrueSymbol)
		}
		return paint(falseStyle, truthtable.FalseSymbol)
	}

	var header strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&header, " %s |", paint(headerStyle, string(v)))
	}
	fmt.Fprintf(&header, " %s", paint(headerStyle, formula))
	if _, err := fmt.Fprintln(w, header.String()); err != nil {
		return err
	}

	width := len(vars)*4 + len(formula) + 2
	if _, err := fmt.Fprintln(w, paint(separatorStyle, strings.Repeat("-", width))); err != nil {
		return err
	}

	var line strings.Builder
	for row := range rows {
		line.Reset()
		for _, v := range row.Values {
			fmt.Fprintf(&line, " %s |", value(v))
		}
		if row.Err != nil {
			fmt.Fprintf(&line, " %s", paint(errorStyle, "ERROR: "+row.Err.Error()))
		} else {
			fmt.Fprintf(&line, " %s", value(row.Result))
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}
