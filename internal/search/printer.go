package search

import (
	"bufio"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer formats report lines. Output is buffered until Flush.
type Printer struct {
	w      *bufio.Writer
	color  bool
	styles printerStyles
}

type printerStyles struct {
	name   lipgloss.Style
	number lipgloss.Style
	sep    lipgloss.Style
	match  lipgloss.Style
}

// NewPrinter creates a new Printer writing to w. With color set, names,
// line numbers, separators and matched text are highlighted with ANSI colors
// regardless of whether w is a terminal.
func NewPrinter(w io.Writer, color bool) *Printer {
	p := &Printer{w: bufio.NewWriter(w), color: color}
	if color {
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI)
		base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
		p.styles = printerStyles{
			name:   base.Foreground(lipgloss.Color("5")),
			number: base.Foreground(lipgloss.Color("2")),
			sep:    base.Foreground(lipgloss.Color("6")),
			match:  base.Bold(true).Foreground(lipgloss.Color("1")),
		}
	}
	return p
}

// Line writes one selected line, prefixed by the source name and line
// number when requested. v's span is highlighted when color is on.
func (p *Printer) Line(name string, number int, content []byte, v Verdict, showName, showNumber bool) {
	if showName {
		p.prefix(p.styles.name, name)
	}
	if showNumber {
		p.prefix(p.styles.number, strconv.Itoa(number))
	}

	if p.color && v.Matched && v.End > v.Start {
		p.w.Write(content[:v.Start])
		p.w.WriteString(p.styles.match.Render(string(content[v.Start:v.End])))
		p.w.Write(content[v.End:])
	} else {
		p.w.Write(content)
	}
	p.w.WriteByte('\n')
}

// Name writes a source name on its own line
func (p *Printer) Name(name string) {
	p.write(p.styles.name, name)
	p.w.WriteByte('\n')
}

// Count writes a per-source count, prefixed by the name when requested
func (p *Printer) Count(name string, count int, showName bool) {
	if showName {
		p.prefix(p.styles.name, name)
	}
	p.w.WriteString(strconv.Itoa(count))
	p.w.WriteByte('\n')
}

// Flush writes any buffered output
func (p *Printer) Flush() error {
	return p.w.Flush()
}

func (p *Printer) prefix(style lipgloss.Style, text string) {
	p.write(style, text)
	p.write(p.styles.sep, ":")
}

func (p *Printer) write(style lipgloss.Style, text string) {
	if p.color {
		text = style.Render(text)
	}
	p.w.WriteString(text)
}
