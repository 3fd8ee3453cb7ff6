package explore

import (
	"bytes"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/cheerioskun/grepninja/internal/messages"
	"github.com/cheerioskun/grepninja/internal/models"
	"github.com/cheerioskun/grepninja/internal/pattern"
	"github.com/cheerioskun/grepninja/internal/search"
)

// chromeHeight is the number of rows used by everything but the results
const chromeHeight = 8

// Model is the interactive explorer. Every edit of the pattern or toggle of
// an option re-runs the search engine over the same targets.
type Model struct {
	// Data
	fs   afero.Fs
	cfg  models.Config
	last messages.SearchCompletedMsg
	seq  int

	// UI State
	input   textinput.Model
	results viewport.Model

	// Component state
	width    int
	height   int
	quitting bool
}

// NewModel creates a new explorer over cfg's targets. The first configured
// pattern, if any, is the initial query.
func NewModel(fs afero.Fs, cfg models.Config) *Model {
	input := textinput.New()
	input.Placeholder = "Enter pattern..."
	input.Prompt = "/ "
	input.CharLimit = 512
	if len(cfg.Patterns) > 0 {
		input.SetValue(cfg.Patterns[0].Text)
	}
	input.Focus()

	cfg.Display = models.DisplayNormal
	cfg.Flags.LineNumbers = true
	cfg.Color = true

	return &Model{
		fs:      fs,
		cfg:     cfg,
		input:   input,
		results: viewport.New(80, 24-chromeHeight),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.search())
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case messages.SearchCompletedMsg:
		if msg.Seq != m.seq {
			return m, nil
		}
		m.last = msg
		m.results.SetContent(msg.Output + msg.Diagnostics)
		m.results.GotoTop()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.cycleSyntax()
			return m, m.search()
		case "ctrl+t":
			m.cfg.Flags.IgnoreCase = !m.cfg.Flags.IgnoreCase
			return m, m.search()
		case "ctrl+r":
			m.cfg.Flags.Invert = !m.cfg.Flags.Invert
			return m, m.search()
		case "ctrl+x":
			m.cfg.Flags.WholeLine = !m.cfg.Flags.WholeLine
			return m, m.search()
		case "up", "down", "pgup", "pgdown":
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		return m, tea.Batch(cmd, m.search())
	}
	return m, cmd
}

// SetSize resizes the explorer
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 6
	m.results.Width = width
	m.results.Height = height - chromeHeight
	if m.results.Height < 1 {
		m.results.Height = 1
	}
}

// Config returns the configuration the next search will use
func (m *Model) Config() models.Config {
	return m.cfg
}

// Last returns the most recent search result
func (m *Model) Last() messages.SearchCompletedMsg {
	return m.last
}

func (m *Model) cycleSyntax() {
	switch m.cfg.Syntax {
	case models.SyntaxBasic:
		m.cfg.Syntax = models.SyntaxExtended
	case models.SyntaxExtended:
		m.cfg.Syntax = models.SyntaxFixed
	default:
		m.cfg.Syntax = models.SyntaxBasic
	}
}

// search starts a background query for the current input and options
func (m *Model) search() tea.Cmd {
	m.seq++
	seq, text, cfg, fs := m.seq, m.input.Value(), m.cfg, m.fs
	return func() tea.Msg {
		return Search(fs, cfg, text, seq)
	}
}

// Search compiles text under cfg's syntax and flags and runs it over cfg's
// targets. A pattern that fails to compile is returned as the message error.
func Search(fs afero.Fs, cfg models.Config, text string, seq int) messages.SearchCompletedMsg {
	msg := messages.SearchCompletedMsg{Seq: seq, Pattern: text}
	if text == "" {
		return msg
	}

	cfg.Patterns = []models.PatternSpec{{Text: text, Syntax: cfg.Syntax, IgnoreCase: cfg.Flags.IgnoreCase}}
	set, err := pattern.Compile(cfg.Patterns)
	if err != nil {
		msg.Err = err
		return msg
	}

	var out, diag bytes.Buffer
	msg.Result, msg.Err = search.Run(cfg, set, fs, search.Streams{Out: &out, Err: &diag})
	msg.Output = out.String()
	msg.Diagnostics = diag.String()
	return msg
}
