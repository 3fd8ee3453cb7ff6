package explore

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cheerioskun/grepninja/internal/messages"
	"github.com/cheerioskun/grepninja/internal/models"
)

func setupFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "access.log", []byte("GET /a 200\nPOST /b 500\nget /c 404\n"), 0644))
	require.NoError(t, afero.WriteFile(fs, "error.log", []byte("timeout\nPOST failed\n"), 0644))
	return fs
}

func testConfig(pattern string) models.Config {
	return models.Config{
		Patterns: []models.PatternSpec{{Text: pattern}},
		Targets:  []string{"access.log", "error.log"},
	}
}

func searchMsg(t *testing.T, cmd tea.Cmd) messages.SearchCompletedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.SearchCompletedMsg)
	require.True(t, ok)
	return msg
}

func TestSearch(t *testing.T) {
	msg := Search(setupFs(t), testConfig(""), "POST", 4)

	require.NoError(t, msg.Err)
	assert.Equal(t, 4, msg.Seq)
	assert.Equal(t, "access.log:POST /b 500\nerror.log:POST failed\n", msg.Output)
	assert.Equal(t, 2, msg.Result.Total)
	assert.Equal(t, 2, msg.Result.Matched)
	assert.False(t, msg.Idle())
}

func TestSearchUsesConfigFlags(t *testing.T) {
	cfg := testConfig("")
	cfg.Syntax = models.SyntaxExtended
	cfg.Flags.IgnoreCase = true

	msg := Search(setupFs(t), cfg, "^get", 1)

	require.NoError(t, msg.Err)
	assert.Equal(t, "access.log:GET /a 200\naccess.log:get /c 404\n", msg.Output)
}

func TestSearchEmptyPatternIsIdle(t *testing.T) {
	msg := Search(setupFs(t), testConfig(""), "", 1)

	assert.True(t, msg.Idle())
	assert.Empty(t, msg.Output)
}

func TestSearchBadPattern(t *testing.T) {
	cfg := testConfig("")
	cfg.Syntax = models.SyntaxExtended

	msg := Search(setupFs(t), cfg, "a(", 1)

	require.Error(t, msg.Err)
	assert.Contains(t, msg.Err.Error(), "bad pattern")
	assert.Empty(t, msg.Output)
}

func TestSearchReportsMissingTargets(t *testing.T) {
	cfg := testConfig("")
	cfg.Targets = append(cfg.Targets, "gone.log")

	msg := Search(setupFs(t), cfg, "timeout", 1)

	require.NoError(t, msg.Err)
	assert.Equal(t, 1, msg.Result.Errors)
	assert.Contains(t, msg.Diagnostics, "gone.log")
}

func TestNewModelForcesDisplay(t *testing.T) {
	cfg := testConfig("POST")
	cfg.Display = models.DisplayCount

	m := NewModel(setupFs(t), cfg)

	assert.Equal(t, models.DisplayNormal, m.Config().Display)
	assert.True(t, m.Config().Flags.LineNumbers)
	assert.Equal(t, "POST", m.input.Value())
}

func TestInitRunsFirstSearch(t *testing.T) {
	m := NewModel(setupFs(t), testConfig("timeout"))
	require.NotNil(t, m.Init())

	m.Update(Search(m.fs, m.cfg, "timeout", m.seq))

	assert.Equal(t, 1, m.Last().Result.Total)
	assert.Contains(t, m.View(), "1 line(s) selected in 1 of 2 file(s)")
}

func TestToggles(t *testing.T) {
	m := NewModel(setupFs(t), testConfig("get"))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, m.Config().Flags.IgnoreCase)
	msg := searchMsg(t, cmd)
	assert.Equal(t, 2, msg.Result.Total)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, m.Config().Flags.Invert)
	msg = searchMsg(t, cmd)
	assert.Equal(t, 3, msg.Result.Total)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.True(t, m.Config().Flags.WholeLine)
	msg = searchMsg(t, cmd)
	assert.Equal(t, 5, msg.Result.Total)
}

func TestTabCyclesSyntax(t *testing.T) {
	m := NewModel(setupFs(t), testConfig("x"))
	require.Equal(t, models.SyntaxBasic, m.Config().Syntax)

	want := []models.SyntaxMode{models.SyntaxExtended, models.SyntaxFixed, models.SyntaxBasic}
	for _, syntax := range want {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		assert.NotNil(t, cmd)
		assert.Equal(t, syntax, m.Config().Syntax)
	}
}

func TestStaleResultsAreDropped(t *testing.T) {
	m := NewModel(setupFs(t), testConfig("POST"))

	_, first := m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	_, second := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	stale := searchMsg(t, first)
	fresh := searchMsg(t, second)

	m.Update(stale)
	assert.True(t, m.Last().Idle(), "stale result must not be shown")

	m.Update(fresh)
	assert.Equal(t, fresh.Seq, m.Last().Seq)
}

func TestTypingStartsSearch(t *testing.T) {
	m := NewModel(setupFs(t), testConfig(""))
	before := m.seq

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("P")})

	assert.NotNil(t, cmd)
	assert.Equal(t, "P", m.input.Value())
	assert.Equal(t, before+1, m.seq)
}

func TestViewShowsErrors(t *testing.T) {
	m := NewModel(setupFs(t), testConfig(""))
	m.cfg.Syntax = models.SyntaxExtended
	m.seq = 1

	m.Update(Search(m.fs, m.cfg, "a(", 1))

	assert.Contains(t, m.View(), "bad pattern")
}

func TestViewNoMatch(t *testing.T) {
	m := NewModel(setupFs(t), testConfig(""))
	m.seq = 1

	m.Update(Search(m.fs, m.cfg, "nothing here", 1))

	assert.Contains(t, m.View(), "No lines selected")
}

func TestWindowResize(t *testing.T) {
	m := NewModel(setupFs(t), testConfig(""))

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.results.Width)
	assert.Equal(t, 40-chromeHeight, m.results.Height)

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 3})
	assert.Equal(t, 1, m.results.Height)
}

func TestQuit(t *testing.T) {
	m := NewModel(setupFs(t), testConfig(""))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
