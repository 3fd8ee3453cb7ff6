package cmd

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/cheerioskun/grepninja/internal/errs"
	"github.com/cheerioskun/grepninja/internal/models"
	"github.com/cheerioskun/grepninja/internal/utils"
	"github.com/cheerioskun/grepninja/ui/explore"
)

// runTUI starts the interactive explorer over cfg's targets. Files are
// cached in memory on first read so each query does not hit the disk again.
func runTUI(env Env, cfg models.Config) error {
	if len(cfg.Targets) == 0 {
		return errs.NewConfigurationError(fmt.Errorf("--tui needs at least one FILE"))
	}
	for _, target := range cfg.Targets {
		if target == models.StdinSentinel {
			return errs.NewConfigurationError(fmt.Errorf("--tui cannot read standard input"))
		}
	}

	logger := utils.GetLogger()
	logger.Debug("starting explorer over %d target(s)", len(cfg.Targets))
	// Log records would tear the alternate screen.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(env.Err)

	fs := afero.NewCacheOnReadFs(env.Fs, afero.NewMemMapFs(), 0)
	model := explore.NewModel(fs, cfg)

	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithInput(env.In),
		tea.WithOutput(env.Out),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
