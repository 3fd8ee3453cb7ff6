package search

import (
	"io"

	"github.com/spf13/afero"

	"github.com/cheerioskun/grepninja/internal/models"
	"github.com/cheerioskun/grepninja/internal/pattern"
	"github.com/cheerioskun/grepninja/internal/scanner"
	"github.com/cheerioskun/grepninja/internal/utils"
)

// Streams are the process streams a run reads from and writes to
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run scans every target of cfg in the order given, one at a time, and
// returns the summed result. With more than one target every output line
// is prefixed by its source name.
func Run(cfg models.Config, set *pattern.Set, fs afero.Fs, streams Streams) (models.RunResult, error) {
	logger := utils.GetLogger()

	targets := cfg.EffectiveTargets()
	flags := cfg.Flags
	if len(targets) > 1 {
		flags.ShowFilenames = true
	}

	printer := NewPrinter(streams.Out, cfg.Color)
	processor := NewProcessor(
		scanner.NewOpener(fs, streams.In),
		NewSelector(set, flags),
		flags,
		cfg.Display,
		printer,
		streams.Err,
	)

	logger.Debug("searching %d target(s) with %d pattern(s), display %s", len(targets), set.Len(), cfg.Display)

	var run models.RunResult
	for _, target := range targets {
		run.Add(processor.Process(target))
	}

	logger.Debug("run complete: %d selected line(s) in %d target(s), %d error(s)", run.Total, run.Matched, run.Errors)

	return run, printer.Flush()
}
