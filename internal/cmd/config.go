package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/cheerioskun/grepninja/internal/errs"
	"github.com/cheerioskun/grepninja/internal/models"
	"github.com/cheerioskun/grepninja/internal/pattern"
)

// buildConfig resolves flags, environment and config file into the run
// configuration. Patterns come from -e and -f; only when neither is given is
// the first argument taken as the pattern list. Interactive runs may start
// without a pattern.
func buildConfig(env Env, v *viper.Viper, opts *options, args []string, interactive bool) (models.Config, error) {
	cfg := models.Config{
		Flags: models.MatchFlags{
			IgnoreCase:     v.GetBool("ignore-case"),
			LineNumbers:    v.GetBool("line-number"),
			SuppressErrors: v.GetBool("no-messages"),
			Invert:         v.GetBool("invert-match"),
			WholeLine:      v.GetBool("line-regexp"),
		},
	}

	syntax, err := resolveSyntax(v)
	if err != nil {
		return cfg, err
	}
	cfg.Syntax = syntax
	cfg.Display = resolveDisplay(v)

	color, err := resolveColor(v.GetString("color"), env)
	if err != nil {
		return cfg, err
	}
	cfg.Color = color

	for _, list := range opts.regexps {
		cfg.Patterns = append(cfg.Patterns, pattern.SplitList(list, syntax, cfg.Flags.IgnoreCase)...)
	}
	for _, path := range opts.files {
		specs, err := pattern.LoadFile(env.Fs, path, syntax, cfg.Flags.IgnoreCase)
		if err != nil {
			return cfg, errs.NewConfigurationError(err)
		}
		cfg.Patterns = append(cfg.Patterns, specs...)
	}

	if len(opts.regexps) == 0 && len(opts.files) == 0 {
		switch {
		case len(args) > 0:
			cfg.Patterns = pattern.SplitList(args[0], syntax, cfg.Flags.IgnoreCase)
			args = args[1:]
		case !interactive:
			return cfg, errs.NewConfigurationError(errs.ErrNoPattern)
		}
	}

	cfg.Targets = append([]string(nil), args...)
	return cfg, nil
}

// resolveSyntax allows at most one of -G, -E and -F
func resolveSyntax(v *viper.Viper) (models.SyntaxMode, error) {
	chosen := make([]models.SyntaxMode, 0, 1)
	if v.GetBool("basic-regexp") {
		chosen = append(chosen, models.SyntaxBasic)
	}
	if v.GetBool("extended-regexp") {
		chosen = append(chosen, models.SyntaxExtended)
	}
	if v.GetBool("fixed-strings") {
		chosen = append(chosen, models.SyntaxFixed)
	}

	switch len(chosen) {
	case 0:
		return models.SyntaxBasic, nil
	case 1:
		return chosen[0], nil
	default:
		return models.SyntaxBasic, errs.NewConfigurationError(errs.ErrConflictingMatchers)
	}
}

// resolveDisplay picks the report mode; -q wins over -l, which wins over -c
func resolveDisplay(v *viper.Viper) models.DisplayMode {
	switch {
	case v.GetBool("quiet"):
		return models.DisplayQuiet
	case v.GetBool("files-with-matches"):
		return models.DisplayList
	case v.GetBool("count"):
		return models.DisplayCount
	default:
		return models.DisplayNormal
	}
}

func resolveColor(mode string, env Env) (bool, error) {
	switch mode {
	case "", "never":
		return false, nil
	case "always":
		return true, nil
	case "auto":
		f, ok := env.Out.(*os.File)
		return ok && isatty.IsTerminal(f.Fd()), nil
	default:
		return false, errs.NewConfigurationError(fmt.Errorf("%w %q: want never, always or auto", errs.ErrInvalidColor, mode))
	}
}
