package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cheerioskun/grepninja/internal/errs"
	"github.com/cheerioskun/grepninja/internal/pattern"
	"github.com/cheerioskun/grepninja/internal/search"
	"github.com/cheerioskun/grepninja/internal/utils"
)

const version = "0.1.0"

// Env is the process environment a command runs against
type Env struct {
	Fs  afero.Fs
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultEnv returns the real filesystem and process streams
func DefaultEnv() Env {
	return Env{
		Fs:  afero.NewOsFs(),
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// options holds flag values that viper does not resolve
type options struct {
	regexps []string
	files   []string
}

// NewRootCmd builds the grepninja command. Each call returns an independent
// command with its own flag and viper state.
func NewRootCmd(env Env) *cobra.Command {
	opts := &options{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "grepninja [OPTION]... PATTERNS [FILE]...",
		Short: "Search files for lines matching patterns",
		Long: `Search each FILE for lines matching any of the PATTERNS.

With no FILE, or when FILE is -, standard input is read. PATTERNS may hold
several patterns separated by newlines; a line is selected when any of them
matches.

Exit status is 0 if any line is selected, 1 if none is, and 2 if a pattern
is invalid or no pattern was given. Unreadable files are reported but do not
change the exit status.

Examples:
  grepninja error /var/log/syslog
  grepninja -c -i -e timeout -e refused app.log
  grepninja -F -x -f allowlist.txt hosts.txt
  grepninja --tui -E 'GET|POST' access.log`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return runRoot(env, v, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.SetInterspersed(true)

	// Pattern sources
	flags.StringArrayVarP(&opts.regexps, "regexp", "e", nil, "use PATTERNS for matching")
	flags.StringArrayVarP(&opts.files, "file", "f", nil, "take PATTERNS from FILE, one per line")

	// Syntax
	flags.BoolP("basic-regexp", "G", false, "PATTERNS are basic regular expressions (default)")
	flags.BoolP("extended-regexp", "E", false, "PATTERNS are extended regular expressions")
	flags.BoolP("fixed-strings", "F", false, "PATTERNS are strings")

	// Matching
	flags.BoolP("ignore-case", "i", false, "ignore case distinctions in patterns and data")
	flags.BoolP("invert-match", "v", false, "select non-matching lines")
	flags.BoolP("line-regexp", "x", false, "match only whole lines")

	// Output
	flags.BoolP("count", "c", false, "print only a count of selected lines per FILE")
	flags.BoolP("files-with-matches", "l", false, "print only names of FILEs with selected lines")
	flags.BoolP("quiet", "q", false, "suppress all normal output")
	flags.BoolP("line-number", "n", false, "print line number with output lines")
	flags.BoolP("no-messages", "s", false, "suppress error messages about unreadable files")
	flags.String("color", "never", "highlight output: never, always or auto")

	// Miscellaneous
	flags.Bool("tui", false, "explore matches interactively")
	flags.Bool("verbose", false, "log debug information to stderr")
	flags.String("config", "", "read option defaults from a config file")

	// Bind flags to viper
	v.BindPFlags(flags)
	v.SetEnvPrefix("GREPNINJA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errs.NewConfigurationError(err)
	})

	return rootCmd
}

func runRoot(env Env, v *viper.Viper, opts *options, args []string) error {
	if configFile := v.GetString("config"); configFile != "" {
		v.SetFs(env.Fs)
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return errs.NewConfigurationError(fmt.Errorf("failed to read config %s: %w", configFile, err))
		}
	}

	logger := utils.GetLogger()
	logger.SetVerbose(v.GetBool("verbose"))

	interactive := v.GetBool("tui")
	cfg, err := buildConfig(env, v, opts, args, interactive)
	if err != nil {
		return err
	}

	if interactive {
		return runTUI(env, cfg)
	}

	set, err := pattern.Compile(cfg.Patterns)
	if err != nil {
		return err
	}
	logger.Debug("compiled %d %s pattern(s)", set.Len(), cfg.Syntax)

	run, err := search.Run(cfg, set, env.Fs, search.Streams{In: env.In, Out: env.Out, Err: env.Err})
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if !run.Found() {
		return errs.ErrNoMatch
	}
	return nil
}

// Run executes grepninja with args and returns the process exit status
func Run(args []string, env Env) int {
	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd(env)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(env.In)
	rootCmd.SetOut(env.Out)
	rootCmd.SetErr(env.Err)

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errs.ErrNoMatch) {
		fmt.Fprintf(env.Err, "grepninja: %v\n", err)
		var cfgErr *errs.ConfigurationError
		if errors.As(err, &cfgErr) {
			fmt.Fprintf(env.Err, "Usage: %s\nTry 'grepninja --help' for more information.\n", rootCmd.Use)
		}
	}
	return errs.GetExitCode(err)
}

// Execute runs grepninja against the real process environment
func Execute() int {
	return Run(os.Args[1:], DefaultEnv())
}
