package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/carapace-sh/carapace"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/reeflective/argon/internal/complete"
	"github.com/reeflective/argon/internal/loader"
	"github.com/reeflective/argon/internal/scheme"
)

// profileModes are the values accepted by --profile.
var profileModes = map[string]func(*profile.Profile){
	"block": profile.BlockProfile,
	"cpu":   profile.CPUProfile,
	"mem":   profile.MemProfile,
	"mutex": profile.MutexProfile,
	"trace": profile.TraceProfile,
}

var errNoGrammar = errors.New("no grammar file given (--grammar)")

// options are the persistent flags of all commands.
type options struct {
	grammar     string
	logLevel    string
	logFormat   string
	profile     string
	profilePath string

	logger   *slog.Logger
	profiler interface{ Stop() }
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "argon",
		Short:        "Check grammars and parse token streams with them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.start(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			opts.stop()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.grammar, "grammar", "g", "", "YAML grammar file")
	enumFlag(flags, &opts.logLevel, "log-level", "", "warn", "log level", "debug", "info", "warn", "error")
	enumFlag(flags, &opts.logFormat, "log-format", "", "text", "log format", "text", "json")
	enumFlag(flags, &opts.profile, "profile", "", "", "profile mode", slices.Sorted(maps.Keys(profileModes))...)
	flags.StringVar(&opts.profilePath, "profile-path", ".", "directory of profile files")

	parseCmd := newParseCommand(opts)
	expectCmd := newExpectCommand(opts)

	rootCmd.AddCommand(
		newCheckCommand(opts),
		newHierarchyCommand(opts),
		parseCmd,
		expectCmd,
	)

	comps := carapace.Gen(rootCmd)
	comps.FlagCompletion(carapace.ActionMap{
		"grammar":      carapace.ActionFiles(".yaml", ".yml"),
		"log-level":    carapace.ActionValues("debug", "info", "warn", "error"),
		"log-format":   carapace.ActionValues("text", "json"),
		"profile":      carapace.ActionValues(slices.Sorted(maps.Keys(profileModes))...),
		"profile-path": carapace.ActionDirectories(),
	})

	// Tokens after the double dash are completed with the grammar.
	complete.Bind(parseCmd, opts.completer(), true).FlagCompletion(carapace.ActionMap{
		"format": carapace.ActionValues(formats...),
	})
	complete.Bind(expectCmd, opts.completer(), true)

	return rootCmd
}

// start sets up the logger and the profiler.
func (o *options) start(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(o.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}

	switch o.logFormat {
	case "text":
		o.logger = slog.New(slog.NewTextHandler(stderr, handlerOpts))
	case "json":
		o.logger = slog.New(slog.NewJSONHandler(stderr, handlerOpts))
	default:
		return fmt.Errorf("invalid --log-format: %q", o.logFormat)
	}

	if o.profile == "" {
		return nil
	}

	mode, found := profileModes[o.profile]
	if !found {
		return fmt.Errorf("invalid --profile: %q", o.profile)
	}

	o.profiler = profile.Start(mode, profile.ProfilePath(o.profilePath), profile.Quiet)
	o.logger.Debug("profiling", "mode", o.profile, "path", o.profilePath)

	return nil
}

func (o *options) stop() {
	if o.profiler != nil {
		o.profiler.Stop()
		o.profiler = nil
	}
}

// load reads and compiles the grammar file.
func (o *options) load() (*scheme.Scheme, error) {
	if o.grammar == "" {
		return nil, errNoGrammar
	}

	doc, err := loader.Load(o.grammar)
	if err != nil {
		return nil, err
	}

	s, err := doc.Compile()
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("grammar compiled", "path", o.grammar, "nodes", len(s.Entries()), "flags", len(s.Flags()))
	}

	return s, nil
}

// completer returns the scheme completion loader for commands
// taking tokens after a double dash.
func (o *options) completer() complete.LoadFunc {
	return func(carapace.Context) (*scheme.Scheme, error) {
		return o.load()
	}
}

// tokens returns the words given after a double dash, or all of them.
func tokens(cmd *cobra.Command, args []string) []string {
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		return args[dash:]
	}

	return args
}
