package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/remotetodo/internal/config"
	"github.com/idilsaglam/remotetodo/internal/logging"
	"github.com/idilsaglam/remotetodo/internal/source"
	"github.com/idilsaglam/remotetodo/internal/tui"
	"github.com/idilsaglam/remotetodo/internal/ui"
)

// App carries resolved settings from the root flags to subcommands.
type App struct {
	Endpoint string
	Timeout  time.Duration
	Theme    string
	LogFile  string
	LogLevel string

	cfg      *config.Config
	log      *logrus.Logger
	closeLog func() error
}

// Execute runs the CLI with args and returns an exit code (0 ok, 1 error).
// Errors are reported once, on stderr, with ui.Fail.
func Execute(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	return 0
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "todo",
		Short:        "A tiny remote todo list (TUI)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Open the interactive list against the default endpoint
  todo

  # Point at another list endpoint
  todo --endpoint https://example.com/todos

  # Print the list once and exit
  todo ls

  # Serve a local fixture endpoint for development
  todo serve --file todos.json
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Endpoint, "endpoint", "", "list endpoint URL or JSON file (env TODO_ENDPOINT)")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", 0, "fetch timeout, 0 for none (env TODO_TIMEOUT)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", "", "classic|neon|mono (env TODO_THEME)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "write JSON logs to this file (env TODO_LOG_FILE)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "log level (env LOG_LEVEL)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		return app.close()
	}

	cmd.AddCommand(newLsCmd(app))
	cmd.AddCommand(newServeCmd(app))
	return cmd
}

// setup merges env config with flags; flags win when set.
func (a *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	// Flags override the environment; validate the merged result.
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		cfg.Endpoint = a.Endpoint
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.Timeout
	}
	if flags.Changed("theme") {
		cfg.Theme = a.Theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.LogFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return err
	}
	l, closeFn, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closeLog = cfg, l, closeFn
	a.Endpoint, a.Timeout, a.Theme = cfg.Endpoint, cfg.Timeout, cfg.Theme
	return nil
}

func (a *App) close() error {
	if a.closeLog == nil {
		return nil
	}
	err := a.closeLog()
	a.closeLog = nil
	return err
}

func (a *App) source() (source.Source, error) {
	src, err := source.New(a.Endpoint, a.Timeout)
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}
	if h, ok := src.(*source.HTTP); ok {
		h.Logger = a.log
	}
	return src, nil
}

func runTUI(app *App) error {
	src, err := app.source()
	if err != nil {
		return err
	}
	app.log.WithField("endpoint", app.Endpoint).Info("starting tui")
	if err := tui.Run(tui.Options{Source: src, Logger: app.log}); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
