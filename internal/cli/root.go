// Package cli is the dashboard's command line. Every command drives the same
// section controllers as the terminal dashboard; the dashboard itself is
// the default command.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"admin-dashboard/internal/apiclient"
	"admin-dashboard/internal/config"
	"admin-dashboard/internal/logging"
	"admin-dashboard/internal/section"
	"admin-dashboard/internal/settings"
)

var (
	loadDotEnv = config.LoadDotEnv
	loadClient = config.LoadClient
)

// app carries the flag values and the dependencies built from them.
type app struct {
	apiURL       string
	timeout      time.Duration
	settingsPath string
	logLevel     string
	logFile      string
	jsonOutput   bool

	cfg           config.Client
	deps          section.Deps
	logFileHandle io.Closer

	out    io.Writer
	errOut io.Writer
}

// NewRootCmd builds the command tree writing to out and errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Panel de administración: analytics, usuarios, productos, ventas y configuración",
		Long: `dashboard manages the admin API from the terminal.

Without a subcommand it opens the interactive dashboard. Configuration comes
from DASHBOARD_* environment variables (a .env file is read when present)
and can be overridden by the flags below.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTUI(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", config.DefaultAPIURL, "API base URL (DASHBOARD_API_URL)")
	flags.DurationVar(&a.timeout, "timeout", config.DefaultTimeout, "HTTP request timeout (DASHBOARD_TIMEOUT)")
	flags.StringVar(&a.settingsPath, "settings", settings.DefaultPath(), "settings file (DASHBOARD_SETTINGS)")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error (DASHBOARD_LOG_LEVEL)")
	flags.StringVar(&a.logFile, "log-file", "", "write logs to this file (DASHBOARD_LOG_FILE)")
	flags.BoolVar(&a.jsonOutput, "json", false, "output command results in JSON format")

	root.AddCommand(
		a.newTUICmd(),
		a.newUsersCmd(),
		a.newProductsCmd(),
		a.newSalesCmd(),
		a.newAnalyticsCmd(),
		a.newSettingsCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// setup resolves the configuration (environment, then changed flags) and
// builds the client, the settings store and the logger.
func (a *app) setup(cmd *cobra.Command) error {
	if err := loadDotEnv(); err != nil {
		return err
	}
	cfg, err := loadClient()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = a.apiURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout = a.timeout
	}
	if flags.Changed("settings") {
		cfg.SettingsPath = a.settingsPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logging.ParseLevel(a.logLevel)
	}
	if flags.Changed("log-file") {
		cfg.LogFile = a.logFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := a.openLogger(cmd)
	if err != nil {
		return err
	}
	a.deps = section.Deps{
		Client: apiclient.New(cfg.APIURL,
			apiclient.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
			apiclient.WithLogger(logger),
		),
		Settings: settings.NewStore(cfg.SettingsPath),
		Logger:   logger,
	}
	return nil
}

// openLogger logs to the configured file. Without one, the interactive
// dashboard logs nowhere and the other commands log to stderr.
func (a *app) openLogger(cmd *cobra.Command) (*slog.Logger, error) {
	if a.cfg.LogFile == "" {
		if isTUI(cmd) {
			return logging.Nop(), nil
		}
		return logging.New(logging.Config{Level: a.cfg.LogLevel, Format: a.cfg.LogFormat, Output: a.errOut}), nil
	}
	f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	a.logFileHandle = f
	return logging.New(logging.Config{Level: a.cfg.LogLevel, Format: a.cfg.LogFormat, Output: f}), nil
}

func (a *app) teardown() {
	if a.logFileHandle != nil {
		_ = a.logFileHandle.Close()
		a.logFileHandle = nil
	}
}

func isTUI(cmd *cobra.Command) bool {
	return cmd.Name() == "tui" || !cmd.HasParent()
}
