package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/reportctl/internal/core/ports/driven"
	"github.com/custodia-labs/reportctl/internal/core/ports/driving"
	"github.com/custodia-labs/reportctl/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Services used by the commands. They are built on first use by connect,
// or injected directly in tests.
var (
	reportService   driving.ReportService
	resultsService  driving.ResultsService
	suppressService driving.SuppressService
	storeService    driving.StoreService
	configStore     driven.ConfigStore
)

// Global flags.
var (
	flagURL       string
	flagToken     string
	flagUsername  string
	flagConfigDir string
	flagVerbose   bool
	flagTimeout   time.Duration
)

// connect builds the services from flags, environment and configuration.
var connect = connectServices

// closers are run after the command finishes.
var closers []func() error

var rootCmd = &cobra.Command{
	Use:   "reportctl",
	Short: "Command line client for a static analysis report server",
	Long: `reportctl queries and manages analysis runs and reports stored on a
report server: list runs and results, compare runs, review reports,
manage source components, import suppressions and store new results.

The server is addressed by a product URL such as
http://localhost:8001/Default. Sessions expired on the server are renewed
automatically when a username is configured.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		return runClosers()
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagURL, "url", "", "product URL, e.g. http://localhost:8001/Default (env REPORTCTL_URL)")
	flags.StringVar(&flagToken, "token", "", "session token (env REPORTCTL_SESSION_TOKEN)")
	flags.StringVar(&flagUsername, "username", "", "username for login when the session expires (env REPORTCTL_USERNAME)")
	flags.StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.reportctl)")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "print remote calls and session renewals to stderr")
	flags.DurationVar(&flagTimeout, "timeout", 0, "timeout of one remote call (default 60s)")
}

// Execute runs the root command and prints failures by kind.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := runClosers(); err == nil {
		err = closeErr
	}
	if err != nil {
		rootCmd.PrintErrln(renderError(err))
	}
	return err
}

func runClosers() error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c())
	}
	closers = nil
	return errors.Join(errs...)
}

// requireReportService connects when no service has been configured yet.
func requireReportService(cmd *cobra.Command) error {
	if reportService != nil {
		return nil
	}
	if err := connect(cmd); err != nil {
		return err
	}
	if reportService == nil {
		return errors.New("report service not configured")
	}
	return nil
}
