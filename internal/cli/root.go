// Package cli implements the footadmin command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/footadmin/footadmin/internal/logging"
	"github.com/footadmin/footadmin/internal/paths"
	"github.com/footadmin/footadmin/internal/store"
	"github.com/footadmin/footadmin/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
	logFormat string
	metrics   bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags     rootFlags
	configDir string
	cfg       *viper.Viper
	logger    *slog.Logger
	registry  *prometheus.Registry
	metrics   *store.Metrics
}

// NewRootCmd creates the top-level "footadmin" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{registry: prometheus.NewRegistry()}

	root := &cobra.Command{
		Use:   "footadmin",
		Short: "Manage national team football records kept in CSV files",
		Long: `footadmin keeps teams, players, matches, tournaments and squads in
plain CSV files, with a history log and a trash bin next to every table.`,
		Version:            Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: per-user config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", "text", "log format (text, json)")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "print store metrics to stderr on exit")

	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newVersionCmd(),
		a.newInitCmd(),
		a.newTablesCmd(),
		a.newListCmd(),
		a.newGetCmd(),
		a.newCreateCmd(),
		a.newUpdateCmd(),
		a.newDeleteCmd(),
		a.newHistoryCmd(),
		a.newTrashCmd(),
		a.newRestoreCmd(),
		a.newToggleActiveCmd(),
		a.newStatusCmd(),
		a.newStatsCmd(),
		a.newExportCmd(),
	)
	return root
}

// Execute runs the CLI against the process arguments and returns the exit
// code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes one CLI invocation with the given arguments and streams.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "version", "help":
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return &systemError{fmt.Errorf("resolve config dir: %w", err)}
	}
	cfg, err := loadConfig(configDir, cmd.Flags())
	if err != nil {
		return &systemError{err}
	}
	a.configDir = configDir
	a.cfg = cfg

	a.logger = logging.Setup(cmd.ErrOrStderr(), cfg.GetString(cfgKeyLogLevel), cfg.GetString(cfgKeyLogFormat))
	a.metrics = store.NewMetrics(a.registry)
	cmd.SetContext(logging.NewContext(cmd.Context(), a.logger))

	a.logger.Debug("config loaded", "config_dir", configDir, "file", cfg.ConfigFileUsed())
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if !a.flags.metrics {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return &systemError{fmt.Errorf("gather metrics: %w", err)}
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(cmd.ErrOrStderr(), mf); err != nil {
			return &systemError{fmt.Errorf("write metrics: %w", err)}
		}
	}
	return nil
}

// systemError marks a failure of the environment rather than of the input.
type systemError struct{ err error }

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

// exitCode maps an error to exitSysError for environment failures and
// exitUserError for everything the caller can fix.
func exitCode(err error) int {
	var sys *systemError
	if errors.As(err, &sys) || errors.Is(err, types.ErrPersistence) {
		return exitSysError
	}
	return exitUserError
}
