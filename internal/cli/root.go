// Package cli wires the cobra command tree: the TUI by default plus
// line-oriented subcommands over the same store.
package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shortcuts/internal/config"
	"shortcuts/internal/logger"
	"shortcuts/internal/shortcut"
	"shortcuts/internal/telemetry"
	"shortcuts/internal/ui"
)

// BuildInfo is stamped in by the linker.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app holds what the persistent pre-run sets up for every subcommand.
type app struct {
	configPath string
	storePath  string
	logFile    string
	verbose    bool

	cfg     config.Config
	closers []func() error
	root    *cobra.Command
}

// Execute runs the command line with os.Args and releases the log file and
// tracer afterwards.
func Execute(ctx context.Context, info BuildInfo) error {
	a := newApp(info)
	defer a.close()
	return a.root.ExecuteContext(ctx)
}

func newApp(info BuildInfo) *app {
	a := &app{}
	root := &cobra.Command{
		Use:   "shortcuts",
		Short: "Personal keyboard shortcut reference",
		Long: `shortcuts keeps the key combinations you keep forgetting, ranked by how
often you look them up.

Run without a subcommand to open the interactive view.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runTUI,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultPath()))
	root.PersistentFlags().StringVarP(&a.storePath, "file", "f", "", "shortcuts file (overrides store.path)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "write JSON logs to this file")

	root.AddCommand(
		a.newListCommand(),
		a.newAddCommand(),
		a.newLookupCommand(),
		a.newRemoveCommand(),
		a.newScriptCommand(),
		a.newConfigCommand(),
		newVersionCommand(info),
	)
	a.root = root
	return a
}

// setup loads configuration and installs the logger and tracer on the command context.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, _, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	return a.start(cmd, cfg)
}

// setupDefaults is setup without reading the config file.
func (a *app) setupDefaults(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadDefaults(cmd.Flags())
	if err != nil {
		return err
	}
	return a.start(cmd, cfg)
}

func (a *app) start(cmd *cobra.Command, cfg config.Config) error {
	a.cfg = cfg

	l, closeLog, err := logger.New(logger.Options{
		File:    cfg.Log.File,
		Level:   cfg.Log.Level,
		Verbose: a.verbose,
	})
	if err != nil {
		return err
	}
	a.closers = append(a.closers, closeLog)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		l.Warn("tracing disabled", zap.Error(err))
	} else {
		a.closers = append(a.closers, func() error { return shutdown(context.Background()) })
	}

	l.Debug("config loaded",
		zap.String("command", cmd.Name()),
		zap.String("store", cfg.Store.Path),
		zap.Int("increment", cfg.Lookup.Increment),
	)
	cmd.SetContext(logger.ContextWithLogger(ctx, l))
	return nil
}

// close runs closers in reverse order. Errors are dropped; the process is exiting.
func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		_ = a.closers[i]()
	}
	a.closers = nil
}

func (a *app) loadStore(ctx context.Context) (*shortcut.Store, error) {
	return shortcut.Load(ctx, a.cfg.Store.Path)
}

func (a *app) newState(ctx context.Context, store *shortcut.Store) *ui.State {
	st := ui.NewState(ctx, store)
	st.Increment = a.cfg.Lookup.Increment
	return st
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	log := logger.FromContext(ctx)

	// A malformed file must not be replaced by an empty store on the next save.
	store, err := a.loadStore(ctx)
	if err != nil {
		return err
	}
	log.Info("starting", zap.String("store", store.Path()), zap.Int("count", store.Len()))

	p := ui.NewProgram(a.newState(ctx, store), ui.ProgramOptions{
		AltScreen: a.cfg.UI.AltScreen,
		Extra:     []tea.ProgramOption{tea.WithContext(ctx)},
	})
	if _, err := p.Run(); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	log.Info("exited", zap.Int("count", store.Len()))
	return nil
}
