// Package main provides the CLI entrypoint for phrasey.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/phrasey/internal/app"
	"github.com/verte-zerg/phrasey/internal/config"
	"github.com/verte-zerg/phrasey/internal/input"
	"github.com/verte-zerg/phrasey/internal/logging"
	"github.com/verte-zerg/phrasey/internal/model"
	"github.com/verte-zerg/phrasey/internal/phrases"
	"github.com/verte-zerg/phrasey/internal/render"
	"github.com/verte-zerg/phrasey/internal/store"
	"github.com/verte-zerg/phrasey/internal/tui"
)

const (
	defaultPhrasesPerRound = 10
	defaultInputBoxWidth   = 50
	defaultLogLevel        = "off"
)

var (
	configPath string
	storeURI   string
	logLevel   string
	logDir     string

	drillPhrases  int
	drillBoxWidth int
	drillTUI      bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "phrasey",
		Short:         "Terminal phrase drill trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runDrillCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&storeURI, "store", config.DefaultStoreURI(), "phrase store (sqlite://path or file://path.csv)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (off, error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "directory for log files (default: stderr)")

	rootCmd.Flags().IntVar(&drillPhrases, "phrases", defaultPhrasesPerRound, "phrases per round")
	rootCmd.Flags().IntVar(&drillBoxWidth, "box-width", defaultInputBoxWidth, "input box width in columns")
	rootCmd.Flags().BoolVar(&drillTUI, "tui", false, "run in the full-screen Bubble Tea interface")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newCountCmd())

	return rootCmd
}

// loadSettings merges the config file into flags the user did not set and
// validates the result.
func loadSettings(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "store", &storeURI, fileCfg.Store.URI)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-dir", &logDir, fileCfg.Log.Dir)
	applyIntConfig(cmd, "phrases", &drillPhrases, fileCfg.Drill.PhrasesPerRound)
	applyIntConfig(cmd, "box-width", &drillBoxWidth, fileCfg.Drill.InputBoxWidth)

	cfg := model.Config{
		StoreURI:        storeURI,
		PhrasesPerRound: drillPhrases,
		InputBoxWidth:   drillBoxWidth,
		LogLevel:        strings.ToLower(strings.TrimSpace(logLevel)),
		LogDir:          logDir,
	}
	if err := config.Validate(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runDrillCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}()

	src, err := phrases.Open(cfg.StoreURI)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logger.Error("failed to close store", "error", cerr)
		}
	}()
	logger.Info("drill starting", "store", cfg.StoreURI, "phrases_per_round", cfg.PhrasesPerRound, "tui", drillTUI)

	ctx := cmd.Context()
	if drillTUI {
		machine := app.NewMachine(ctx, &cfg, src, logger)
		defer machine.Close()
		m := tui.NewModel(machine, &cfg, logger)
		program := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return m.Err()
	}

	renderer := render.NewTerminal(os.Stdout, &cfg, logger)
	defer func() {
		if cerr := renderer.Close(); cerr != nil {
			logger.Error("failed to restore terminal", "error", cerr)
		}
	}()
	return app.New(ctx, &cfg, src, input.NewReader(os.Stdin, logger), renderer, logger).Run()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := configPath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import phrases from a two-column CSV file into the SQLite store",
		Args:  cobra.ExactArgs(1),
		RunE:  runImportCmd,
	}
}

func runImportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	dbPath, err := phrases.SQLitePath(cfg.StoreURI)
	if err != nil {
		return err
	}

	csvStore, err := phrases.LoadCSV(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if csvStore.Len() == 0 {
		return fmt.Errorf("no phrases found in %s (expected rows of original,translation)", args[0])
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	added, err := st.ImportPhrases(cmd.Context(), csvStore.Phrases())
	if err != nil {
		return fmt.Errorf("failed to import phrases: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d phrases (%d already present)\n", added, csvStore.Len()-added); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of phrases in the configured store",
		Args:  cobra.NoArgs,
		RunE:  runCountCmd,
	}
}

func runCountCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	src, err := phrases.Open(cfg.StoreURI)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
	}()
	n, err := src.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count phrases: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), n); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# phrasey configuration
# Uncomment a value to enable it. CLI flags override config values.

[store]
# uri = %q   # sqlite://<path> or file://<path>.csv

[drill]
# phrases-per-round = %d     # Phrases per round (>= %d)
# input-box-width = %d       # Input box width in columns (>= %d)

[log]
# level = %q              # off, error, warn, info, debug, trace
# dir = ""                  # Directory for log files; empty logs to stderr
`,
		config.DefaultStoreURI(),
		defaultPhrasesPerRound, model.MinPhrasesPerRound,
		defaultInputBoxWidth, model.MinInputBoxWidth,
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
