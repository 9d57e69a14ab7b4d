package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/jfmyers9/lastnow/internal/config"
	"github.com/jfmyers9/lastnow/internal/history"
	"github.com/jfmyers9/lastnow/internal/watch"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	watchLogFile  string
	watchLogLevel string
	watchDB       string
	watchInterval int
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [username]",
	Short: "Watch a Last.fm account and record plays locally",
	Long: `Poll Last.fm for the user's most recent track and record finished
plays into a local SQLite database.

The watcher will:
- Fetch the most recent track entry on a fixed interval
- Skip the currently playing track until it finishes and gets a date
- Record each dated play exactly once
- Handle graceful shutdown on SIGINT/SIGTERM

The watcher runs in the foreground and logs to stderr by default.
Use the --log-file flag to log to a file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	// Command-line flags
	watchCmd.Flags().StringVar(&watchLogFile, "log-file", "", "Log file path (default: stderr)")
	watchCmd.Flags().StringVar(&watchLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	watchCmd.Flags().StringVar(&watchDB, "db", "", "History database path (default: ~/.local/share/lastnow/history.db)")
	watchCmd.Flags().IntVar(&watchInterval, "interval", 0, "Poll interval in seconds (overrides config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	username, err := resolveUsername(cfg, args)
	if err != nil {
		return err
	}

	// Set up logging
	logger := setupLogger(watchLogFile, watchLogLevel)

	logger.Info().
		Str("version", version).
		Str("username", username).
		Msg("Starting lastnow watcher")

	// Determine history database path
	dbPath := watchDB
	if dbPath == "" {
		dbPath = cfg.HistoryDB
	}
	if dbPath == "" {
		dataDir, err := config.DataDir()
		if err != nil {
			return fmt.Errorf("failed to get data directory: %w", err)
		}
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
		dbPath = filepath.Join(dataDir, "history.db")
	}

	logger.Info().Str("db", dbPath).Msg("Using history database")

	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	client, err := newLastFMClient(cfg)
	if err != nil {
		return err
	}

	interval := watchInterval
	if interval <= 0 {
		interval = cfg.PollInterval
	}
	if interval <= 0 {
		interval = 30
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller := watch.NewPoller(client.User(), username, time.Duration(interval)*time.Second, logger)
	recorder := watch.NewRecorder(store, logger)

	updates := make(chan watch.Update, 16)
	go func() {
		_ = poller.Run(ctx, updates)
	}()

	err = recorder.Run(ctx, updates)
	if errors.Is(err, context.Canceled) {
		logger.Info().Msg("Shutting down")
		return nil
	}
	return err
}

// setupLogger creates a logger with the specified configuration
func setupLogger(logFile, logLevel string) zerolog.Logger {
	// Parse log level
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Set up output
	output := os.Stderr
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err == nil {
			output = f
		}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
