package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jfmyers9/lastnow/internal/config"
	"github.com/jfmyers9/lastnow/internal/history"
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List plays recorded by the watch command",
	Long: `List plays recorded into the local history database by the watch
command, newest first. This reads only local state and performs no
network calls.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntP("limit", "l", 20, "Number of plays to list")
	historyCmd.Flags().StringVar(&watchDB, "db", "", "History database path (default: ~/.local/share/lastnow/history.db)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	dbPath := watchDB
	if dbPath == "" {
		dbPath = cfg.HistoryDB
	}
	if dbPath == "" {
		dataDir, err := config.DataDir()
		if err != nil {
			return fmt.Errorf("failed to get data directory: %w", err)
		}
		dbPath = filepath.Join(dataDir, "history.db")
	}

	store, err := history.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")

	plays, err := store.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list plays: %w", err)
	}

	if len(plays) == 0 {
		fmt.Println("No plays recorded yet. Run 'lastnow watch' to start recording.")
		return nil
	}

	for _, play := range plays {
		line := fmt.Sprintf("%s  %s - %s", play.PlayedAt.Format("2006-01-02 15:04"), play.Artist, play.Track)
		if play.Album != "" {
			line += fmt.Sprintf(" (%s)", play.Album)
		}
		fmt.Println(line)
	}

	return nil
}
