package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/jfmyers9/lastnow/internal/config"
	"github.com/jfmyers9/lastnow/pkg/lastfm"
	"github.com/spf13/cobra"
)

// recentCmd represents the recent command
var recentCmd = &cobra.Command{
	Use:   "recent [username]",
	Short: "List the user's recently played tracks",
	Long: `Query Last.fm and list the user's recently played tracks, most
recent first. A currently playing track is marked with an asterisk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)

	recentCmd.Flags().IntP("limit", "l", 10, "Number of tracks to list")
	recentCmd.Flags().IntP("page", "p", 0, "Result page to fetch")
}

func runRecent(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	username, err := resolveUsername(cfg, args)
	if err != nil {
		return err
	}

	client, err := newLastFMClient(cfg)
	if err != nil {
		return err
	}

	limit, _ := cmd.Flags().GetInt("limit")
	page, _ := cmd.Flags().GetInt("page")

	recent, err := client.User().RecentTracks(ctx, lastfm.RecentTracksParams{
		Username: username,
		Limit:    limit,
		Page:     page,
	})
	if err != nil {
		return fmt.Errorf("failed to get recent tracks: %w", err)
	}

	for _, track := range recent.Tracks {
		fmt.Println(formatRecentTrack(&track))
	}

	return nil
}

// formatRecentTrack renders one history line
func formatRecentTrack(track *lastfm.Track) string {
	line := fmt.Sprintf("%s - %s", track.Artist.Name, track.Name)
	if track.Album.Name != "" {
		line += fmt.Sprintf(" (%s)", track.Album.Name)
	}

	switch {
	case track.NowPlaying(), track.Date == nil:
		line = "* " + line
	default:
		line += "  [" + track.Date.Text + "]"
	}

	return line
}
