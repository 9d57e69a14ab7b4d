package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jfmyers9/lastnow/internal/config"
	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [username]",
	Short: "Show the user's Last.fm profile",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
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

	user, err := client.User().Info(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get user info: %w", err)
	}

	fmt.Printf("Username:  %s\n", user.Name)
	if user.RealName != "" {
		fmt.Printf("Name:      %s\n", user.RealName)
	}
	if user.Country != "" && user.Country != "None" {
		fmt.Printf("Country:   %s\n", user.Country)
	}
	fmt.Printf("Scrobbles: %s\n", user.PlayCount)
	fmt.Printf("Artists:   %s\n", user.ArtistCount)
	fmt.Printf("Albums:    %s\n", user.AlbumCount)
	fmt.Printf("Tracks:    %s\n", user.TrackCount)
	if since := registeredSince(user.Registered.UnixTime); since != "" {
		fmt.Printf("Since:     %s\n", since)
	}
	fmt.Printf("URL:       %s\n", user.URL)

	return nil
}

// registeredSince converts the registration unixtime to a date, or
// returns "" when the value is absent or unparseable
func registeredSince(unixtime string) string {
	uts, err := strconv.ParseInt(unixtime, 10, 64)
	if err != nil || uts == 0 {
		return ""
	}
	return time.Unix(uts, 0).UTC().Format("2 January 2006")
}
