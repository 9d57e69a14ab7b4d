/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"

	"github.com/jfmyers9/lastnow/internal/config"
	"github.com/jfmyers9/lastnow/pkg/lastfm"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lastnow",
	Short: "Last.fm now-playing client",
	Long: `lastnow shows what a Last.fm user is listening to.

It wraps the read-only Last.fm user endpoints (user.getRecentTracks,
user.getInfo) behind a small CLI: print the currently playing or most
recently played track, list listening history, show profile info, or
watch an account and record plays into a local database.

The output of the now command is designed for tmux status lines and
other status bars.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here if needed
}

// newLastFMClient builds a Last.fm client from configuration
func newLastFMClient(cfg *config.Config) (*lastfm.Client, error) {
	if cfg.LastFM.APIKey == "" {
		return nil, fmt.Errorf("Last.fm API key not configured. Set lastfm.api_key in %s/config.yaml or LASTNOW_LASTFM_API_KEY", config.GetConfigDir())
	}

	return lastfm.NewClient(lastfm.Config{
		APIKey:  cfg.LastFM.APIKey,
		BaseURL: cfg.LastFM.BaseURL,
	})
}

// resolveUsername picks the username from the positional argument or
// falls back to the configured default
func resolveUsername(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if cfg.Username != "" {
		return cfg.Username, nil
	}
	return "", fmt.Errorf("no username given. Pass one as an argument or set username in %s/config.yaml", config.GetConfigDir())
}
