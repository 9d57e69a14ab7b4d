package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jfmyers9/lastnow/internal/config"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the Last.fm API key and default username",
	Long: `Configure lastnow interactively.

This command will:
1. Prompt you for your Last.fm API key
2. Prompt you for a default username (optional)
3. Verify the settings against the Last.fm API
4. Save them to your config file

You can get an API key from: https://www.last.fm/api/account/create

The read-only endpoints used by lastnow need no API secret and no
authorization flow; the key alone is enough.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("lastnow setup")
	fmt.Println("=============")
	fmt.Println()
	fmt.Println("You can get an API key from: https://www.last.fm/api/account/create")
	fmt.Println()

	// Check if we already have a key
	if cfg.LastFM.APIKey != "" {
		fmt.Printf("Found existing API key: %s\n", cfg.LastFM.APIKey)
		fmt.Print("\nUse existing key? [Y/n]: ")
		response, err := reader.ReadString('\n')
		if err != nil {
			response = "y"
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "" && response != "y" && response != "yes" {
			cfg.LastFM.APIKey = ""
		}
	}

	// Prompt for API key if not set
	if cfg.LastFM.APIKey == "" {
		fmt.Print("Enter your Last.fm API key: ")
		apiKey, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		cfg.LastFM.APIKey = strings.TrimSpace(apiKey)
	}

	if cfg.LastFM.APIKey == "" {
		return fmt.Errorf("API key is required")
	}

	// Prompt for default username
	fmt.Printf("Enter a default username [%s]: ", cfg.Username)
	username, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if username = strings.TrimSpace(username); username != "" {
		cfg.Username = username
	}

	// Verify the settings with a real call before saving
	if cfg.Username != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := newLastFMClient(cfg)
		if err != nil {
			return err
		}

		user, err := client.User().Info(ctx, cfg.Username)
		if err != nil {
			return fmt.Errorf("failed to verify settings against Last.fm: %w", err)
		}
		fmt.Printf("\nVerified: %s (%s scrobbles)\n", user.Name, user.PlayCount)
	}

	// Save configuration
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Configuration saved to %s/config.yaml\n", config.GetConfigDir())
	return nil
}
