/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/jfmyers9/lastnow/internal/config"
	"github.com/jfmyers9/lastnow/pkg/lastfm"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// errNotPlaying signals the --playing-only exit path. It is silenced
// so the command exits 1 without printing; deferred cleanup in RunE
// still runs.
var errNotPlaying = errors.New("nothing is currently playing")

// nowCmd represents the now command
var nowCmd = &cobra.Command{
	Use:   "now [username]",
	Short: "Display the user's currently playing or last played track",
	Long: `Query Last.fm and display the user's currently playing track, or the
most recently played one if nothing is playing right now.

The output format can be customized in ~/.config/lastnow/config.yaml
using a Go template. Available fields: .Artist, .Album, .Title, .Image, .Date

Exit codes:
  0 - Output printed
  1 - --playing-only was set and nothing is currently playing`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNow,
}

func init() {
	rootCmd.AddCommand(nowCmd)

	// Add format flag to override config
	nowCmd.Flags().StringP("format", "f", "", "Output format template (overrides config)")
	// Add width flag to set fixed output width
	nowCmd.Flags().IntP("width", "w", 0, "Fixed output width (0=disabled, overrides config)")
	// Exit non-zero unless a track is playing right now
	nowCmd.Flags().Bool("playing-only", false, "Exit with code 1 when nothing is currently playing")
}

func runNow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	username, err := resolveUsername(cfg, args)
	if err != nil {
		return err
	}

	// Check for format flag override
	formatFlag, _ := cmd.Flags().GetString("format")
	if formatFlag != "" {
		cfg.OutputFormat = formatFlag
	}

	client, err := newLastFMClient(cfg)
	if err != nil {
		return err
	}

	np, err := client.User().NowPlaying(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get now playing: %w", err)
	}

	playingOnly, _ := cmd.Flags().GetBool("playing-only")
	if playingOnly && !np.Playing() {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errNotPlaying
	}

	// Format and print output
	output, err := formatNowPlaying(np, cfg.OutputFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	// Apply width padding if requested
	width, _ := cmd.Flags().GetInt("width")
	if width == 0 {
		width = cfg.OutputWidth
	}
	if width > 0 {
		output = padToWidth(output, width)
	}

	fmt.Println(output)
	return nil
}

// formatNowPlaying applies the template to the projection
func formatNowPlaying(np *lastfm.NowPlaying, templateStr string) (string, error) {
	tmpl, err := template.New("output").Parse(templateStr)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, np); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return buf.String(), nil
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If width <= 0, returns text unchanged.
// If text is longer than width, truncates with "..." suffix.
// If text is shorter than width, pads with spaces.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text // no padding requested
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			// If width is too small, just return ellipsis truncated to width
			return runewidth.Truncate(ellipsis, width, "")
		}

		// Truncate to (width - ellipsisWidth) and add ellipsis
		truncated := runewidth.Truncate(text, width-ellipsisWidth, "")
		result := truncated + ellipsis

		// Ensure we're exactly at the target width (in case truncate was imprecise)
		resultWidth := runewidth.StringWidth(result)
		if resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		} else if resultWidth > width {
			return runewidth.Truncate(result, width, "")
		}
		return result
	} else if currentWidth < width {
		// Pad with spaces
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text // exactly the right width
}
