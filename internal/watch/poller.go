// Package watch polls Last.fm for a user's most recent track and
// records finished plays into the local history store.
package watch

import (
	"context"
	"time"

	"github.com/jfmyers9/lastnow/pkg/lastfm"
	"github.com/rs/zerolog"
)

// Update represents the result of one poll
type Update struct {
	Track *lastfm.Track // Most recent track (nil on error)
	Err   error         // Error from the Last.fm client
}

// RecentTracksClient is the slice of the Last.fm client the poller needs
type RecentTracksClient interface {
	RecentTracks(ctx context.Context, p lastfm.RecentTracksParams) (*lastfm.RecentTracks, error)
}

// Poller polls the Last.fm API at regular intervals
type Poller struct {
	client   RecentTracksClient
	username string
	interval time.Duration
	logger   zerolog.Logger
}

// NewPoller creates a new Poller instance
func NewPoller(client RecentTracksClient, username string, interval time.Duration, logger zerolog.Logger) *Poller {
	return &Poller{
		client:   client,
		username: username,
		interval: interval,
		logger:   logger.With().Str("component", "poller").Logger(),
	}
}

// Run starts the polling loop and sends updates to the provided channel
// Blocks until context is cancelled
func (p *Poller) Run(ctx context.Context, updates chan<- Update) error {
	p.logger.Info().
		Str("username", p.username).
		Dur("interval", p.interval).
		Msg("Starting poller")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// Poll immediately on start
	p.poll(ctx, updates)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("Poller stopped")
			return ctx.Err()
		case <-ticker.C:
			p.poll(ctx, updates)
		}
	}
}

// poll queries the Last.fm client and sends an update
func (p *Poller) poll(ctx context.Context, updates chan<- Update) {
	recent, err := p.client.RecentTracks(ctx, lastfm.RecentTracksParams{
		Username: p.username,
		Limit:    1,
	})
	if err != nil {
		p.logger.Debug().Err(err).Msg("Error fetching recent tracks")
		// Send error update (non-blocking)
		select {
		case updates <- Update{Err: err}:
		case <-ctx.Done():
		}
		return
	}

	var track *lastfm.Track
	if len(recent.Tracks) > 0 {
		track = &recent.Tracks[0]
	}

	// Send update (non-blocking)
	select {
	case updates <- Update{Track: track}:
		if track != nil {
			p.logger.Debug().
				Str("track", track.Name).
				Str("artist", track.Artist.Name).
				Bool("now_playing", track.NowPlaying()).
				Msg("Poll update")
		}
	case <-ctx.Done():
	}
}
