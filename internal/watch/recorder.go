package watch

import (
	"context"

	"github.com/jfmyers9/lastnow/internal/history"
	"github.com/rs/zerolog"
)

// Recorder consumes poll updates and persists finished plays.
//
// Only entries carrying a date are recorded: the currently-playing
// track has no timestamp yet and shows up again, dated, once it
// finishes. The store's unique constraint absorbs repeated sightings
// of the same play.
type Recorder struct {
	store  *history.Store
	logger zerolog.Logger
}

// NewRecorder creates a new Recorder instance
func NewRecorder(store *history.Store, logger zerolog.Logger) *Recorder {
	return &Recorder{
		store:  store,
		logger: logger.With().Str("component", "recorder").Logger(),
	}
}

// Run consumes updates until the context is cancelled
func (r *Recorder) Run(ctx context.Context, updates <-chan Update) error {
	for {
		select {
		case <-ctx.Done():
			r.logger.Info().Msg("Recorder stopped")
			return ctx.Err()
		case update := <-updates:
			r.handle(ctx, update)
		}
	}
}

// handle processes a single poll update
func (r *Recorder) handle(ctx context.Context, update Update) {
	if update.Err != nil {
		r.logger.Warn().Err(update.Err).Msg("Poll failed")
		return
	}
	if update.Track == nil {
		return
	}

	track := update.Track
	if track.Date == nil {
		// Still playing; it will come back with a date.
		return
	}

	inserted, err := r.store.Record(ctx, history.Play{
		Artist:   track.Artist.Name,
		Album:    track.Album.Name,
		Track:    track.Name,
		Image:    track.LargestImage(),
		PlayedAt: track.Date.Time(),
	})
	if err != nil {
		r.logger.Error().Err(err).
			Str("track", track.Name).
			Msg("Failed to record play")
		return
	}

	if inserted {
		r.logger.Info().
			Str("track", track.Name).
			Str("artist", track.Artist.Name).
			Time("played_at", track.Date.Time()).
			Msg("Recorded play")
	}
}
