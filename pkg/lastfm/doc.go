// Package lastfm provides a client library for the Last.fm API 2.0.
//
// # Overview
//
// This package implements a modern Go client for the read-only user
// endpoints of the Last.fm API: user.getRecentTracks, user.getInfo,
// and a "now playing" projection built on top of them. It provides a
// clean, type-safe API with context support and structured errors.
//
// # Installation
//
//	go get github.com/jfmyers9/lastnow/pkg/lastfm
//
// # Quick Start
//
// Create a client with your API key:
//
//	import "github.com/jfmyers9/lastnow/pkg/lastfm"
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey: "your-api-key",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Recent Tracks
//
// Fetch a user's listening history:
//
//	recent, err := client.User().RecentTracks(ctx, lastfm.RecentTracksParams{
//	    Username: "alice",
//	    Limit:    10,
//	})
//	for _, track := range recent.Tracks {
//	    fmt.Println(track.Artist.Name, "-", track.Name)
//	}
//
// # Now Playing
//
// Project the most recent entry into the reduced now-playing view:
//
//	np, err := client.User().NowPlaying(ctx, "alice")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if np.Playing() {
//	    fmt.Println("listening to", np.Title, "by", np.Artist)
//	} else {
//	    fmt.Println("last played", np.Title, "at", np.Date)
//	}
//
// # Error Handling
//
// Failures are surfaced as typed errors and never retried by the
// client:
//
//	np, err := client.User().NowPlaying(ctx, "alice")
//	if err != nil {
//	    var transportErr *lastfm.TransportError
//	    if errors.As(err, &transportErr) {
//	        // network failure or non-2xx status
//	    }
//	    var lastfmErr *lastfm.Error
//	    if errors.As(err, &lastfmErr) && lastfmErr.Temporary() {
//	        // the remote asked us to come back later
//	    }
//	}
//
// A missing or empty username is rejected with *InvalidParameterError
// before any network call. Non-JSON bodies produce *ParseError, and
// valid JSON lacking the expected fields produces
// *MalformedResponseError.
//
// # Context Support
//
// All API methods accept a context.Context for cancellation and
// timeouts:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	np, err := client.User().NowPlaying(ctx, "alice")
//
// The client performs exactly one GET per logical operation; any
// timeout beyond the context must be configured on the injected
// *http.Client.
//
// # Configuration
//
// The client can be configured with custom HTTP clients, base URLs
// (for testing), and optional loggers:
//
//	client, err := lastfm.NewClient(lastfm.Config{
//	    APIKey:     "your-api-key",
//	    HTTPClient: &http.Client{Timeout: 30 * time.Second},
//	    Logger:     myLogger, // Implements lastfm.Logger interface
//	})
//
// # API Coverage
//
// Currently implemented:
//   - Recent tracks (user.getrecenttracks)
//   - User profile (user.getinfo)
//
// # Last.fm API Documentation
//
// For more information about the Last.fm API:
// https://www.last.fm/api
package lastfm
