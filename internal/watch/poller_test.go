package watch

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jfmyers9/lastnow/internal/history"
	"github.com/jfmyers9/lastnow/pkg/lastfm"
	"github.com/rs/zerolog"
)

// fakeClient returns canned responses and counts calls
type fakeClient struct {
	mu     sync.Mutex
	calls  int
	recent *lastfm.RecentTracks
	err    error
}

func (f *fakeClient) RecentTracks(ctx context.Context, p lastfm.RecentTracksParams) (*lastfm.RecentTracks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.recent, nil
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func playedTrack(name string, uts string) lastfm.Track {
	return lastfm.Track{
		Name:   name,
		Artist: lastfm.TrackArtist{Name: "The Beatles"},
		Album:  lastfm.TrackAlbum{Name: "Help!"},
		Images: []lastfm.Image{{Size: "extralarge", URL: "https://images.test/cover.png"}},
		Date:   &lastfm.TrackDate{UTS: uts, Text: "01 Jan 2020, 00:00"},
	}
}

func TestPoller_Run(t *testing.T) {
	client := &fakeClient{
		recent: &lastfm.RecentTracks{Tracks: []lastfm.Track{playedTrack("Yesterday", "1577836800")}},
	}
	poller := NewPoller(client, "alice", 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan Update, 16)
	done := make(chan error, 1)
	go func() {
		done <- poller.Run(ctx, updates)
	}()

	// First update arrives from the immediate poll on start
	select {
	case update := <-updates:
		if update.Err != nil {
			t.Fatalf("unexpected error update: %v", update.Err)
		}
		if update.Track == nil || update.Track.Name != "Yesterday" {
			t.Errorf("unexpected track update: %+v", update.Track)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for update")
	}

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}

	if client.callCount() == 0 {
		t.Error("expected at least one client call")
	}
}

func TestPoller_ErrorUpdates(t *testing.T) {
	client := &fakeClient{err: errors.New("network down")}
	poller := NewPoller(client, "alice", 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan Update, 16)
	go func() { _ = poller.Run(ctx, updates) }()

	select {
	case update := <-updates:
		if update.Err == nil {
			t.Fatal("expected error update")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for error update")
	}
}

func TestRecorder_RecordsFinishedPlays(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	recorder := NewRecorder(store, zerolog.Nop())
	ctx := context.Background()

	// A finished play is recorded
	track := playedTrack("Yesterday", "1577836800")
	recorder.handle(ctx, Update{Track: &track})

	// The same sighting on the next tick is absorbed
	recorder.handle(ctx, Update{Track: &track})

	// A currently-playing entry (no date) is skipped
	playing := lastfm.Track{
		Name:   "Let It Be",
		Artist: lastfm.TrackArtist{Name: "The Beatles"},
		Attr:   &lastfm.TrackAttr{NowPlaying: "true"},
	}
	recorder.handle(ctx, Update{Track: &playing})

	// Errors are logged, not recorded
	recorder.handle(ctx, Update{Err: errors.New("network down")})

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count plays: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 recorded play, got %d", count)
	}

	plays, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("failed to list plays: %v", err)
	}
	if plays[0].Track != "Yesterday" {
		t.Errorf("expected Yesterday, got %s", plays[0].Track)
	}
	if plays[0].Image != "https://images.test/cover.png" {
		t.Errorf("unexpected image: %s", plays[0].Image)
	}
	if !plays[0].PlayedAt.Equal(time.Unix(1577836800, 0)) {
		t.Errorf("unexpected played_at: %v", plays[0].PlayedAt)
	}
}

func TestRecorder_StopsOnCancel(t *testing.T) {
	store, err := history.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	recorder := NewRecorder(store, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan Update)

	done := make(chan error, 1)
	go func() {
		done <- recorder.Run(ctx, updates)
	}()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("recorder did not stop after cancellation")
	}
}
