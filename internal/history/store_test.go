package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestStore_Record(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	play := Play{
		Artist:   "The Beatles",
		Album:    "Help!",
		Track:    "Yesterday",
		Image:    "https://images.test/cover.png",
		PlayedAt: time.Unix(1577836800, 0),
	}

	inserted, err := store.Record(ctx, play)
	if err != nil {
		t.Fatalf("failed to record play: %v", err)
	}
	if !inserted {
		t.Error("expected first record to insert")
	}

	// Recording the same play again is a no-op
	inserted, err = store.Record(ctx, play)
	if err != nil {
		t.Fatalf("failed to record duplicate play: %v", err)
	}
	if inserted {
		t.Error("expected duplicate record to be ignored")
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count plays: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 play, got %d", count)
	}

	// Same track played at a different time is a new play
	play.PlayedAt = play.PlayedAt.Add(5 * time.Minute)
	inserted, err = store.Record(ctx, play)
	if err != nil {
		t.Fatalf("failed to record replay: %v", err)
	}
	if !inserted {
		t.Error("expected replay at new timestamp to insert")
	}
}

func TestStore_Recent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Unix(1577836800, 0)
	tracks := []string{"Yesterday", "Let It Be", "Hey Jude"}
	for i, name := range tracks {
		_, err := store.Record(ctx, Play{
			Artist:   "The Beatles",
			Track:    name,
			PlayedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to record play: %v", err)
		}
	}

	plays, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("failed to list plays: %v", err)
	}
	if len(plays) != 2 {
		t.Fatalf("expected 2 plays, got %d", len(plays))
	}

	// Newest first
	if plays[0].Track != "Hey Jude" {
		t.Errorf("expected Hey Jude first, got %s", plays[0].Track)
	}
	if plays[1].Track != "Let It Be" {
		t.Errorf("expected Let It Be second, got %s", plays[1].Track)
	}
	if !plays[0].PlayedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("unexpected played_at: %v", plays[0].PlayedAt)
	}
}

func TestStore_RecentEmpty(t *testing.T) {
	store := newTestStore(t)

	plays, err := store.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("failed to list plays: %v", err)
	}
	if len(plays) != 0 {
		t.Errorf("expected no plays, got %d", len(plays))
	}
}
