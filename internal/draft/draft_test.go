// ABOUTME: Tests for the pending-draft store.
// ABOUTME: Covers save/load round-trip, overwrite, and clear semantics.

package draft

import (
	"errors"
	"testing"

	"github.com/harper/moodlog/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open draft store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSaveAndLoadDraft(t *testing.T) {
	store := openTestStore(t)

	in := Draft{Date: "2026-01-15", Content: "반쯤 쓴 일기 😊", Mood: models.MoodHappy}
	if err := store.Save(in); err != nil {
		t.Fatalf("failed to save draft: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load draft: %v", err)
	}
	if got.Date != in.Date || got.Content != in.Content || got.Mood != in.Mood {
		t.Errorf("draft round-trip mismatch: %+v", got)
	}
	if got.SavedAt == 0 {
		t.Error("SavedAt was not stamped")
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(Draft{Date: "2026-01-01", Content: "first"}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := store.Save(Draft{Date: "2026-01-02", Content: "second"}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if got.Content != "second" {
		t.Errorf("expected latest draft, got %q", got.Content)
	}
}

func TestLoadEmpty(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Load(); !errors.Is(err, ErrNoDraft) {
		t.Errorf("expected ErrNoDraft, got %v", err)
	}
}

func TestClear(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(Draft{Date: "2026-01-01", Content: "pending"}); err != nil {
		t.Fatalf("failed to save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoDraft) {
		t.Errorf("expected ErrNoDraft after clear, got %v", err)
	}

	// Clearing again is a no-op.
	if err := store.Clear(); err != nil {
		t.Errorf("second clear returned error: %v", err)
	}
}
