// ABOUTME: Tests for the edit-flow controller.
// ABOUTME: Covers in-place edits, opt-in re-analysis, and missing entries.

package flow

import (
	"context"
	"errors"
	"testing"

	"github.com/harper/moodlog/internal/ai"
	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/models"
)

func TestEditSaveUpdatesContentAndMood(t *testing.T) {
	store := openTestStore(t)
	entry := models.NewEntry("2026-01-15", "original text", models.MoodHappy)
	if err := db.CreateEntry(store, entry); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	session, err := LoadEditSession(store, readyClassifier(models.MoodHappy), entry.ID.String())
	if err != nil {
		t.Fatalf("failed to load edit session: %v", err)
	}

	session.SetContent("revised text")
	if err := session.SetMood(models.MoodSad); err != nil {
		t.Fatalf("set mood failed: %v", err)
	}

	if _, err := session.Save(context.Background()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := db.GetEntryByID(store, entry.ID)
	if err != nil {
		t.Fatalf("failed to reload entry: %v", err)
	}
	if got.Content != "revised text" || got.Mood != models.MoodSad {
		t.Errorf("edit not persisted: %+v", got)
	}
	if !got.CreatedAt.Equal(entry.CreatedAt) {
		t.Error("CreatedAt changed on edit")
	}
	if got.UpdatedAt.Before(entry.UpdatedAt) {
		t.Error("UpdatedAt did not advance")
	}
}

func TestEditKeepsMoodByDefault(t *testing.T) {
	store := openTestStore(t)
	entry := models.NewEntry("2026-01-15", "original", models.MoodAngry)
	if err := db.CreateEntry(store, entry); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	// The classifier would say happy, but re-analysis is off.
	classifier := readyClassifier(models.MoodHappy)
	session, err := LoadEditSession(store, classifier, entry.ID.String())
	if err != nil {
		t.Fatalf("failed to load edit session: %v", err)
	}
	session.SetContent("now a wonderful day actually")

	mood, err := session.Save(context.Background())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if mood != models.MoodAngry {
		t.Errorf("mood changed without opt-in: %q", mood)
	}
	if classifier.calls != 0 {
		t.Error("classifier ran without opt-in")
	}
}

func TestEditReanalyzeOptIn(t *testing.T) {
	store := openTestStore(t)
	entry := models.NewEntry("2026-01-15", "original", models.MoodAngry)
	if err := db.CreateEntry(store, entry); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	classifier := readyClassifier(models.MoodHappy)
	session, err := LoadEditSession(store, classifier, entry.ID.String())
	if err != nil {
		t.Fatalf("failed to load edit session: %v", err)
	}
	session.SetContent("now a wonderful day actually")
	session.SetReanalyze(true)

	mood, err := session.Save(context.Background())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if mood != models.MoodHappy {
		t.Errorf("expected re-analyzed mood, got %q", mood)
	}
	if classifier.calls != 1 {
		t.Errorf("expected 1 classify call, got %d", classifier.calls)
	}

	got, _ := db.GetEntryByID(store, entry.ID)
	if got.Mood != models.MoodHappy {
		t.Errorf("re-analyzed mood not persisted: %q", got.Mood)
	}
}

func TestEditReanalyzeSkippedWhenNotReady(t *testing.T) {
	store := openTestStore(t)
	entry := models.NewEntry("2026-01-15", "original", models.MoodAngry)
	if err := db.CreateEntry(store, entry); err != nil {
		t.Fatalf("failed to seed entry: %v", err)
	}

	classifier := &stubClassifier{status: ai.StatusLoading, supported: true, mood: models.MoodHappy}
	session, err := LoadEditSession(store, classifier, entry.ID.String())
	if err != nil {
		t.Fatalf("failed to load edit session: %v", err)
	}
	session.SetReanalyze(true)

	mood, err := session.Save(context.Background())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if mood != models.MoodAngry {
		t.Errorf("expected existing mood kept, got %q", mood)
	}
}

func TestLoadEditSessionMissingEntry(t *testing.T) {
	store := openTestStore(t)

	_, err := LoadEditSession(store, readyClassifier(models.MoodHappy), "ffffffff-ffff-ffff-ffff-ffffffffffff")
	if !errors.Is(err, db.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}
