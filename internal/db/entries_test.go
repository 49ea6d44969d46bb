// ABOUTME: Tests for entry database operations.
// ABOUTME: Covers create, lookup, partial update, idempotent delete, ordering.

package db

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harper/moodlog/internal/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateAndGetEntry(t *testing.T) {
	db := openTestDB(t)

	entry := models.NewEntry("2026-01-15", "좋은 하루 😊", models.MoodHappy)
	if err := CreateEntry(db, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	got, err := GetEntryByID(db, entry.ID)
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}

	if got.Date != entry.Date {
		t.Errorf("expected date %q, got %q", entry.Date, got.Date)
	}
	if got.Content != entry.Content {
		t.Errorf("expected content %q, got %q", entry.Content, got.Content)
	}
	if got.Mood != models.MoodHappy {
		t.Errorf("expected mood happy, got %q", got.Mood)
	}
	if !got.CreatedAt.Equal(got.UpdatedAt) {
		t.Errorf("expected CreatedAt == UpdatedAt, got %v and %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestGetEntryByIDNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := GetEntryByID(db, uuid.New())
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestGetEntryByPrefix(t *testing.T) {
	db := openTestDB(t)

	entry := models.NewEntry("2026-01-15", "content", models.MoodNeutral)
	if err := CreateEntry(db, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	got, err := GetEntryByPrefix(db, entry.ID.String()[:8])
	if err != nil {
		t.Fatalf("failed to get entry by prefix: %v", err)
	}
	if got.ID != entry.ID {
		t.Errorf("expected ID %v, got %v", entry.ID, got.ID)
	}

	if _, err := GetEntryByPrefix(db, "abc"); !errors.Is(err, ErrPrefixTooShort) {
		t.Errorf("expected ErrPrefixTooShort, got %v", err)
	}
}

func TestGetEntryByDateFirstOfDuplicates(t *testing.T) {
	db := openTestDB(t)

	first := models.NewEntry("2026-02-01", "first", models.MoodHappy)
	if err := CreateEntry(db, first); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	second := models.NewEntry("2026-02-01", "second", models.MoodSad)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	second.UpdatedAt = second.CreatedAt
	if err := CreateEntry(db, second); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	got, err := GetEntryByDate(db, "2026-02-01")
	if err != nil {
		t.Fatalf("failed to get entry by date: %v", err)
	}
	if got.ID != first.ID {
		t.Errorf("expected earliest entry %v, got %v", first.ID, got.ID)
	}

	// Both duplicates remain retrievable through the list.
	all, err := ListEntries(db)
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 entries, got %d", len(all))
	}
}

func TestGetEntryByDateNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := GetEntryByDate(db, "2026-03-03")
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestUpdateEntryPartial(t *testing.T) {
	db := openTestDB(t)

	entry := models.NewEntry("2026-01-15", "original", models.MoodHappy)
	if err := CreateEntry(db, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	mood := models.MoodSad
	if err := UpdateEntry(db, entry.ID, UpdateEntryParams{Mood: &mood}); err != nil {
		t.Fatalf("failed to update entry: %v", err)
	}

	got, err := GetEntryByID(db, entry.ID)
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}
	if got.Mood != models.MoodSad {
		t.Errorf("expected mood sad, got %q", got.Mood)
	}
	if got.Content != "original" {
		t.Errorf("content changed on mood-only update: %q", got.Content)
	}
	if got.ID != entry.ID {
		t.Error("id changed on update")
	}
	if !got.CreatedAt.Equal(entry.CreatedAt) {
		t.Errorf("CreatedAt changed on update: %v vs %v", got.CreatedAt, entry.CreatedAt)
	}
	if got.UpdatedAt.Before(entry.UpdatedAt) {
		t.Errorf("UpdatedAt moved backwards: %v vs %v", got.UpdatedAt, entry.UpdatedAt)
	}
}

func TestUpdateEntryContentOnly(t *testing.T) {
	db := openTestDB(t)

	entry := models.NewEntry("2026-01-15", "original", models.MoodHappy)
	if err := CreateEntry(db, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	content := "revised"
	if err := UpdateEntry(db, entry.ID, UpdateEntryParams{Content: &content}); err != nil {
		t.Fatalf("failed to update entry: %v", err)
	}

	got, _ := GetEntryByID(db, entry.ID)
	if got.Content != "revised" {
		t.Errorf("expected content 'revised', got %q", got.Content)
	}
	if got.Mood != models.MoodHappy {
		t.Errorf("mood changed on content-only update: %q", got.Mood)
	}
}

func TestUpdateEntryMissingIDIsNoOp(t *testing.T) {
	db := openTestDB(t)

	content := "ghost"
	if err := UpdateEntry(db, uuid.New(), UpdateEntryParams{Content: &content}); err != nil {
		t.Errorf("expected no-op nil, got %v", err)
	}
}

func TestUpdateEntryRejectsInvalidMood(t *testing.T) {
	db := openTestDB(t)

	entry := models.NewEntry("2026-01-15", "content", models.MoodHappy)
	if err := CreateEntry(db, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	bad := models.Mood("ecstatic")
	err := UpdateEntry(db, entry.ID, UpdateEntryParams{Mood: &bad})
	if !errors.Is(err, models.ErrInvalidMood) {
		t.Errorf("expected ErrInvalidMood, got %v", err)
	}
}

func TestDeleteEntryIdempotent(t *testing.T) {
	db := openTestDB(t)

	entry := models.NewEntry("2026-01-15", "content", models.MoodNeutral)
	if err := CreateEntry(db, entry); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	if err := DeleteEntry(db, entry.ID); err != nil {
		t.Fatalf("failed to delete entry: %v", err)
	}
	if _, err := GetEntryByID(db, entry.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound after delete, got %v", err)
	}

	// Second delete is a no-op, not an error.
	if err := DeleteEntry(db, entry.ID); err != nil {
		t.Errorf("second delete returned error: %v", err)
	}
}

func TestListEntriesOrder(t *testing.T) {
	db := openTestDB(t)

	older := models.NewEntry("2026-01-01", "older", models.MoodNeutral)
	newer := models.NewEntry("2026-01-02", "newer", models.MoodNeutral)
	newer.CreatedAt = older.CreatedAt.Add(time.Minute)
	newer.UpdatedAt = newer.CreatedAt

	if err := CreateEntry(db, older); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	if err := CreateEntry(db, newer); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	entries, err := ListEntries(db)
	if err != nil {
		t.Fatalf("failed to list entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != newer.ID {
		t.Error("expected most recently created entry first")
	}
}

func TestGetEntriesByDateRange(t *testing.T) {
	db := openTestDB(t)

	dates := []string{"2026-01-31", "2026-02-01", "2026-02-28", "2026-03-01"}
	for _, d := range dates {
		if err := CreateEntry(db, models.NewEntry(d, "entry "+d, models.MoodNeutral)); err != nil {
			t.Fatalf("failed to create entry: %v", err)
		}
	}

	entries, err := GetEntriesByDateRange(db, "2026-02-01", "2026-02-28")
	if err != nil {
		t.Fatalf("failed to query range: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries in range, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Date < "2026-02-01" || e.Date > "2026-02-28" {
			t.Errorf("entry %q outside range", e.Date)
		}
	}
}
