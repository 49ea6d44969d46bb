// ABOUTME: Database operations for diary entries.
// ABOUTME: Provides CRUD, date lookup, range queries, and prefix-based lookup.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harper/moodlog/internal/models"
)

var ErrPrefixTooShort = errors.New("prefix must be at least 6 characters")
var ErrAmbiguousPrefix = errors.New("prefix matches multiple entries")

// ErrEntryNotFound signals an empty lookup result. Callers branch on it with
// errors.Is; it is a normal outcome, not an infrastructure failure.
var ErrEntryNotFound = errors.New("entry not found")

func CreateEntry(db *sql.DB, entry *models.Entry) error {
	_, err := db.Exec(
		`INSERT INTO entries (id, date, content, mood, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.Date, entry.Content, string(entry.Mood), entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}
	return nil
}

func GetEntryByID(db *sql.DB, id uuid.UUID) (*models.Entry, error) {
	row := db.QueryRow(
		`SELECT id, date, content, mood, created_at, updated_at FROM entries WHERE id = ?`,
		id.String(),
	)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	return entry, err
}

// GetEntryByPrefix finds an entry by id prefix (minimum 6 chars).
func GetEntryByPrefix(db *sql.DB, prefix string) (*models.Entry, error) {
	if len(prefix) < 6 {
		return nil, ErrPrefixTooShort
	}

	entries, err := queryEntries(db,
		`SELECT id, date, content, mood, created_at, updated_at FROM entries WHERE id LIKE ?`,
		prefix+"%",
	)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, ErrEntryNotFound
	}
	if len(entries) > 1 {
		return nil, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(entries))
	}
	return entries[0], nil
}

// GetEntryByDate returns the first entry for a date. Duplicate dates are
// allowed by design; the stable rule is earliest created_at wins, ties
// broken by id.
func GetEntryByDate(db *sql.DB, date string) (*models.Entry, error) {
	row := db.QueryRow(
		`SELECT id, date, content, mood, created_at, updated_at FROM entries
		 WHERE date = ? ORDER BY created_at ASC, id ASC LIMIT 1`,
		date,
	)
	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	return entry, err
}

// UpdateEntryParams carries the fields an update may change. Nil fields are
// left untouched; id and created_at are never writable.
type UpdateEntryParams struct {
	Content *string
	Mood    *models.Mood
}

// UpdateEntry merges the supplied fields and refreshes updated_at. Updating
// a non-existent id is a silent no-op, preserving the embedded-database
// semantics this store replaces.
func UpdateEntry(db *sql.DB, id uuid.UUID, params UpdateEntryParams) error {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now()}

	if params.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *params.Content)
	}
	if params.Mood != nil {
		if !params.Mood.Valid() {
			return fmt.Errorf("%w: %q", models.ErrInvalidMood, *params.Mood)
		}
		sets = append(sets, "mood = ?")
		args = append(args, string(*params.Mood))
	}
	args = append(args, id.String())

	_, err := db.Exec(
		`UPDATE entries SET `+strings.Join(sets, ", ")+` WHERE id = ?`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	return nil
}

// DeleteEntry removes an entry permanently. Deleting a non-existent id is a
// no-op.
func DeleteEntry(db *sql.DB, id uuid.UUID) error {
	if _, err := db.Exec(`DELETE FROM entries WHERE id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	return nil
}

// ListEntries returns all entries, most recently created first.
func ListEntries(db *sql.DB) ([]*models.Entry, error) {
	return queryEntries(db,
		`SELECT id, date, content, mood, created_at, updated_at FROM entries
		 ORDER BY created_at DESC, id DESC`,
	)
}

// GetEntriesByDateRange returns entries with start <= date <= end. The date
// column is compared as a string on purpose: YYYY-MM-DD sorts
// lexicographically, which sidesteps calendar math entirely.
func GetEntriesByDateRange(db *sql.DB, start, end string) ([]*models.Entry, error) {
	return queryEntries(db,
		`SELECT id, date, content, mood, created_at, updated_at FROM entries
		 WHERE date >= ? AND date <= ?
		 ORDER BY date ASC, created_at ASC`,
		start, end,
	)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	entry := &models.Entry{}
	var idStr, moodStr string
	if err := row.Scan(&idStr, &entry.Date, &entry.Content, &moodStr, &entry.CreatedAt, &entry.UpdatedAt); err != nil {
		return nil, err
	}
	var parseErr error
	entry.ID, parseErr = uuid.Parse(idStr)
	if parseErr != nil {
		return nil, fmt.Errorf("invalid entry ID in database: %w", parseErr)
	}
	entry.Mood = models.Mood(moodStr)
	return entry, nil
}

func queryEntries(db *sql.DB, query string, args ...any) ([]*models.Entry, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []*models.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
