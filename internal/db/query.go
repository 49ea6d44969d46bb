// ABOUTME: Derived read-only queries over the entry store.
// ABOUTME: Keyword search, month ranges, and per-month mood statistics.

package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/harper/moodlog/internal/models"
)

// SearchEntries returns entries whose content contains keyword,
// case-insensitively. A full scan is fine at personal-journal scale, and
// lowercasing in Go keeps the match correct for non-ASCII text where
// SQLite's lower() would not. An empty keyword returns every entry; no
// match returns an empty slice, never an error.
func SearchEntries(db *sql.DB, keyword string) ([]*models.Entry, error) {
	entries, err := ListEntries(db)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	matched := []*models.Entry{}
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Content), needle) {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

// MonthRange returns the first and last calendar day of a month as
// YYYY-MM-DD strings. The zero-day trick normalizes month lengths,
// including leap Februaries.
func MonthRange(year int, month time.Month) (start, end string) {
	start = fmt.Sprintf("%04d-%02d-01", year, month)
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	end = fmt.Sprintf("%04d-%02d-%02d", year, month, lastDay)
	return start, end
}

// GetEntriesByMonth returns every entry dated within the given month.
func GetEntriesByMonth(db *sql.DB, year int, month time.Month) ([]*models.Entry, error) {
	start, end := MonthRange(year, month)
	return GetEntriesByDateRange(db, start, end)
}

// GetMoodStats tallies entries per mood for a month. All five counts are
// always present, zero-filled when a mood never occurs.
func GetMoodStats(db *sql.DB, year int, month time.Month) (models.MoodStats, error) {
	entries, err := GetEntriesByMonth(db, year, month)
	if err != nil {
		return models.MoodStats{}, err
	}

	var stats models.MoodStats
	for _, entry := range entries {
		stats.Add(entry.Mood)
	}
	return stats, nil
}
