// ABOUTME: Entry model representing one dated diary record with a mood label.
// ABOUTME: Provides constructor, date validation, and content truncation.

package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxContentRunes is the input cap enforced at the editing layer. The store
// itself accepts longer content without corruption; this is a UX limit.
const MaxContentRunes = 5000

// DateFormat is the calendar-date layout used everywhere. Dates stay plain
// strings so range queries compare lexicographically.
const DateFormat = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type Entry struct {
	ID        uuid.UUID
	Date      string // YYYY-MM-DD
	Content   string
	Mood      Mood
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntry builds an entry with a fresh id and CreatedAt == UpdatedAt.
func NewEntry(date, content string, mood Mood) *Entry {
	now := time.Now()
	return &Entry{
		ID:        uuid.New(),
		Date:      date,
		Content:   content,
		Mood:      mood,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes UpdatedAt. CreatedAt never changes.
func (e *Entry) Touch() {
	e.UpdatedAt = time.Now()
}

// ValidateDate checks that date is a real calendar day in YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateFormat, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return nil
}

// TruncateContent caps content at MaxContentRunes without splitting a rune,
// so multi-byte text and emoji survive intact.
func TruncateContent(content string) string {
	runes := []rune(content)
	if len(runes) <= MaxContentRunes {
		return content
	}
	return string(runes[:MaxContentRunes])
}
