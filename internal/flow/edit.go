// ABOUTME: Edit-flow controller: in-place content/mood edits of an entry.
// ABOUTME: Re-classification is an explicit opt-in, never automatic.

package flow

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harper/moodlog/internal/ai"
	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/models"
)

// EditSession edits one existing entry. Unlike the write flow, edited
// entries keep their stored mood unless the user asks for re-analysis.
type EditSession struct {
	store      *sql.DB
	classifier Classifier

	entry     *models.Entry
	content   string
	mood      models.Mood
	reanalyze bool
}

// NewEditSession loads the entry to edit. A missing id surfaces as
// db.ErrEntryNotFound for the caller to render as a calm empty state.
func NewEditSession(store *sql.DB, classifier Classifier, entry *models.Entry) *EditSession {
	return &EditSession{
		store:      store,
		classifier: classifier,
		entry:      entry,
		content:    entry.Content,
		mood:       entry.Mood,
	}
}

// LoadEditSession fetches the entry by id and builds the session.
func LoadEditSession(store *sql.DB, classifier Classifier, id string) (*EditSession, error) {
	entry, err := db.GetEntryByPrefix(store, id)
	if err != nil {
		return nil, err
	}
	return NewEditSession(store, classifier, entry), nil
}

func (e *EditSession) Entry() *models.Entry { return e.entry }

func (e *EditSession) Content() string { return e.content }

func (e *EditSession) Mood() models.Mood { return e.mood }

// SetContent replaces the draft content, truncated to the input cap.
func (e *EditSession) SetContent(content string) {
	e.content = models.TruncateContent(content)
}

// SetMood overrides the category directly.
func (e *EditSession) SetMood(m models.Mood) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidMood, m)
	}
	e.mood = m
	return nil
}

// SetReanalyze opts in to running the classifier again on save.
func (e *EditSession) SetReanalyze(on bool) {
	e.reanalyze = on
}

// Save writes the edits as a partial update. When re-analysis is requested
// and the classifier is ready, the fresh suggestion replaces the mood; a
// degraded classification keeps the neutral fallback semantics of the
// gateway, and an unready classifier silently keeps the existing mood.
func (e *EditSession) Save(ctx context.Context) (models.Mood, error) {
	if e.reanalyze && e.classifier.Status() == ai.StatusReady {
		mood, err := e.classifier.Classify(ctx, e.content)
		if err == nil {
			e.mood = mood
		}
	}

	params := db.UpdateEntryParams{Content: &e.content, Mood: &e.mood}
	if err := db.UpdateEntry(e.store, e.entry.ID, params); err != nil {
		return "", err
	}
	return e.mood, nil
}
