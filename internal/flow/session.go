// ABOUTME: Write-flow state machine: collect input, classify, confirm, save.
// ABOUTME: Handles date conflicts, model-not-ready decisions, and drafts.

package flow

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harper/moodlog/internal/ai"
	"github.com/harper/moodlog/internal/db"
	"github.com/harper/moodlog/internal/draft"
	"github.com/harper/moodlog/internal/models"
)

// State is the write-session position. Transitions are closed: anything not
// listed on a method is ErrInvalidTransition.
type State int

const (
	// StateWrite collects date and content.
	StateWrite State = iota
	// StateAnalyzing waits on the classifier. Bounded only by its latency;
	// Classify never errors once ready.
	StateAnalyzing
	// StateAwaitingDecision pauses after a submit that raced the model
	// load: the user waits, saves without AI, or cancels.
	StateAwaitingDecision
	// StateConfirm shows the suggested mood for override before saving.
	StateConfirm
	// StateManualMood is the no-AI path: the user picks the mood directly.
	StateManualMood
	// StateSaved is terminal for the session.
	StateSaved
)

func (s State) String() string {
	switch s {
	case StateWrite:
		return "write"
	case StateAnalyzing:
		return "analyzing"
	case StateAwaitingDecision:
		return "awaiting-ai-decision"
	case StateConfirm:
		return "confirm"
	case StateManualMood:
		return "manual-mood"
	case StateSaved:
		return "saved"
	}
	return "unknown"
}

var ErrInvalidTransition = errors.New("invalid state transition")

// ErrDateConflict is a normal control-flow branch, not a failure: the date
// already has an entry and the user should manage that one instead.
var ErrDateConflict = errors.New("an entry already exists for this date")

// Classifier is the narrow gateway surface the flow consumes, so tests can
// inject stubs.
type Classifier interface {
	Status() ai.Status
	Supported(ctx context.Context) bool
	Classify(ctx context.Context, content string) (models.Mood, error)
}

// Draft is the unsaved (date, content) pair carried between states so the
// user never retypes.
type Draft struct {
	Date    string
	Content string
}

// Session drives one write flow. Store, classifier, and the optional draft
// store are injected; the session holds no ambient globals.
type Session struct {
	store      *sql.DB
	classifier Classifier
	drafts     *draft.Store

	state     State
	draft     Draft
	suggested models.Mood
	selected  models.Mood
	existing  *models.Entry
}

// Option configures a Session.
type Option func(*Session)

// WithDraftStore enables pending-draft persistence across submits.
func WithDraftStore(d *draft.Store) Option {
	return func(s *Session) {
		s.drafts = d
	}
}

func NewSession(store *sql.DB, classifier Classifier, opts ...Option) *Session {
	s := &Session{
		store:      store,
		classifier: classifier,
		state:      StateWrite,
		suggested:  models.DefaultMood,
		selected:   models.DefaultMood,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State { return s.state }

func (s *Session) Draft() Draft { return s.draft }

func (s *Session) Suggested() models.Mood { return s.suggested }

func (s *Session) Selected() models.Mood { return s.selected }

func (s *Session) Existing() *models.Entry { return s.existing }

// CheckDate runs the advisory duplicate lookup for a date. An existing
// entry disables submission at the UI and is surfaced with view/edit
// shortcuts; it is not a storage constraint.
func (s *Session) CheckDate(date string) (*models.Entry, error) {
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}
	entry, err := db.GetEntryByDate(s.store, date)
	if errors.Is(err, db.ErrEntryNotFound) {
		s.existing = nil
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.existing = entry
	return entry, nil
}

// Submit takes the finished input and advances the flow. The duplicate
// check is re-run here because the earlier advisory check and this save are
// not atomic; losing that race produces a conflict, never corruption.
func (s *Session) Submit(ctx context.Context, date, content string) error {
	if s.state != StateWrite {
		return fmt.Errorf("%w: submit from %v", ErrInvalidTransition, s.state)
	}
	if err := models.ValidateDate(date); err != nil {
		return err
	}

	s.draft = Draft{Date: date, Content: models.TruncateContent(content)}
	s.saveDraft()

	existing, err := db.GetEntryByDate(s.store, date)
	if err != nil && !errors.Is(err, db.ErrEntryNotFound) {
		return err
	}
	if existing != nil {
		s.existing = existing
		return ErrDateConflict
	}

	if !s.classifier.Supported(ctx) {
		// No inference runtime at all: straight to manual selection.
		s.selected = models.DefaultMood
		s.state = StateManualMood
		return nil
	}

	if s.classifier.Status() != ai.StatusReady {
		s.state = StateAwaitingDecision
		return nil
	}

	s.state = StateAnalyzing
	mood, err := s.classifier.Classify(ctx, s.draft.Content)
	if err != nil {
		// Only reachable if readiness flipped under us; degrade like the
		// gateway would.
		mood = models.DefaultMood
	}
	s.suggested = mood
	s.selected = mood
	s.state = StateConfirm
	return nil
}

// Wait resolves awaiting-ai-decision by returning to write; the draft is
// kept and the user resubmits once the model is ready.
func (s *Session) Wait() error {
	return s.resolveDecision("wait", StateWrite)
}

// SaveWithoutAI resolves awaiting-ai-decision by skipping classification.
func (s *Session) SaveWithoutAI() error {
	if err := s.resolveDecision("save without AI", StateManualMood); err != nil {
		return err
	}
	s.selected = models.DefaultMood
	return nil
}

// CancelDecision resolves awaiting-ai-decision back to write with no change.
func (s *Session) CancelDecision() error {
	return s.resolveDecision("cancel", StateWrite)
}

func (s *Session) resolveDecision(name string, next State) error {
	if s.state != StateAwaitingDecision {
		return fmt.Errorf("%w: %s from %v", ErrInvalidTransition, name, s.state)
	}
	s.state = next
	return nil
}

// SelectMood overrides the category before finalizing.
func (s *Session) SelectMood(m models.Mood) error {
	if s.state != StateConfirm && s.state != StateManualMood {
		return fmt.Errorf("%w: select mood from %v", ErrInvalidTransition, s.state)
	}
	if !m.Valid() {
		return fmt.Errorf("%w: %q", models.ErrInvalidMood, m)
	}
	s.selected = m
	return nil
}

// Confirm commits the entry. On storage failure the state and the pending
// draft survive so the user can retry.
func (s *Session) Confirm(ctx context.Context) (*models.Entry, error) {
	if s.state != StateConfirm && s.state != StateManualMood {
		return nil, fmt.Errorf("%w: confirm from %v", ErrInvalidTransition, s.state)
	}

	entry := models.NewEntry(s.draft.Date, s.draft.Content, s.selected)
	if err := db.CreateEntry(s.store, entry); err != nil {
		return nil, err
	}

	s.state = StateSaved
	s.clearDraft()
	return entry, nil
}

// Back returns to write from confirm or manual-mood, discarding the
// pending classification but keeping date and content in the form.
func (s *Session) Back() error {
	if s.state != StateConfirm && s.state != StateManualMood {
		return fmt.Errorf("%w: back from %v", ErrInvalidTransition, s.state)
	}
	s.state = StateWrite
	return nil
}

// Resume seeds the form from a previously persisted draft, if any.
func (s *Session) Resume() (Draft, bool) {
	if s.drafts == nil {
		return Draft{}, false
	}
	d, err := s.drafts.Load()
	if err != nil {
		return Draft{}, false
	}
	s.draft = Draft{Date: d.Date, Content: d.Content}
	return s.draft, true
}

func (s *Session) saveDraft() {
	if s.drafts == nil {
		return
	}
	// Best effort: draft persistence must never block the flow.
	_ = s.drafts.Save(draft.Draft{Date: s.draft.Date, Content: s.draft.Content, Mood: s.selected})
}

func (s *Session) clearDraft() {
	if s.drafts == nil {
		return
	}
	_ = s.drafts.Clear()
}
