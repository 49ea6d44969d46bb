// ABOUTME: Pending-draft persistence so an interrupted or failed save never
// ABOUTME: loses the in-flight entry. Backed by a local badger store.

package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/harper/moodlog/internal/models"
)

const writeDraftKey = "draft:write"

var ErrNoDraft = errors.New("no pending draft")

// Draft is the unsaved write-flow input, kept until the entry commits.
type Draft struct {
	Date    string      `json:"date"`
	Content string      `json:"content"`
	Mood    models.Mood `json:"mood,omitempty"`
	SavedAt int64       `json:"saved_at"`
}

// Store wraps a badger database holding at most one pending draft.
type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open draft store: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save overwrites the pending draft.
func (s *Store) Save(d Draft) error {
	d.SavedAt = time.Now().Unix()
	encoded, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(writeDraftKey), encoded)
	})
}

// Load returns the pending draft, or ErrNoDraft.
func (s *Store) Load() (Draft, error) {
	var d Draft
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(writeDraftKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &d)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Draft{}, ErrNoDraft
	}
	if err != nil {
		return Draft{}, fmt.Errorf("load draft: %w", err)
	}
	return d, nil
}

// Clear removes the pending draft. Clearing an empty store is a no-op.
func (s *Store) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(writeDraftKey))
	})
}
