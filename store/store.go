// ABOUTME: Store owning the live state tree and the single dispatch point
// ABOUTME: Applies actions through Reduce and mirrors brief changes to the slot
package store

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harperreed/lens/models"
)

// Store holds the current AppState and funnels every mutation through
// Reduce. Dispatches are serialized by the mutex, so each action sees the
// result of the previous one regardless of which goroutine fired it (the
// search timer completes on its own goroutine).
type Store struct {
	mu     sync.RWMutex
	state  AppState
	slot   Slot
	logger *log.Logger
	now    func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger overrides the store's logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New builds a store seeded from the built-in dataset, then tries to adopt
// the persisted snapshot from slot. A missing or corrupt snapshot is logged
// and ignored; the seed data stands. slot may be nil for an ephemeral store.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		state:  NewAppState(),
		slot:   slot,
		logger: log.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	if slot != nil {
		briefs, activeID, err := LoadSlot(slot)
		switch {
		case err == nil:
			// The active pointer must reference a loaded brief; an empty or
			// dangling pointer falls back to the first brief, or to none.
			found := false
			for _, b := range briefs {
				if b.ID == activeID {
					found = true
					break
				}
			}
			if !found {
				activeID = ""
				if len(briefs) > 0 {
					activeID = briefs[0].ID
				}
			}
			s.state = Reduce(s.state, LoadState{Briefs: briefs, ActiveBriefID: activeID}, s.now())
		default:
			// Malformed or absent snapshots degrade to seed data, never crash.
			s.logger.Warn("state slot unavailable, using seed data", "err", err)
		}
	}
	return s
}

// State returns a snapshot of the current state tree. The snapshot's slices
// are shared with the live tree and must be treated as read-only.
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies one action and, when the action touches the brief list or
// the active brief pointer, mirrors the result to the durable slot.
// Persistence is best-effort: failures are logged and swallowed.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action, s.now())

	if s.slot != nil && touchesBriefs(action) {
		if err := SaveSlot(s.slot, s.state); err != nil {
			s.logger.Warn("failed to persist state", "err", err)
		}
	}
}

// ActiveBrief resolves the active brief from the current snapshot.
func (s *Store) ActiveBrief() (models.Brief, bool) {
	return ActiveBrief(s.State())
}

// ActiveVideo resolves the active video from the current snapshot.
func (s *Store) ActiveVideo() (models.VideoItem, bool) {
	return ActiveVideo(s.State())
}
