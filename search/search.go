// ABOUTME: Simulated asynchronous search over the fixed video catalog
// ABOUTME: Fixed-delay completion with a generation counter so stale results are dropped
package search

import (
	"strings"
	"sync"
	"time"

	"github.com/harperreed/lens/models"
	"github.com/harperreed/lens/store"
)

// DefaultDelay is how long a simulated search takes to complete.
const DefaultDelay = 800 * time.Millisecond

// Orchestrator layers delayed search completion on top of the store. Each
// Search bumps a generation counter; a completion only publishes if it is
// still the latest generation, so overlapping searches resolve to "last
// dispatched wins" no matter which timer fires last. The mutex covers both
// the generation bump and the publish, so a stale completion can never
// slip its results in after a newer search has dispatched.
type Orchestrator struct {
	store  *store.Store
	delay  time.Duration
	mu     sync.Mutex
	gen    int64
	notify func()
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithDelay overrides the simulated completion delay.
func WithDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.delay = d }
}

// WithNotify registers a callback fired after results publish, so a UI loop
// can wake up and re-read the store.
func WithNotify(fn func()) Option {
	return func(o *Orchestrator) { o.notify = fn }
}

// New builds an orchestrator over the store.
func New(st *store.Store, opts ...Option) *Orchestrator {
	o := &Orchestrator{store: st, delay: DefaultDelay}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Search records the query, raises the in-flight flag, and schedules a
// completion after the fixed delay. The call returns immediately; callers
// watch the Searching flag rather than blocking.
func (o *Orchestrator) Search(query string) {
	o.mu.Lock()
	o.gen++
	gen := o.gen
	o.store.Dispatch(store.SetSearchQuery{Query: query})
	o.store.Dispatch(store.SetSearching{Searching: true})
	o.mu.Unlock()

	time.AfterFunc(o.delay, func() {
		o.mu.Lock()
		if o.gen != gen {
			o.mu.Unlock()
			return // a newer search superseded this one
		}
		results := Match(o.store.State().Videos, query)
		o.store.Dispatch(store.SetSearchResults{Results: results})
		o.mu.Unlock()

		if o.notify != nil {
			o.notify()
		}
	})
}

// Clear empties the query and results and invalidates any pending
// completion so it cannot publish after the search was abandoned.
func (o *Orchestrator) Clear() {
	o.mu.Lock()
	o.gen++
	o.store.Dispatch(store.ClearSearch{})
	o.mu.Unlock()
}

// Match filters the catalog with a case-insensitive substring test against
// title, brand, category, and platform. A query matching nothing returns
// the entire catalog: the workbench never shows an empty result grid.
func Match(videos []models.VideoItem, query string) []models.VideoItem {
	q := strings.ToLower(query)
	var results []models.VideoItem
	for _, v := range videos {
		if strings.Contains(strings.ToLower(v.Title), q) ||
			strings.Contains(strings.ToLower(v.Brand), q) ||
			strings.Contains(strings.ToLower(v.Category), q) ||
			strings.Contains(strings.ToLower(string(v.Platform)), q) {
			results = append(results, v)
		}
	}
	if len(results) == 0 {
		return videos
	}
	return results
}
