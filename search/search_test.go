// ABOUTME: Tests for the catalog matcher and the delayed search orchestrator
// ABOUTME: Uses short delays plus Eventually-polling to observe completions
package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/lens/models"
	"github.com/harperreed/lens/store"
)

func newTestStore() *store.Store {
	return store.New(nil)
}

func TestMatchUnionsOverFields(t *testing.T) {
	videos := []models.VideoItem{
		{ID: "a", Title: "Big Buck Bunny", Brand: "Blender", Category: "Animation", Platform: models.PlatformMeta},
		{ID: "b", Title: "Sintel Trailer", Brand: "Blender", Category: "Film", Platform: models.PlatformTikTok},
		{ID: "c", Title: "Garden Tour", Brand: "GreenCo", Category: "Lifestyle", Platform: models.PlatformYouTube},
	}

	byTitle := Match(videos, "bunny")
	require.Len(t, byTitle, 1)
	assert.Equal(t, "a", byTitle[0].ID)

	byBrand := Match(videos, "blender")
	assert.Len(t, byBrand, 2)

	byCategory := Match(videos, "lifestyle")
	require.Len(t, byCategory, 1)
	assert.Equal(t, "c", byCategory[0].ID)

	byPlatform := Match(videos, "tiktok")
	require.Len(t, byPlatform, 1)
	assert.Equal(t, "b", byPlatform[0].ID)
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	videos := models.SeedVideos()
	lower := Match(videos, "nature")
	upper := Match(videos, "NATURE")
	assert.Equal(t, lower, upper)
	assert.NotEmpty(t, lower)
}

func TestMatchNoHitsFallsBackToFullCatalog(t *testing.T) {
	videos := models.SeedVideos()
	got := Match(videos, "zzzzznomatch")
	assert.Len(t, got, len(videos), "a miss surfaces the full catalog instead of an empty shelf")
}

func TestMatchEmptyQueryReturnsEverything(t *testing.T) {
	videos := models.SeedVideos()
	assert.Len(t, Match(videos, ""), len(videos))
}

func TestSearchPublishesResultsAfterDelay(t *testing.T) {
	st := newTestStore()
	done := make(chan struct{}, 1)
	o := New(st, WithDelay(5*time.Millisecond), WithNotify(func() {
		done <- struct{}{}
	}))

	o.Search("nature")

	state := st.State()
	assert.Equal(t, "nature", state.SearchQuery)
	assert.True(t, state.Searching, "dispatching a search raises the in-flight flag immediately")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("search never completed")
	}

	state = st.State()
	assert.False(t, state.Searching)
	require.NotEmpty(t, state.SearchResults)
	for _, v := range state.SearchResults {
		assert.Contains(t, v.Title, "Nature")
	}
}

func TestSearchLastDispatchedWins(t *testing.T) {
	st := newTestStore()
	done := make(chan struct{}, 2)
	o := New(st, WithDelay(10*time.Millisecond), WithNotify(func() {
		done <- struct{}{}
	}))

	o.Search("nature")
	o.Search("bunny")

	// Only the second search may publish; the first completion is stale
	// and must be dropped.
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("search never completed")
	}

	require.Eventually(t, func() bool {
		return !st.State().Searching
	}, 2*time.Second, 5*time.Millisecond)

	state := st.State()
	assert.Equal(t, "bunny", state.SearchQuery)
	for _, v := range state.SearchResults {
		assert.NotContains(t, v.Title, "Nature")
	}
}

func TestSearchRapidFireNeverRegresses(t *testing.T) {
	st := newTestStore()
	o := New(st, WithDelay(time.Millisecond))

	// Pile up overlapping searches so several timers are in flight at
	// once, ending on "bunny".
	for i := 0; i < 10; i++ {
		o.Search("nature")
		o.Search("bunny")
	}

	require.Eventually(t, func() bool {
		return !st.State().Searching
	}, 2*time.Second, time.Millisecond)

	// Let every abandoned timer fire, then check nothing overwrote the
	// winner's results.
	time.Sleep(50 * time.Millisecond)

	state := st.State()
	assert.Equal(t, "bunny", state.SearchQuery)
	assert.False(t, state.Searching)
	require.NotEmpty(t, state.SearchResults)
	for _, v := range state.SearchResults {
		assert.Contains(t, v.Title, "Bunny")
	}
}

func TestClearDiscardsPendingCompletion(t *testing.T) {
	st := newTestStore()
	o := New(st, WithDelay(20*time.Millisecond))

	o.Search("nature")
	o.Clear()

	state := st.State()
	assert.Empty(t, state.SearchQuery)
	assert.False(t, state.Searching)

	// Give the abandoned timer a chance to fire; it must not resurrect
	// the cleared search.
	time.Sleep(60 * time.Millisecond)
	state = st.State()
	assert.Empty(t, state.SearchQuery)
	assert.Empty(t, state.SearchResults)
	assert.False(t, state.Searching)
}

func TestDefaultDelay(t *testing.T) {
	assert.Equal(t, 800*time.Millisecond, DefaultDelay)
}
