// ABOUTME: Tests for the pure state transition function
// ABOUTME: Covers every action, set-semantics no-ops, and input immutability
package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/lens/models"
)

var (
	t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	t1 = time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC)
)

func testState() AppState {
	return AppState{
		Briefs: []models.Brief{
			{
				ID:                "b1",
				Title:             "First",
				Hooks:             []models.HookSnippet{},
				ReferenceVideoIDs: []string{},
				LikedVideoIDs:     []string{},
				DislikedVideoIDs:  []string{},
				Collaborators:     []models.Collaborator{models.Owner()},
				CreatedAt:         t0,
				UpdatedAt:         t0,
			},
			{
				ID:                "b2",
				Title:             "Second",
				Hooks:             []models.HookSnippet{},
				ReferenceVideoIDs: []string{},
				LikedVideoIDs:     []string{},
				DislikedVideoIDs:  []string{},
				Collaborators:     []models.Collaborator{models.Owner()},
				CreatedAt:         t0,
				UpdatedAt:         t0,
			},
			{
				ID:        "b3",
				Title:     "Third",
				CreatedAt: t0,
				UpdatedAt: t0,
			},
		},
		ActiveBriefID: "b1",
		Videos:        models.SeedVideos(),
	}
}

func briefIn(t *testing.T, state AppState, id string) models.Brief {
	t.Helper()
	b, ok := BriefByID(state, id)
	require.True(t, ok, "brief %s not found", id)
	return b
}

func TestReduceSearchFields(t *testing.T) {
	s := testState()

	s = Reduce(s, SetSearchQuery{Query: "nature"}, t1)
	assert.Equal(t, "nature", s.SearchQuery)

	s = Reduce(s, SetSearching{Searching: true}, t1)
	assert.True(t, s.Searching)

	results := s.Videos[:3]
	s = Reduce(s, SetSearchResults{Results: results}, t1)
	assert.Len(t, s.SearchResults, 3)
	assert.False(t, s.Searching, "publishing results clears the in-flight flag")

	s = Reduce(s, ClearSearch{}, t1)
	assert.Empty(t, s.SearchQuery)
	assert.Empty(t, s.SearchResults)
	assert.False(t, s.Searching)
}

func TestReducePointersAndSidebar(t *testing.T) {
	s := testState()

	s = Reduce(s, SetActiveVideo{VideoID: "v5"}, t1)
	assert.Equal(t, "v5", s.ActiveVideoID)

	s = Reduce(s, SetActiveBrief{BriefID: "b2"}, t1)
	assert.Equal(t, "b2", s.ActiveBriefID)

	s = Reduce(s, ToggleSidebar{}, t1)
	assert.True(t, s.SidebarOpen)
	s = Reduce(s, SetSidebar{Open: false}, t1)
	assert.False(t, s.SidebarOpen)
}

func TestReduceAddRemoveHook(t *testing.T) {
	s := testState()
	hook := models.HookSnippet{ID: "hook-1", VideoID: "v3", VideoTitle: "Nature - Blooming Flower"}

	s = Reduce(s, AddHook{BriefID: "b1", Hook: hook}, t1)
	b := briefIn(t, s, "b1")
	require.Len(t, b.Hooks, 1)
	assert.Equal(t, "v3", b.Hooks[0].VideoID)
	assert.Equal(t, t1, b.UpdatedAt)

	s = Reduce(s, RemoveHook{BriefID: "b1", HookID: "hook-1"}, t1)
	assert.Empty(t, briefIn(t, s, "b1").Hooks)
}

func TestReduceRemoveHookUnknownIDIsNoop(t *testing.T) {
	s := testState()
	next := Reduce(s, RemoveHook{BriefID: "b1", HookID: "nope"}, t1)
	assert.Equal(t, t0, briefIn(t, next, "b1").UpdatedAt, "missing hook must not touch updatedAt")
}

func TestReduceUpdateBriefContent(t *testing.T) {
	s := Reduce(testState(), UpdateBriefContent{BriefID: "b2", Content: "# rewritten"}, t1)
	b := briefIn(t, s, "b2")
	assert.Equal(t, "# rewritten", b.Content)
	assert.Equal(t, t1, b.UpdatedAt)

	// Sibling briefs untouched
	assert.Equal(t, t0, briefIn(t, s, "b1").UpdatedAt)
}

func TestReduceUpdateBriefMetaPartial(t *testing.T) {
	title := "Renamed"
	angle := "Problem / Solution"
	s := Reduce(testState(), UpdateBriefMeta{BriefID: "b1", Title: &title, Angle: &angle}, t1)

	b := briefIn(t, s, "b1")
	assert.Equal(t, "Renamed", b.Title)
	assert.Equal(t, "Problem / Solution", b.Angle)
	assert.Empty(t, b.Campaign, "unset fields keep their value")
	assert.Equal(t, t1, b.UpdatedAt)
}

func TestReduceCreateBriefActivates(t *testing.T) {
	s := Reduce(testState(), CreateBrief{Brief: models.Brief{ID: "b-new", Title: "New"}}, t1)
	assert.Equal(t, "b-new", s.ActiveBriefID)
	assert.Len(t, s.Briefs, 4)
	assert.Equal(t, "b-new", s.Briefs[3].ID, "new briefs append in list order")
}

func TestReduceReferenceVideoSetSemantics(t *testing.T) {
	s := testState()

	s = Reduce(s, AddReferenceVideo{BriefID: "b1", VideoID: "v7"}, t1)
	require.Equal(t, []string{"v7"}, briefIn(t, s, "b1").ReferenceVideoIDs)

	// Adding twice yields the same set as adding once
	again := Reduce(s, AddReferenceVideo{BriefID: "b1", VideoID: "v7"}, t1)
	assert.Equal(t, []string{"v7"}, briefIn(t, again, "b1").ReferenceVideoIDs)

	s = Reduce(s, RemoveReferenceVideo{BriefID: "b1", VideoID: "v7"}, t1)
	assert.Empty(t, briefIn(t, s, "b1").ReferenceVideoIDs)

	// Removing an absent id is a no-op
	s = Reduce(s, RemoveReferenceVideo{BriefID: "b1", VideoID: "v7"}, t1)
	assert.Empty(t, briefIn(t, s, "b1").ReferenceVideoIDs)
}

func TestReduceLikeDislikeMutualExclusion(t *testing.T) {
	s := testState()

	s = Reduce(s, LikeVideo{BriefID: "b1", VideoID: "v2"}, t1)
	b := briefIn(t, s, "b1")
	assert.Equal(t, []string{"v2"}, b.LikedVideoIDs)
	assert.Empty(t, b.DislikedVideoIDs)

	// Disliking moves the id out of the liked set
	s = Reduce(s, DislikeVideo{BriefID: "b1", VideoID: "v2"}, t1)
	b = briefIn(t, s, "b1")
	assert.Empty(t, b.LikedVideoIDs)
	assert.Equal(t, []string{"v2"}, b.DislikedVideoIDs)

	// Liking again flips it back
	s = Reduce(s, LikeVideo{BriefID: "b1", VideoID: "v2"}, t1)
	b = briefIn(t, s, "b1")
	assert.Equal(t, []string{"v2"}, b.LikedVideoIDs)
	assert.Empty(t, b.DislikedVideoIDs)

	// Like is idempotent
	s = Reduce(s, LikeVideo{BriefID: "b1", VideoID: "v2"}, t1)
	assert.Equal(t, []string{"v2"}, briefIn(t, s, "b1").LikedVideoIDs)

	// Unlike clears both sets
	s = Reduce(s, UnlikeVideo{BriefID: "b1", VideoID: "v2"}, t1)
	b = briefIn(t, s, "b1")
	assert.Empty(t, b.LikedVideoIDs)
	assert.Empty(t, b.DislikedVideoIDs)
}

func TestReduceArchiveReassignsActive(t *testing.T) {
	s := testState()
	require.Equal(t, "b1", s.ActiveBriefID)

	s = Reduce(s, ArchiveBrief{BriefID: "b1"}, t1)
	assert.True(t, briefIn(t, s, "b1").Archived)
	assert.Equal(t, "b2", s.ActiveBriefID, "activity moves to the first non-archived brief")

	s = Reduce(s, ArchiveBrief{BriefID: "b2"}, t1)
	s = Reduce(s, ArchiveBrief{BriefID: "b3"}, t1)
	assert.Empty(t, s.ActiveBriefID, "no non-archived briefs leaves nothing active")

	s = Reduce(s, UnarchiveBrief{BriefID: "b2"}, t1)
	assert.False(t, briefIn(t, s, "b2").Archived)
	assert.Empty(t, s.ActiveBriefID, "unarchiving does not steal activity")
}

func TestReduceArchiveInactiveBriefKeepsActive(t *testing.T) {
	s := Reduce(testState(), ArchiveBrief{BriefID: "b3"}, t1)
	assert.Equal(t, "b1", s.ActiveBriefID)
	assert.True(t, briefIn(t, s, "b3").Archived)
}

func TestReduceCollaboratorEmailUniqueness(t *testing.T) {
	s := testState()
	jane := models.Collaborator{ID: "u-jane", Name: "Jane Doe", Email: "jane@team.co"}

	s = Reduce(s, AddCollaborator{BriefID: "b1", Collaborator: jane}, t1)
	require.Len(t, briefIn(t, s, "b1").Collaborators, 2)

	dup := models.Collaborator{ID: "u-other", Name: "Someone Else", Email: "jane@team.co"}
	next := Reduce(s, AddCollaborator{BriefID: "b1", Collaborator: dup}, t1)
	b := briefIn(t, next, "b1")
	assert.Len(t, b.Collaborators, 2, "duplicate email must be ignored")
	assert.Equal(t, "u-jane", b.Collaborators[1].ID)

	next = Reduce(next, RemoveCollaborator{BriefID: "b1", CollaboratorID: "u-jane"}, t1)
	assert.Len(t, briefIn(t, next, "b1").Collaborators, 1)
}

func TestReduceUnknownBriefIsNoop(t *testing.T) {
	s := testState()
	actions := []Action{
		AddHook{BriefID: "missing", Hook: models.HookSnippet{ID: "h"}},
		RemoveHook{BriefID: "missing", HookID: "h"},
		UpdateBriefContent{BriefID: "missing", Content: "x"},
		AddReferenceVideo{BriefID: "missing", VideoID: "v1"},
		LikeVideo{BriefID: "missing", VideoID: "v1"},
		DislikeVideo{BriefID: "missing", VideoID: "v1"},
		UnlikeVideo{BriefID: "missing", VideoID: "v1"},
		ArchiveBrief{BriefID: "missing"},
		UnarchiveBrief{BriefID: "missing"},
		AddCollaborator{BriefID: "missing", Collaborator: models.Collaborator{Email: "x@y.z"}},
		RemoveCollaborator{BriefID: "missing", CollaboratorID: "u2"},
	}

	for _, action := range actions {
		next := Reduce(s, action, t1)
		assert.Equal(t, s, next, "%T targeting an unknown brief must not change state", action)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := testState()
	s = Reduce(s, AddReferenceVideo{BriefID: "b1", VideoID: "v1"}, t0)

	before := briefIn(t, s, "b1")
	require.Equal(t, []string{"v1"}, before.ReferenceVideoIDs)

	_ = Reduce(s, AddReferenceVideo{BriefID: "b1", VideoID: "v2"}, t1)
	_ = Reduce(s, RemoveReferenceVideo{BriefID: "b1", VideoID: "v1"}, t1)
	_ = Reduce(s, LikeVideo{BriefID: "b1", VideoID: "v9"}, t1)

	after := briefIn(t, s, "b1")
	assert.Equal(t, []string{"v1"}, after.ReferenceVideoIDs, "input state must stay untouched")
	assert.Empty(t, after.LikedVideoIDs)
	assert.Equal(t, t0, after.UpdatedAt)
}

func TestReduceLoadState(t *testing.T) {
	loaded := []models.Brief{{ID: "b-restored", Title: "Restored"}}
	s := Reduce(testState(), LoadState{Briefs: loaded, ActiveBriefID: "b-restored"}, t1)

	assert.Len(t, s.Briefs, 1)
	assert.Equal(t, "b-restored", s.ActiveBriefID)
	assert.Len(t, s.Videos, 12, "loading persisted briefs must not disturb the catalog")
}
