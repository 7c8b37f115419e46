// ABOUTME: Tests for the composite brief workflows on top of the store
// ABOUTME: Hook snipping, brief creation defaults, and collaborator handling
package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/lens/models"
)

func TestSnipHookAddsHookAndReference(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))

	hook, ok := s.SnipHook("v3")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(hook.ID, "hook-"))
	assert.Equal(t, "v3", hook.VideoID)
	assert.Equal(t, HookTimestamp, hook.Timestamp)

	brief, ok := s.ActiveBrief()
	require.True(t, ok)
	assert.True(t, brief.HasReference("v3"), "snipping always records the source as a reference")

	var held bool
	for _, h := range brief.Hooks {
		if h.ID == hook.ID {
			held = true
			assert.Equal(t, brief.Hooks[len(brief.Hooks)-1].ID, h.ID)
		}
	}
	assert.True(t, held)
}

func TestSnipHookUnknownVideoRefuses(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))
	before, _ := s.ActiveBrief()

	_, ok := s.SnipHook("v404")
	assert.False(t, ok)

	after, _ := s.ActiveBrief()
	assert.Equal(t, len(before.Hooks), len(after.Hooks))
}

func TestSnipHookWithoutActiveBriefRefuses(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))
	state := s.State()
	for _, b := range state.Briefs {
		s.Dispatch(ArchiveBrief{BriefID: b.ID})
	}
	require.Empty(t, s.State().ActiveBriefID)

	_, ok := s.SnipHook("v1")
	assert.False(t, ok)
}

func TestCreateBriefDefaults(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()), WithClock(fixedClock(t1)))

	brief, ok := s.CreateBrief("Summer Launch", "")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(brief.ID, "b-"))
	assert.Equal(t, "Summer Launch", brief.Title)
	assert.Equal(t, DefaultCampaign, brief.Campaign)
	assert.Equal(t, "# Summer Launch\n\nStart writing your creative brief here...\n", brief.Content)
	assert.Empty(t, brief.Hooks)
	assert.Empty(t, brief.ReferenceVideoIDs)
	require.Len(t, brief.Collaborators, 1)
	assert.Equal(t, models.OwnerID, brief.Collaborators[0].ID)
	assert.True(t, t1.Equal(brief.CreatedAt))
	assert.True(t, t1.Equal(brief.UpdatedAt))

	assert.Equal(t, brief.ID, s.State().ActiveBriefID, "a new brief becomes active")
}

func TestCreateBriefBlankTitleRefuses(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))
	before := len(s.State().Briefs)

	_, ok := s.CreateBrief("   ", "Q3")
	assert.False(t, ok)
	assert.Len(t, s.State().Briefs, before)
}

func TestCreateBriefKeepsCampaign(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))
	brief, ok := s.CreateBrief("Retention Push", "Q4 Retention")
	require.True(t, ok)
	assert.Equal(t, "Q4 Retention", brief.Campaign)
}

func TestAddCollaboratorDerivesIdentity(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))

	c, ok := s.AddCollaborator("b2", "Jane Doe", "jane@team.co")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(c.ID, "u-"))
	assert.Equal(t, "JD", c.Initials)
	// Brief b2 seeds with one collaborator, so the new avatar takes the
	// second palette slot.
	assert.Equal(t, models.AvatarColor(1), c.Color)

	b, found := BriefByID(s.State(), "b2")
	require.True(t, found)
	assert.Len(t, b.Collaborators, 2)
}

func TestAddCollaboratorBlankFieldsRefuse(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))

	_, ok := s.AddCollaborator("b1", "", "x@y.z")
	assert.False(t, ok)
	_, ok = s.AddCollaborator("b1", "Name", "  ")
	assert.False(t, ok)
	_, ok = s.AddCollaborator("missing", "Name", "x@y.z")
	assert.False(t, ok)
}

func TestAddCollaboratorDuplicateEmailIgnoredByReducer(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))

	_, ok := s.AddCollaborator("b2", "Jane Doe", "jane@team.co")
	require.True(t, ok)
	s.AddCollaborator("b2", "Other Person", "jane@team.co")

	b, found := BriefByID(s.State(), "b2")
	require.True(t, found)
	assert.Len(t, b.Collaborators, 2)
}

func TestRemoveCollaboratorProtectsOwner(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))

	s.RemoveCollaborator("b1", models.OwnerID)
	b, found := BriefByID(s.State(), "b1")
	require.True(t, found)

	var ownerPresent bool
	for _, c := range b.Collaborators {
		if c.ID == models.OwnerID {
			ownerPresent = true
		}
	}
	assert.True(t, ownerPresent)
}

func TestRemoveCollaboratorRemovesOthers(t *testing.T) {
	s := New(nil, WithLogger(quietLogger()))

	b, found := BriefByID(s.State(), "b1")
	require.True(t, found)
	require.Len(t, b.Collaborators, 2, "seed brief b1 ships with the owner plus one teammate")
	other := b.Collaborators[1]

	s.RemoveCollaborator("b1", other.ID)
	b, _ = BriefByID(s.State(), "b1")
	assert.Len(t, b.Collaborators, 1)
	assert.Equal(t, models.OwnerID, b.Collaborators[0].ID)
}
