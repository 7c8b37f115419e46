// ABOUTME: Domain workflows composed from store actions
// ABOUTME: Snipping hooks, creating briefs, and managing collaborators
package store

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/harperreed/lens/models"
)

// HookTimestamp is the literal range label every snipped hook carries; a
// hook is always the first three seconds of its source video.
const HookTimestamp = "0:00 – 0:03"

// DefaultCampaign replaces a blank campaign name on brief creation.
const DefaultCampaign = "Untitled Campaign"

// SnipHook captures the opening seconds of a video into the active brief and
// records the video as a reference (a snip always implies a reference).
// Returns false without dispatching when there is no active brief or the
// video is not in the catalog.
func (s *Store) SnipHook(videoID string) (models.HookSnippet, bool) {
	state := s.State()
	video, ok := VideoByID(state, videoID)
	if !ok || state.ActiveBriefID == "" {
		return models.HookSnippet{}, false
	}

	hook := models.HookSnippet{
		ID:         fmt.Sprintf("hook-%s", newULID()),
		VideoID:    video.ID,
		VideoTitle: video.Title,
		Thumbnail:  video.Thumbnail,
		Timestamp:  HookTimestamp,
	}

	s.Dispatch(AddHook{BriefID: state.ActiveBriefID, Hook: hook})
	s.Dispatch(AddReferenceVideo{BriefID: state.ActiveBriefID, VideoID: videoID})
	return hook, true
}

// CreateBrief builds a brief seeded with defaults and makes it active. A
// blank title refuses to act; a blank campaign falls back to the placeholder.
func (s *Store) CreateBrief(title, campaign string) (models.Brief, bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Brief{}, false
	}
	campaign = strings.TrimSpace(campaign)
	if campaign == "" {
		campaign = DefaultCampaign
	}

	now := s.now()
	brief := models.Brief{
		ID:                fmt.Sprintf("b-%s", newULID()),
		Title:             title,
		Campaign:          campaign,
		Content:           fmt.Sprintf("# %s\n\nStart writing your creative brief here...\n", title),
		Hooks:             []models.HookSnippet{},
		ReferenceVideoIDs: []string{},
		LikedVideoIDs:     []string{},
		DislikedVideoIDs:  []string{},
		Collaborators:     []models.Collaborator{models.Owner()},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	s.Dispatch(CreateBrief{Brief: brief})
	return brief, true
}

// AddCollaborator derives initials and a palette color for the person and
// delegates to the add-collaborator action. Blank name or email, or an
// unknown brief, refuses to act. Duplicate emails are dropped silently by
// the reducer.
func (s *Store) AddCollaborator(briefID, name, email string) (models.Collaborator, bool) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return models.Collaborator{}, false
	}
	brief, ok := BriefByID(s.State(), briefID)
	if !ok {
		return models.Collaborator{}, false
	}

	collaborator := models.Collaborator{
		ID:       fmt.Sprintf("u-%s", uuid.New()),
		Name:     name,
		Email:    email,
		Initials: models.Initials(name),
		Color:    models.AvatarColor(len(brief.Collaborators)),
	}

	s.Dispatch(AddCollaborator{BriefID: briefID, Collaborator: collaborator})
	return collaborator, true
}

// RemoveCollaborator removes a collaborator from a brief. The brief's owner
// is protected and never removed.
func (s *Store) RemoveCollaborator(briefID, collaboratorID string) {
	if collaboratorID == models.OwnerID {
		return
	}
	s.Dispatch(RemoveCollaborator{BriefID: briefID, CollaboratorID: collaboratorID})
}

func newULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
