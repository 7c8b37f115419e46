// ABOUTME: Application state tree and derived selectors
// ABOUTME: Defines AppState plus pure lookup helpers for the active brief and video
package store

import (
	"github.com/harperreed/lens/models"
)

// AppState is the single source of truth for all mutable workbench data.
// It is replaced wholesale by the reducer; nothing mutates it in place.
type AppState struct {
	Briefs        []models.Brief
	ActiveBriefID string
	ActiveVideoID string
	Videos        []models.VideoItem
	SearchQuery   string
	SearchResults []models.VideoItem
	SidebarOpen   bool
	Searching     bool
}

// NewAppState builds the initial state from the built-in seed dataset.
func NewAppState() AppState {
	videos := models.SeedVideos()
	briefs := models.SeedBriefs()

	state := AppState{
		Briefs:      briefs,
		Videos:      videos,
		SidebarOpen: true,
	}
	if len(briefs) > 0 {
		state.ActiveBriefID = briefs[0].ID
	}
	if len(videos) > 0 {
		state.ActiveVideoID = videos[0].ID
	}
	return state
}

// ActiveBrief looks up the brief the ActiveBriefID points at. The second
// return is false when no brief is active or the pointer is dangling.
func ActiveBrief(state AppState) (models.Brief, bool) {
	if state.ActiveBriefID == "" {
		return models.Brief{}, false
	}
	for _, b := range state.Briefs {
		if b.ID == state.ActiveBriefID {
			return b, true
		}
	}
	return models.Brief{}, false
}

// ActiveVideo looks up the video the ActiveVideoID points at.
func ActiveVideo(state AppState) (models.VideoItem, bool) {
	if state.ActiveVideoID == "" {
		return models.VideoItem{}, false
	}
	for _, v := range state.Videos {
		if v.ID == state.ActiveVideoID {
			return v, true
		}
	}
	return models.VideoItem{}, false
}

// BriefByID finds a brief in the state tree.
func BriefByID(state AppState, id string) (models.Brief, bool) {
	for _, b := range state.Briefs {
		if b.ID == id {
			return b, true
		}
	}
	return models.Brief{}, false
}

// VideoByID finds a catalog video in the state tree.
func VideoByID(state AppState, id string) (models.VideoItem, bool) {
	for _, v := range state.Videos {
		if v.ID == id {
			return v, true
		}
	}
	return models.VideoItem{}, false
}
