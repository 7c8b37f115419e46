// ABOUTME: Pure state transition function for the workbench store
// ABOUTME: Computes a new AppState from the prior state plus one action
package store

import (
	"time"

	"github.com/harperreed/lens/models"
)

// Reduce computes the next state. It never mutates its input: briefs touched
// by an action are replaced in a fresh slice, and the inner collections they
// own are rebuilt rather than appended to in place. Actions targeting an
// unknown brief id leave the state unchanged.
func Reduce(state AppState, action Action, now time.Time) AppState {
	switch a := action.(type) {
	case SetSearchQuery:
		state.SearchQuery = a.Query
		return state

	case SetSearchResults:
		state.SearchResults = a.Results
		state.Searching = false
		return state

	case SetSearching:
		state.Searching = a.Searching
		return state

	case ClearSearch:
		state.SearchQuery = ""
		state.SearchResults = nil
		state.Searching = false
		return state

	case SetActiveVideo:
		state.ActiveVideoID = a.VideoID
		return state

	case SetActiveBrief:
		state.ActiveBriefID = a.BriefID
		return state

	case ToggleSidebar:
		state.SidebarOpen = !state.SidebarOpen
		return state

	case SetSidebar:
		state.SidebarOpen = a.Open
		return state

	case AddHook:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			b.Hooks = append(copyHooks(b.Hooks), a.Hook)
			b.UpdatedAt = now
			return b
		})

	case RemoveHook:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			hooks := make([]models.HookSnippet, 0, len(b.Hooks))
			for _, h := range b.Hooks {
				if h.ID != a.HookID {
					hooks = append(hooks, h)
				}
			}
			if len(hooks) == len(b.Hooks) {
				return b
			}
			b.Hooks = hooks
			b.UpdatedAt = now
			return b
		})

	case UpdateBriefContent:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			b.Content = a.Content
			b.UpdatedAt = now
			return b
		})

	case UpdateBriefMeta:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			if a.Title != nil {
				b.Title = *a.Title
			}
			if a.Campaign != nil {
				b.Campaign = *a.Campaign
			}
			if a.Angle != nil {
				b.Angle = *a.Angle
			}
			b.UpdatedAt = now
			return b
		})

	case CreateBrief:
		briefs := make([]models.Brief, 0, len(state.Briefs)+1)
		briefs = append(briefs, state.Briefs...)
		briefs = append(briefs, a.Brief)
		state.Briefs = briefs
		state.ActiveBriefID = a.Brief.ID
		return state

	case AddReferenceVideo:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			if b.HasReference(a.VideoID) {
				return b
			}
			b.ReferenceVideoIDs = append(copyIDs(b.ReferenceVideoIDs), a.VideoID)
			b.UpdatedAt = now
			return b
		})

	case RemoveReferenceVideo:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			if !b.HasReference(a.VideoID) {
				return b
			}
			b.ReferenceVideoIDs = withoutID(b.ReferenceVideoIDs, a.VideoID)
			b.UpdatedAt = now
			return b
		})

	case LikeVideo:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			if !b.Liked(a.VideoID) {
				b.LikedVideoIDs = append(copyIDs(b.LikedVideoIDs), a.VideoID)
			}
			b.DislikedVideoIDs = withoutID(b.DislikedVideoIDs, a.VideoID)
			b.UpdatedAt = now
			return b
		})

	case DislikeVideo:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			if !b.Disliked(a.VideoID) {
				b.DislikedVideoIDs = append(copyIDs(b.DislikedVideoIDs), a.VideoID)
			}
			b.LikedVideoIDs = withoutID(b.LikedVideoIDs, a.VideoID)
			b.UpdatedAt = now
			return b
		})

	case UnlikeVideo:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			b.LikedVideoIDs = withoutID(b.LikedVideoIDs, a.VideoID)
			b.DislikedVideoIDs = withoutID(b.DislikedVideoIDs, a.VideoID)
			b.UpdatedAt = now
			return b
		})

	case ArchiveBrief:
		next := mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			b.Archived = true
			b.UpdatedAt = now
			return b
		})
		// Archiving the active brief reassigns activity to the first
		// non-archived brief in list order, or to none.
		if next.ActiveBriefID == a.BriefID {
			next.ActiveBriefID = ""
			for _, b := range next.Briefs {
				if !b.Archived {
					next.ActiveBriefID = b.ID
					break
				}
			}
		}
		return next

	case UnarchiveBrief:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			b.Archived = false
			b.UpdatedAt = now
			return b
		})

	case AddCollaborator:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			if b.HasCollaboratorEmail(a.Collaborator.Email) {
				return b
			}
			collabs := make([]models.Collaborator, 0, len(b.Collaborators)+1)
			collabs = append(collabs, b.Collaborators...)
			collabs = append(collabs, a.Collaborator)
			b.Collaborators = collabs
			b.UpdatedAt = now
			return b
		})

	case RemoveCollaborator:
		return mapBrief(state, a.BriefID, func(b models.Brief) models.Brief {
			collabs := make([]models.Collaborator, 0, len(b.Collaborators))
			for _, c := range b.Collaborators {
				if c.ID != a.CollaboratorID {
					collabs = append(collabs, c)
				}
			}
			if len(collabs) == len(b.Collaborators) {
				return b
			}
			b.Collaborators = collabs
			b.UpdatedAt = now
			return b
		})

	case LoadState:
		state.Briefs = a.Briefs
		state.ActiveBriefID = a.ActiveBriefID
		return state
	}

	return state
}

// mapBrief replaces the brief with the given id using fn. When the id is not
// present the original state is returned untouched. fn is expected to return
// its argument unchanged for set-semantics no-ops so updatedAt is only
// refreshed by a real mutation.
func mapBrief(state AppState, briefID string, fn func(models.Brief) models.Brief) AppState {
	for i, b := range state.Briefs {
		if b.ID != briefID {
			continue
		}
		updated := fn(b)
		briefs := make([]models.Brief, len(state.Briefs))
		copy(briefs, state.Briefs)
		briefs[i] = updated
		state.Briefs = briefs
		return state
	}
	return state
}

func copyIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func copyHooks(hooks []models.HookSnippet) []models.HookSnippet {
	out := make([]models.HookSnippet, len(hooks))
	copy(out, hooks)
	return out
}

func withoutID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
