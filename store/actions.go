// ABOUTME: Action types dispatched through the reducer
// ABOUTME: One struct per state mutation, sealed behind the Action interface
package store

import "github.com/harperreed/lens/models"

// Action is the closed set of state mutations. Every mutation flows through
// Reduce as one of the structs below; nothing else may change AppState.
type Action interface {
	isAction()
}

// SetSearchQuery replaces the current search query string.
type SetSearchQuery struct {
	Query string
}

// SetSearchResults replaces the result list and clears the in-flight flag.
type SetSearchResults struct {
	Results []models.VideoItem
}

// SetSearching sets the search in-flight flag.
type SetSearching struct {
	Searching bool
}

// ClearSearch empties the query and results and clears the in-flight flag.
type ClearSearch struct{}

// SetActiveVideo replaces the active video pointer. No existence check is
// performed; the presentation layer filters dangling pointers.
type SetActiveVideo struct {
	VideoID string
}

// SetActiveBrief replaces the active brief pointer.
type SetActiveBrief struct {
	BriefID string
}

// ToggleSidebar flips the sidebar-visible flag.
type ToggleSidebar struct{}

// SetSidebar sets the sidebar-visible flag.
type SetSidebar struct {
	Open bool
}

// AddHook appends a hook snippet to a brief's hook list.
type AddHook struct {
	BriefID string
	Hook    models.HookSnippet
}

// RemoveHook removes a hook snippet from a brief by id.
type RemoveHook struct {
	BriefID string
	HookID  string
}

// UpdateBriefContent replaces a brief's markdown content.
type UpdateBriefContent struct {
	BriefID string
	Content string
}

// UpdateBriefMeta replaces only the provided fields. Nil pointers leave the
// existing value untouched.
type UpdateBriefMeta struct {
	BriefID  string
	Title    *string
	Campaign *string
	Angle    *string
}

// CreateBrief appends a fully-formed brief and makes it active.
type CreateBrief struct {
	Brief models.Brief
}

// AddReferenceVideo adds a video id to a brief's reference set if absent.
type AddReferenceVideo struct {
	BriefID string
	VideoID string
}

// RemoveReferenceVideo removes a video id from a brief's reference set.
type RemoveReferenceVideo struct {
	BriefID string
	VideoID string
}

// LikeVideo adds the video to the liked set and removes it from disliked.
type LikeVideo struct {
	BriefID string
	VideoID string
}

// DislikeVideo adds the video to the disliked set and removes it from liked.
type DislikeVideo struct {
	BriefID string
	VideoID string
}

// UnlikeVideo removes the video from both reaction sets.
type UnlikeVideo struct {
	BriefID string
	VideoID string
}

// ArchiveBrief marks a brief archived. If it was active, activity moves to
// the first remaining non-archived brief, or to none.
type ArchiveBrief struct {
	BriefID string
}

// UnarchiveBrief clears a brief's archived flag.
type UnarchiveBrief struct {
	BriefID string
}

// AddCollaborator appends a collaborator unless the email is already taken
// within the brief.
type AddCollaborator struct {
	BriefID      string
	Collaborator models.Collaborator
}

// RemoveCollaborator removes a collaborator from a brief by id.
type RemoveCollaborator struct {
	BriefID        string
	CollaboratorID string
}

// LoadState replaces the brief list and active pointer with persisted data.
// Dispatched once during boot after a successful slot read.
type LoadState struct {
	Briefs        []models.Brief
	ActiveBriefID string
}

func (SetSearchQuery) isAction()       {}
func (SetSearchResults) isAction()     {}
func (SetSearching) isAction()         {}
func (ClearSearch) isAction()          {}
func (SetActiveVideo) isAction()       {}
func (SetActiveBrief) isAction()       {}
func (ToggleSidebar) isAction()        {}
func (SetSidebar) isAction()           {}
func (AddHook) isAction()              {}
func (RemoveHook) isAction()           {}
func (UpdateBriefContent) isAction()   {}
func (UpdateBriefMeta) isAction()      {}
func (CreateBrief) isAction()          {}
func (AddReferenceVideo) isAction()    {}
func (RemoveReferenceVideo) isAction() {}
func (LikeVideo) isAction()            {}
func (DislikeVideo) isAction()         {}
func (UnlikeVideo) isAction()          {}
func (ArchiveBrief) isAction()         {}
func (UnarchiveBrief) isAction()       {}
func (AddCollaborator) isAction()      {}
func (RemoveCollaborator) isAction()   {}
func (LoadState) isAction()            {}

// touchesBriefs reports whether an action can change the persisted slice of
// state, i.e. the brief list or the active brief pointer.
func touchesBriefs(action Action) bool {
	switch action.(type) {
	case AddHook, RemoveHook, UpdateBriefContent, UpdateBriefMeta, CreateBrief,
		AddReferenceVideo, RemoveReferenceVideo, LikeVideo, DislikeVideo,
		UnlikeVideo, ArchiveBrief, UnarchiveBrief, AddCollaborator,
		RemoveCollaborator, SetActiveBrief, LoadState:
		return true
	}
	return false
}
