// ABOUTME: Data models for the creative workbench
// ABOUTME: Defines VideoItem, Brief, HookSnippet, and Collaborator structs
package models

import (
	"strings"
	"time"
	"unicode"
)

// Platform tags the network a catalog video ran on.
type Platform string

const (
	PlatformMeta    Platform = "meta"
	PlatformTikTok  Platform = "tiktok"
	PlatformYouTube Platform = "youtube"
)

// ZoneType marks the structural role of a heatmap zone within a video.
type ZoneType string

const (
	ZoneHook  ZoneType = "hook"
	ZoneProof ZoneType = "proof"
	ZoneCTA   ZoneType = "cta"
)

// Tier is a coarse bucket summarizing a video's ad-performance metrics.
type Tier string

const (
	TierTop  Tier = "top"
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

// HeatmapZone is a labeled time range within a video. Start and End are
// percentages of the video duration, 0 <= Start < End <= 100.
type HeatmapZone struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Type  ZoneType `json:"type"`
	Label string   `json:"label"`
}

// TranscriptSegment pairs a time offset in seconds with spoken text.
// Offsets are non-decreasing across a video's transcript.
type TranscriptSegment struct {
	Time int    `json:"time"`
	Text string `json:"text"`
}

// VideoItem is a reference ad asset. Videos are immutable seed data; the
// store only mutates the associations pointing at them.
type VideoItem struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Brand           string              `json:"brand"`
	Platform        Platform            `json:"platform"`
	Category        string              `json:"category"`
	Thumbnail       string              `json:"thumbnail"`
	VideoURL        string              `json:"videoUrl"`
	Duration        int                 `json:"duration"` // seconds
	HeatmapZones    []HeatmapZone       `json:"heatmapZones"`
	Transcript      []TranscriptSegment `json:"transcript"`
	Spend           string              `json:"spend,omitempty"`
	Impressions     string              `json:"impressions,omitempty"`
	CTR             string              `json:"ctr,omitempty"`
	EngagementRate  string              `json:"engagementRate,omitempty"`
	HookRate        string              `json:"hookRate,omitempty"`
	PerformanceTier Tier                `json:"performanceTier,omitempty"`
}

// HookSnippet captures the first ~3 seconds of a video as a brief-owned
// reference. Video title and thumbnail are denormalized at snip time so the
// snippet stays meaningful if the catalog changes.
type HookSnippet struct {
	ID         string `json:"id"`
	VideoID    string `json:"videoId"`
	VideoTitle string `json:"videoTitle"`
	Thumbnail  string `json:"thumbnail"`
	Timestamp  string `json:"timestamp"`
	Notes      string `json:"notes"`
}

// Collaborator is a person granted visibility into a brief.
type Collaborator struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

// Brief is the top-level work unit: a creative document plus its collected
// hooks, references, reactions, and collaborators.
type Brief struct {
	ID                string         `json:"id"`
	Title             string         `json:"title"`
	Campaign          string         `json:"campaign"`
	Angle             string         `json:"angle"`
	Content           string         `json:"content"`
	Hooks             []HookSnippet  `json:"hooks"`
	ReferenceVideoIDs []string       `json:"referenceVideoIds"`
	LikedVideoIDs     []string       `json:"likedVideoIds"`
	DislikedVideoIDs  []string       `json:"dislikedVideoIds"`
	Collaborators     []Collaborator `json:"collaborators"`
	Archived          bool           `json:"archived"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// OwnerID is the collaborator id reserved for the brief's creator. The
// owner is seeded on every new brief and protected from removal.
const OwnerID = "u1"

// Owner returns the collaborator record representing the brief's creator.
func Owner() Collaborator {
	return Collaborator{
		ID:       OwnerID,
		Name:     "You",
		Email:    "you@team.co",
		Initials: "Y",
		Color:    "#5090f0",
	}
}

// AvatarPalette is the fixed set of collaborator display colors.
var AvatarPalette = []string{"#e8a838", "#5090f0", "#40c070", "#e06060", "#a080e0"}

// Initials derives a two-letter monogram from a display name: first letter
// of each whitespace-separated word, uppercased, truncated to 2 letters.
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		initials = append(initials, unicode.ToUpper([]rune(word)[0]))
		if len(initials) == 2 {
			break
		}
	}
	return string(initials)
}

// AvatarColor picks a palette color for the nth collaborator added to a
// brief: palette[count mod len(palette)].
func AvatarColor(count int) string {
	if count < 0 {
		count = 0
	}
	return AvatarPalette[count%len(AvatarPalette)]
}

// HasReference reports whether the brief already references the video.
func (b Brief) HasReference(videoID string) bool {
	return containsID(b.ReferenceVideoIDs, videoID)
}

// Liked reports whether the video is in the brief's liked set.
func (b Brief) Liked(videoID string) bool {
	return containsID(b.LikedVideoIDs, videoID)
}

// Disliked reports whether the video is in the brief's disliked set.
func (b Brief) Disliked(videoID string) bool {
	return containsID(b.DislikedVideoIDs, videoID)
}

// HasCollaboratorEmail reports whether any collaborator already uses the email.
func (b Brief) HasCollaboratorEmail(email string) bool {
	for _, c := range b.Collaborators {
		if c.Email == email {
			return true
		}
	}
	return false
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
