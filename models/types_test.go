// ABOUTME: Tests for workbench data models
// ABOUTME: Covers initials derivation, palette selection, and brief set helpers
package models

import "testing"

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Jane Doe", "JD"},
		{"Arjun M", "AM"},
		{"Cher", "C"},
		{"Mary Jane Watson", "MJ"},
		{"  padded   name  ", "PN"},
		{"Åke Östberg", "ÅÖ"},
		{"ümit k", "ÜK"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Initials(tc.name); got != tc.want {
			t.Errorf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAvatarColor(t *testing.T) {
	if got := AvatarColor(0); got != AvatarPalette[0] {
		t.Errorf("expected first palette color, got %s", got)
	}
	if got := AvatarColor(2); got != AvatarPalette[2] {
		t.Errorf("expected palette[2], got %s", got)
	}
	// Wraps past the end of the palette
	if got := AvatarColor(len(AvatarPalette)); got != AvatarPalette[0] {
		t.Errorf("expected wrap to palette[0], got %s", got)
	}
	if got := AvatarColor(-1); got != AvatarPalette[0] {
		t.Errorf("expected negative count to clamp, got %s", got)
	}
}

func TestOwner(t *testing.T) {
	owner := Owner()
	if owner.ID != OwnerID {
		t.Errorf("expected owner id %q, got %q", OwnerID, owner.ID)
	}
	if owner.Initials != "Y" {
		t.Errorf("expected owner initials Y, got %q", owner.Initials)
	}
}

func TestBriefSetHelpers(t *testing.T) {
	brief := Brief{
		ReferenceVideoIDs: []string{"v1", "v3"},
		LikedVideoIDs:     []string{"v1"},
		DislikedVideoIDs:  []string{"v2"},
		Collaborators: []Collaborator{
			{ID: "u1", Email: "you@team.co"},
		},
	}

	if !brief.HasReference("v1") || brief.HasReference("v2") {
		t.Error("HasReference gave wrong membership")
	}
	if !brief.Liked("v1") || brief.Liked("v2") {
		t.Error("Liked gave wrong membership")
	}
	if !brief.Disliked("v2") || brief.Disliked("v1") {
		t.Error("Disliked gave wrong membership")
	}
	if !brief.HasCollaboratorEmail("you@team.co") {
		t.Error("expected owner email to be present")
	}
	if brief.HasCollaboratorEmail("nobody@team.co") {
		t.Error("unexpected email match")
	}
}
