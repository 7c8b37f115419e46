// ABOUTME: Brief management CLI commands
// ABOUTME: Listing, inspecting, creating, archiving, and sharing briefs
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/lens/models"
	"github.com/harperreed/lens/store"
)

// ListBriefsCommand lists briefs, newest-activity markers included
func ListBriefsCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-briefs", flag.ExitOnError)
	all := fs.Bool("all", false, "Include archived briefs")
	_ = fs.Parse(args)

	state := st.State()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tCAMPAIGN\tHOOKS\tREFS\tPEOPLE\tUPDATED")
	_, _ = fmt.Fprintln(w, "--\t-----\t--------\t-----\t----\t------\t-------")

	for _, b := range state.Briefs {
		if b.Archived && !*all {
			continue
		}
		marker := " "
		if b.ID == state.ActiveBriefID {
			marker = "*"
		}
		title := b.Title
		if b.Archived {
			title += " (archived)"
		}
		_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			marker, b.ID, title, b.Campaign,
			len(b.Hooks), len(b.ReferenceVideoIDs), len(b.Collaborators),
			b.UpdatedAt.Format("2006-01-02"))
	}

	_ = w.Flush()
	return nil
}

// ShowBriefCommand prints one brief in full
func ShowBriefCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("show-brief", flag.ExitOnError)
	id := fs.String("id", "", "Brief ID (default: the active brief)")
	_ = fs.Parse(args)

	state := st.State()
	briefID := *id
	if briefID == "" {
		briefID = state.ActiveBriefID
	}
	brief, ok := store.BriefByID(state, briefID)
	if !ok {
		return fmt.Errorf("no brief with id %q", briefID)
	}

	fmt.Printf("%s\n", brief.Title)
	fmt.Printf("Campaign: %s\n", brief.Campaign)
	if brief.Angle != "" {
		fmt.Printf("Angle:    %s\n", brief.Angle)
	}
	fmt.Printf("Updated:  %s\n\n", brief.UpdatedAt.Format("2006-01-02 15:04"))
	fmt.Println(brief.Content)

	fmt.Printf("HOOKS (%d)\n", len(brief.Hooks))
	for _, h := range brief.Hooks {
		fmt.Printf("  %s  %s\n", h.Timestamp, h.VideoTitle)
	}

	fmt.Printf("\nREFERENCES (%d)\n", len(brief.ReferenceVideoIDs))
	for _, vid := range brief.ReferenceVideoIDs {
		if v, found := store.VideoByID(state, vid); found {
			fmt.Printf("  %s  %s (%s)\n", v.ID, v.Title, v.Brand)
		}
	}

	fmt.Println("\nREACTIONS")
	for _, vid := range brief.LikedVideoIDs {
		if v, found := store.VideoByID(state, vid); found {
			fmt.Printf("  + %s\n", v.Title)
		}
	}
	for _, vid := range brief.DislikedVideoIDs {
		if v, found := store.VideoByID(state, vid); found {
			fmt.Printf("  - %s\n", v.Title)
		}
	}

	fmt.Printf("\nCOLLABORATORS (%d)\n", len(brief.Collaborators))
	for _, c := range brief.Collaborators {
		owner := ""
		if c.ID == models.OwnerID {
			owner = " (owner)"
		}
		fmt.Printf("  [%s] %s <%s>%s\n", c.Initials, c.Name, c.Email, owner)
	}

	return nil
}

// AddBriefCommand creates a brief and makes it active
func AddBriefCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-brief", flag.ExitOnError)
	title := fs.String("title", "", "Brief title (required)")
	campaign := fs.String("campaign", "", "Campaign name")
	_ = fs.Parse(args)

	brief, ok := st.CreateBrief(*title, *campaign)
	if !ok {
		return fmt.Errorf("a brief needs a title")
	}

	fmt.Printf("Created brief %s (%s)\n", brief.ID, brief.Title)
	return nil
}

// EditBriefCommand updates a brief's metadata and content. Only the flags
// actually passed are applied; everything else keeps its value.
func EditBriefCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("edit-brief", flag.ExitOnError)
	id := fs.String("id", "", "Brief ID (default: the active brief)")
	title := fs.String("title", "", "New title")
	campaign := fs.String("campaign", "", "New campaign name")
	angle := fs.String("angle", "", "New creative angle")
	content := fs.String("content", "", "Replace the brief's markdown content")
	_ = fs.Parse(args)

	target := *id
	if target == "" {
		target = st.State().ActiveBriefID
	}
	if _, ok := store.BriefByID(st.State(), target); !ok {
		return fmt.Errorf("no brief with id %q", target)
	}

	meta := store.UpdateBriefMeta{BriefID: target}
	var touched bool
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			meta.Title = title
			touched = true
		case "campaign":
			meta.Campaign = campaign
			touched = true
		case "angle":
			meta.Angle = angle
			touched = true
		case "content":
			st.Dispatch(store.UpdateBriefContent{BriefID: target, Content: *content})
			touched = true
		}
	})
	if meta.Title != nil || meta.Campaign != nil || meta.Angle != nil {
		st.Dispatch(meta)
	}
	if !touched {
		return fmt.Errorf("nothing to change; pass --title, --campaign, --angle, or --content")
	}

	fmt.Printf("Updated %s\n", target)
	return nil
}

// ExportBriefCommand writes a brief's markdown content to stdout, suitable
// for piping into a file
func ExportBriefCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("export-brief", flag.ExitOnError)
	id := fs.String("id", "", "Brief ID (default: the active brief)")
	_ = fs.Parse(args)

	state := st.State()
	target := *id
	if target == "" {
		target = state.ActiveBriefID
	}
	brief, ok := store.BriefByID(state, target)
	if !ok {
		return fmt.Errorf("no brief with id %q", target)
	}

	fmt.Print(brief.Content)
	return nil
}

// ActivateBriefCommand moves activity to another brief
func ActivateBriefCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("activate-brief", flag.ExitOnError)
	id := fs.String("id", "", "Brief ID (required)")
	_ = fs.Parse(args)

	if _, ok := store.BriefByID(st.State(), *id); !ok {
		return fmt.Errorf("no brief with id %q", *id)
	}
	st.Dispatch(store.SetActiveBrief{BriefID: *id})
	fmt.Printf("Active brief is now %s\n", *id)
	return nil
}

// ArchiveBriefCommand archives a brief
func ArchiveBriefCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("archive-brief", flag.ExitOnError)
	id := fs.String("id", "", "Brief ID (required)")
	undo := fs.Bool("undo", false, "Unarchive instead")
	_ = fs.Parse(args)

	if _, ok := store.BriefByID(st.State(), *id); !ok {
		return fmt.Errorf("no brief with id %q", *id)
	}

	if *undo {
		st.Dispatch(store.UnarchiveBrief{BriefID: *id})
		fmt.Printf("Unarchived %s\n", *id)
		return nil
	}
	st.Dispatch(store.ArchiveBrief{BriefID: *id})
	fmt.Printf("Archived %s\n", *id)
	return nil
}

// AddCollaboratorCommand shares a brief with a person
func AddCollaboratorCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("add-collaborator", flag.ExitOnError)
	briefID := fs.String("brief", "", "Brief ID (default: the active brief)")
	name := fs.String("name", "", "Person name (required)")
	email := fs.String("email", "", "Email address (required)")
	_ = fs.Parse(args)

	target := *briefID
	if target == "" {
		target = st.State().ActiveBriefID
	}

	c, ok := st.AddCollaborator(target, *name, *email)
	if !ok {
		return fmt.Errorf("adding a collaborator needs a brief, a name, and an email")
	}

	fmt.Printf("Added %s [%s] to %s\n", c.Name, c.Initials, target)
	return nil
}

// RemoveCollaboratorCommand removes a person from a brief
func RemoveCollaboratorCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("remove-collaborator", flag.ExitOnError)
	briefID := fs.String("brief", "", "Brief ID (default: the active brief)")
	id := fs.String("id", "", "Collaborator ID (required)")
	_ = fs.Parse(args)

	if *id == models.OwnerID {
		return fmt.Errorf("the brief owner cannot be removed")
	}

	target := *briefID
	if target == "" {
		target = st.State().ActiveBriefID
	}

	st.RemoveCollaborator(target, *id)
	fmt.Printf("Removed %s from %s\n", *id, target)
	return nil
}
