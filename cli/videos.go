// ABOUTME: Video library CLI commands
// ABOUTME: Searching the catalog, inspecting assets, snipping hooks, reacting
package cli

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/lens/search"
	"github.com/harperreed/lens/store"
)

// ListVideosCommand lists the catalog, optionally filtered by a query
func ListVideosCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("list-videos", flag.ExitOnError)
	query := fs.String("query", "", "Filter by title, brand, category, or platform")
	_ = fs.Parse(args)

	state := st.State()
	videos := state.Videos
	if *query != "" {
		videos = search.Match(videos, *query)
	}
	brief, hasBrief := store.ActiveBrief(state)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tBRAND\tPLATFORM\tTIER\tDURATION\tMARKS")
	_, _ = fmt.Fprintln(w, "--\t-----\t-----\t--------\t----\t--------\t-----")

	for _, v := range videos {
		marks := ""
		if hasBrief {
			if brief.Liked(v.ID) {
				marks += "+"
			}
			if brief.Disliked(v.ID) {
				marks += "-"
			}
			if brief.HasReference(v.ID) {
				marks += "r"
			}
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d:%02d\t%s\n",
			v.ID, v.Title, v.Brand, v.Platform, v.PerformanceTier,
			v.Duration/60, v.Duration%60, marks)
	}

	_ = w.Flush()
	return nil
}

// ShowVideoCommand prints one asset with its engagement zones and transcript
func ShowVideoCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("show-video", flag.ExitOnError)
	id := fs.String("id", "", "Video ID (required)")
	_ = fs.Parse(args)

	v, ok := store.VideoByID(st.State(), *id)
	if !ok {
		return fmt.Errorf("no video with id %q", *id)
	}

	fmt.Printf("%s\n", v.Title)
	fmt.Printf("Brand:    %s\n", v.Brand)
	fmt.Printf("Platform: %s  Category: %s  Duration: %d:%02d\n",
		v.Platform, v.Category, v.Duration/60, v.Duration%60)
	if v.PerformanceTier != "" {
		fmt.Printf("Tier:     %s  Spend: %s  CTR: %s  Hook rate: %s\n",
			v.PerformanceTier, v.Spend, v.CTR, v.HookRate)
	}

	fmt.Println("\nENGAGEMENT ZONES")
	for _, z := range v.HeatmapZones {
		fmt.Printf("  %3d%%-%3d%%  %-6s %s\n", z.Start, z.End, z.Type, z.Label)
	}

	fmt.Println("\nTRANSCRIPT")
	for _, seg := range v.Transcript {
		fmt.Printf("  %d:%02d  %s\n", seg.Time/60, seg.Time%60, seg.Text)
	}

	return nil
}

// SnipCommand captures a video's opening seconds into the active brief
func SnipCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("snip", flag.ExitOnError)
	id := fs.String("video", "", "Video ID (required)")
	_ = fs.Parse(args)

	hook, ok := st.SnipHook(*id)
	if !ok {
		return fmt.Errorf("snip needs a catalog video and an active brief")
	}

	fmt.Printf("Snipped %s of %q into the active brief\n", hook.Timestamp, hook.VideoTitle)
	return nil
}

// ReactCommand records a like, dislike, or clears a reaction
func ReactCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("react", flag.ExitOnError)
	id := fs.String("video", "", "Video ID (required)")
	verdict := fs.String("verdict", "like", "like, dislike, or clear")
	_ = fs.Parse(args)

	state := st.State()
	if state.ActiveBriefID == "" {
		return fmt.Errorf("no active brief")
	}
	if _, ok := store.VideoByID(state, *id); !ok {
		return fmt.Errorf("no video with id %q", *id)
	}

	switch *verdict {
	case "like":
		st.Dispatch(store.LikeVideo{BriefID: state.ActiveBriefID, VideoID: *id})
	case "dislike":
		st.Dispatch(store.DislikeVideo{BriefID: state.ActiveBriefID, VideoID: *id})
	case "clear":
		st.Dispatch(store.UnlikeVideo{BriefID: state.ActiveBriefID, VideoID: *id})
	default:
		return fmt.Errorf("unknown verdict %q (want like, dislike, or clear)", *verdict)
	}

	fmt.Printf("Recorded %s on %s\n", *verdict, *id)
	return nil
}

// ReferenceCommand pins or unpins a video on the active brief
func ReferenceCommand(st *store.Store, args []string) error {
	fs := flag.NewFlagSet("reference", flag.ExitOnError)
	id := fs.String("video", "", "Video ID (required)")
	remove := fs.Bool("remove", false, "Unpin instead of pin")
	_ = fs.Parse(args)

	state := st.State()
	if state.ActiveBriefID == "" {
		return fmt.Errorf("no active brief")
	}
	if _, ok := store.VideoByID(state, *id); !ok {
		return fmt.Errorf("no video with id %q", *id)
	}

	if *remove {
		st.Dispatch(store.RemoveReferenceVideo{BriefID: state.ActiveBriefID, VideoID: *id})
		fmt.Printf("Unpinned %s\n", *id)
		return nil
	}
	st.Dispatch(store.AddReferenceVideo{BriefID: state.ActiveBriefID, VideoID: *id})
	fmt.Printf("Pinned %s as a reference\n", *id)
	return nil
}
