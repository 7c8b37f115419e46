// ABOUTME: Entry point for the lens video ad workbench
// ABOUTME: Routes to the full-screen TUI or CLI commands based on arguments
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/harperreed/lens/cli"
	"github.com/harperreed/lens/db"
	"github.com/harperreed/lens/store"
	"github.com/harperreed/lens/tui"
)

const version = "0.1.0"

func main() {
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded .env")
	}

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dbPath := flag.String("db-path", "", "State database path (default: ~/.local/share/lens/state.db)")
	query := flag.String("query", "", "Start the TUI with a search already running")
	briefID := flag.String("brief", "", "Start with this brief active")

	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("lens version %s\n", version)
		os.Exit(0)
	}

	kv, err := db.Open(getStatePath(*dbPath))
	if err != nil {
		log.Fatal("failed to open state database", "err", err)
	}
	defer func() { _ = kv.Close() }()

	st := store.New(kv)
	if *briefID != "" {
		if _, ok := store.BriefByID(st.State(), *briefID); ok {
			st.Dispatch(store.SetActiveBrief{BriefID: *briefID})
		} else {
			log.Warn("ignoring unknown brief id", "id", *briefID)
		}
	}

	args := flag.Args()

	// No command starts the full-screen workbench
	if len(args) == 0 {
		if err := tui.Run(st, *query, searchDelayFromEnv()); err != nil {
			log.Fatal("workbench failed", "err", err)
		}
		return
	}

	command := args[0]
	commandArgs := args[1:]

	var cmdErr error
	switch command {
	case "list-briefs":
		cmdErr = cli.ListBriefsCommand(st, commandArgs)
	case "show-brief":
		cmdErr = cli.ShowBriefCommand(st, commandArgs)
	case "edit-brief":
		cmdErr = cli.EditBriefCommand(st, commandArgs)
	case "export-brief":
		cmdErr = cli.ExportBriefCommand(st, commandArgs)
	case "add-brief":
		cmdErr = cli.AddBriefCommand(st, commandArgs)
	case "activate-brief":
		cmdErr = cli.ActivateBriefCommand(st, commandArgs)
	case "archive-brief":
		cmdErr = cli.ArchiveBriefCommand(st, commandArgs)
	case "add-collaborator":
		cmdErr = cli.AddCollaboratorCommand(st, commandArgs)
	case "remove-collaborator":
		cmdErr = cli.RemoveCollaboratorCommand(st, commandArgs)
	case "list-videos":
		cmdErr = cli.ListVideosCommand(st, commandArgs)
	case "show-video":
		cmdErr = cli.ShowVideoCommand(st, commandArgs)
	case "snip":
		cmdErr = cli.SnipCommand(st, commandArgs)
	case "react":
		cmdErr = cli.ReactCommand(st, commandArgs)
	case "reference":
		cmdErr = cli.ReferenceCommand(st, commandArgs)
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		log.Fatal("command failed", "err", cmdErr)
	}
}

// searchDelayFromEnv reads LENS_SEARCH_DELAY_MS; zero means the default.
func searchDelayFromEnv() time.Duration {
	raw := os.Getenv("LENS_SEARCH_DELAY_MS")
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Warn("ignoring invalid LENS_SEARCH_DELAY_MS", "value", raw)
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func getStatePath(dbPath string) string {
	if dbPath != "" {
		return dbPath
	}
	if env := os.Getenv("LENS_DB_PATH"); env != "" {
		return env
	}
	return db.DefaultPath()
}

func printUsage() {
	fmt.Printf(`lens v%s - Video ad workbench

USAGE:
  lens [global flags] [command] [flags]

Running lens with no command opens the full-screen workbench.

GLOBAL FLAGS:
  --version              Show version and exit
  --db-path <path>       State database path (default: ~/.local/share/lens/state.db)
  --query <text>         Start the TUI with a search already running
  --brief <id>           Start with this brief active

BRIEF COMMANDS:
  lens list-briefs          List briefs
    --all                     Include archived briefs

  lens show-brief           Print one brief in full
    --id <id>                 Brief ID (default: the active brief)

  lens add-brief            Create a brief and make it active
    --title <title>           Brief title (required)
    --campaign <name>         Campaign name

  lens edit-brief           Update a brief's metadata or content
    --id <id>                 Brief ID (default: the active brief)
    --title <title>           New title
    --campaign <name>         New campaign name
    --angle <angle>           New creative angle
    --content <markdown>      Replace the brief's markdown content

  lens export-brief         Write a brief's markdown content to stdout
    --id <id>                 Brief ID (default: the active brief)

  lens activate-brief       Move activity to another brief
    --id <id>                 Brief ID (required)

  lens archive-brief        Archive a brief
    --id <id>                 Brief ID (required)
    --undo                    Unarchive instead

  lens add-collaborator     Share a brief with a person
    --brief <id>              Brief ID (default: the active brief)
    --name <name>             Person name (required)
    --email <email>           Email address (required)

  lens remove-collaborator  Remove a person from a brief
    --brief <id>              Brief ID (default: the active brief)
    --id <id>                 Collaborator ID (required)

VIDEO COMMANDS:
  lens list-videos          List the catalog
    --query <text>            Filter by title, brand, category, or platform

  lens show-video           Print one asset with zones and transcript
    --id <id>                 Video ID (required)

  lens snip                 Capture a video's opening seconds into the active brief
    --video <id>              Video ID (required)

  lens react                Record a reaction on the active brief
    --video <id>              Video ID (required)
    --verdict <v>             like, dislike, or clear (default: like)

  lens reference            Pin or unpin a video on the active brief
    --video <id>              Video ID (required)
    --remove                  Unpin instead of pin
`, version)
}
