package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"noted/internal/app"
	notedclient "noted/internal/client"
	"noted/internal/config"
	"noted/internal/logging"
	"noted/internal/types"
)

const usageText = `noted is a terminal client for a notes server.

Usage:
  noted <command> [flags]

Commands:
  ls       list notes
  add      create a note
  edit     update a note
  rm       delete a note
  search   search notes
  ui       run the terminal UI
  help     show help

Flags:
  -h, --help   show help

Examples:
  noted ls --json
  noted add --title "Milk" --content "buy two liters"
  noted edit 41 --title "Milk and eggs"
  noted rm 41
  noted search milk
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	case "ls":
		exitOnErr("ls", runLs(args[1:]))
	case "add":
		exitOnErr("add", runAdd(args[1:]))
	case "edit":
		exitOnErr("edit", runEdit(args[1:]))
	case "rm":
		exitOnErr("rm", runRm(args[1:]))
	case "search":
		exitOnErr("search", runSearch(args[1:]))
	case "ui":
		exitOnErr("ui", runUI(args[1:]))
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

func newClient() (*notedclient.Client, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	client := notedclient.New(cfg)
	client.SetLogger(logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel())))
	return client, cfg, nil
}

func runLs(args []string) error {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "print notes as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}
	notes, err := client.ListNotes(context.Background())
	if err != nil {
		return err
	}
	if *asJSON {
		return printJSON(notes)
	}
	printNotes(notes)
	return nil
}

func runAdd(args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	title := fs.String("title", "", "note title (required)")
	content := fs.String("content", "", "note content")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*title) == "" {
		return fmt.Errorf("--title is required")
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}
	note, err := client.CreateNote(context.Background(), strings.TrimSpace(*title), *content)
	if err != nil {
		return err
	}
	if note != nil && note.ID != "" {
		fmt.Println(note.ID)
	}
	return nil
}

func runEdit(args []string) error {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	title := fs.String("title", "", "new title")
	content := fs.String("content", "", "new content")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: noted edit <id> [--title ...] [--content ...]")
	}
	id := fs.Arg(0)

	titleSet := flagWasSet(fs, "title")
	contentSet := flagWasSet(fs, "content")
	if !titleSet && !contentSet {
		return fmt.Errorf("nothing to change: pass --title and/or --content")
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}
	ctx := context.Background()

	// The server replaces the whole record, so fill whichever field the user
	// left alone from the current listing.
	newTitle, newContent := *title, *content
	if !titleSet || !contentSet {
		current, err := findNote(ctx, client, id)
		if err != nil {
			return err
		}
		if !titleSet {
			newTitle = current.Title
		}
		if !contentSet {
			newContent = current.Content
		}
	}
	if strings.TrimSpace(newTitle) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	_, err = client.UpdateNote(ctx, id, strings.TrimSpace(newTitle), newContent)
	return err
}

func runRm(args []string) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: noted rm <id>")
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}
	return client.DeleteNote(context.Background(), fs.Arg(0))
}

func runSearch(args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	asJSON := fs.Bool("json", false, "print notes as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return fmt.Errorf("usage: noted search <query>")
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}
	notes, err := client.SearchNotes(context.Background(), query)
	if err != nil {
		return err
	}
	if *asJSON {
		return printJSON(notes)
	}
	printNotes(notes)
	return nil
}

func runUI(args []string) error {
	fs := flag.NewFlagSet("ui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, cfg, err := newClient()
	if err != nil {
		return err
	}
	return app.Run(app.NewClientAPI(client), cfg)
}

func findNote(ctx context.Context, client *notedclient.Client, id string) (types.Note, error) {
	notes, err := client.ListNotes(ctx)
	if err != nil {
		return types.Note{}, err
	}
	for _, note := range notes {
		if note.ID == id {
			return note, nil
		}
	}
	return types.Note{}, fmt.Errorf("note %q not found", id)
}

func printNotes(notes []types.Note) {
	writer := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tCONTENT")
	for _, note := range notes {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", note.ID, note.Title, firstLine(note.Content))
	}
	_ = writer.Flush()
}

func printJSON(notes []types.Note) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if notes == nil {
		notes = []types.Note{}
	}
	return encoder.Encode(notes)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func exitOnErr(label string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
