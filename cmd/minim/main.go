package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minimtab/minim/internal/bookmarks"
	"github.com/minimtab/minim/internal/exporter"
	"github.com/minimtab/minim/internal/icon"
	"github.com/minimtab/minim/internal/logger"
	"github.com/minimtab/minim/internal/storage"
	"github.com/minimtab/minim/internal/tray"
	"github.com/minimtab/minim/internal/tui"
)

func main() {
	if len(os.Args) >= 2 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "add":
			if len(os.Args) < 3 {
				fmt.Fprintf(os.Stderr, "Usage: minim add <url> [title]\n")
				os.Exit(1)
			}
			title := ""
			if len(os.Args) >= 4 {
				title = strings.Join(os.Args[3:], " ")
			}
			runAdd(os.Args[2], title)
			return
		case "list":
			runList()
			return
		case "export":
			path := ""
			if len(os.Args) >= 3 {
				path = os.Args[2]
			}
			runExport(path)
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command %q, try: minim help\n", os.Args[1])
			os.Exit(1)
		}
	}

	// No args - run full TUI
	runTUI()
}

func printHelp() {
	help := `minim - new-tab quick access in the terminal

Usage:
  minim                 Open interactive TUI
  minim add <url> [t]   Add a shortcut tile
  minim list            Print the shortcut tray
  minim export [file]   Export shortcuts as bookmarks HTML
  minim help            Show this help

TUI Keybindings:
  Tray:
    j/k         Move selection
    Enter       Open shortcut (or add on the + tile)
    a/e/d       Add / edit / delete shortcut
    Y           Copy URL to clipboard

  Bookmarks:
    b           Open/close the bookmarks sidebar
    tab         Switch pane
    h/l         Collapse/expand folder
    /           Fuzzy search bookmarks

  Other:
    q           Quit

Data Storage:
  ~/.config/minim/minim-shortcuts.json
`
	fmt.Print(help)
}

// newLogger builds the run log. The TUI owns the terminal, so logs go to a
// file, and only when MINIM_DEBUG is set.
func newLogger() logger.Logger {
	if os.Getenv("MINIM_DEBUG") == "" {
		return logger.Nop()
	}
	dir, err := storage.DefaultDataDir()
	if err != nil {
		return logger.Nop()
	}
	log, err := logger.NewFile(filepath.Join(dir, "minim.log"))
	if err != nil {
		return logger.Nop()
	}
	return log
}

// loadConfig reads the config file, falling back to defaults on any error.
func loadConfig() *storage.Config {
	path, err := storage.DefaultConfigFilePath()
	if err != nil {
		cfg := storage.DefaultConfig()
		return &cfg
	}
	cfg, err := storage.LoadConfig(path)
	if err != nil {
		defaults := storage.DefaultConfig()
		return &defaults
	}
	return cfg
}

// runTUI runs the full interactive TUI.
func runTUI() {
	log := newLogger()
	defer log.Sync()

	cfg := loadConfig()

	st, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	store := tray.NewStore(st, log)
	store.Load()

	source, available := bookmarks.Detect(cfg)
	if available {
		log.Info("bookmark capability detected")
	}
	loader := bookmarks.NewLoader(source, log)

	resolver := icon.Resolver{
		HostTemplate: cfg.HostFaviconTemplate,
		Size:         cfg.IconSize,
	}

	app := tui.NewApp(tui.AppParams{
		Store:    store,
		Loader:   loader,
		Resolver: resolver,
		Log:      log,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running app: %v\n", err)
		os.Exit(1)
	}
}

// runAdd adds a shortcut from the command line.
func runAdd(url, title string) {
	st, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	store := tray.NewStore(st, logger.Nop())
	store.Load()

	if store.Len() >= tray.MaxShortcuts {
		fmt.Fprintf(os.Stderr, "Tray is full (%d shortcuts)\n", tray.MaxShortcuts)
		os.Exit(1)
	}

	if err := store.Add(url, title); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding shortcut: %v\n", err)
		os.Exit(1)
	}

	items := store.Items()
	added := items[len(items)-1]
	fmt.Printf("Added %s (%d/%d)\n", icon.Label(added), store.Len(), tray.MaxShortcuts)
}

// runExport writes the shortcut tray as Netscape bookmarks HTML.
func runExport(path string) {
	st, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	store := tray.NewStore(st, logger.Nop())
	items := store.Load()

	if path == "" {
		path, err = exporter.DefaultExportPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving export path: %v\n", err)
			os.Exit(1)
		}
	}

	html := exporter.ExportHTML(items)
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exported %d shortcuts to %s\n", len(items), path)
}

// runList prints the shortcut tray in render order.
func runList() {
	st, err := storage.OpenStorage()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening storage: %v\n", err)
		os.Exit(1)
	}

	store := tray.NewStore(st, logger.Nop())
	items := store.Load()

	if len(items) == 0 {
		fmt.Println("No shortcuts yet. Try: minim add https://example.com")
		return
	}

	for i, item := range items {
		fmt.Printf("%2d. %-24s %s\n", i+1, icon.Label(item), item.URL)
	}
}
