// Package bookmarks retrieves the host browser's bookmark tree.
//
// The tree is owned by the host and read-only from our side. Availability of
// a host source is probed once at startup; when nothing is available the
// loader serves a fixed development dataset so the UI stays exercisable.
package bookmarks

import (
	"os"
	"path/filepath"

	"github.com/minimtab/minim/internal/model"
	"github.com/minimtab/minim/internal/storage"
)

// Source is a host capability that can produce the full bookmark forest.
type Source interface {
	// Roots returns the top-level bookmark folders.
	Roots() ([]model.TreeNode, error)
}

// Detect probes the host bookmark capabilities once and returns the first
// available source. The boolean is false when no capability is present.
// Probe order: configured Chromium Bookmarks file, default Chromium profile
// locations, configured bookmarks HTML export.
func Detect(cfg *storage.Config) (Source, bool) {
	if cfg != nil && cfg.ChromiumBookmarksPath != "" {
		if fileExists(cfg.ChromiumBookmarksPath) {
			return NewChromiumSource(cfg.ChromiumBookmarksPath), true
		}
	}

	for _, path := range defaultChromiumPaths() {
		if fileExists(path) {
			return NewChromiumSource(path), true
		}
	}

	if cfg != nil && cfg.BookmarksHTMLPath != "" {
		if fileExists(cfg.BookmarksHTMLPath) {
			return NewExportSource(cfg.BookmarksHTMLPath), true
		}
	}

	return nil, false
}

// defaultChromiumPaths returns the well-known Chromium-family profile
// locations for the current user.
func defaultChromiumPaths() []string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(homeDir, ".config", "google-chrome", "Default", "Bookmarks"),
		filepath.Join(homeDir, ".config", "chromium", "Default", "Bookmarks"),
		filepath.Join(homeDir, "Library", "Application Support", "Google", "Chrome", "Default", "Bookmarks"),
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
