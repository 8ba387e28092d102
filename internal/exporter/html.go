// Package exporter writes the shortcut tray as a Netscape bookmarks HTML
// file, the interchange format every major browser can import.
package exporter

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minimtab/minim/internal/icon"
	"github.com/minimtab/minim/internal/model"
)

// DefaultExportPath returns the default export file path.
// Format: ~/Downloads/minim-export-YYYY-MM-DD.html
func DefaultExportPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("minim-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// ExportHTML renders the shortcut tray to Netscape bookmark HTML. Shortcuts
// without a title are exported under their derived label.
func ExportHTML(items []model.Shortcut) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")

	b.WriteString("    <DT><H3>minim</H3>\n")
	b.WriteString("    <DL><p>\n")
	for _, item := range items {
		fmt.Fprintf(&b,
			"        <DT><A HREF=\"%s\">%s</A>\n",
			html.EscapeString(item.URL),
			html.EscapeString(icon.Label(item)),
		)
	}
	b.WriteString("    </DL><p>\n")

	b.WriteString("</DL><p>\n")

	return b.String()
}
