package bookmarks_test

import (
	"strings"
	"testing"

	"github.com/minimtab/minim/internal/bookmarks"
)

const sampleNetscapeExport = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><H3 ADD_DATE="1700000000">Bookmarks Bar</H3>
    <DL><p>
        <DT><A HREF="https://go.dev" ADD_DATE="1700000001">The Go Programming Language</A>
        <DT><H3>Development</H3>
        <DL><p>
            <DT><A HREF="https://github.com">GitHub</A>
            <DT><A HREF="https://pkg.go.dev"></A>
        </DL><p>
    </DL><p>
    <DT><A HREF="https://en.wikipedia.org">Wikipedia</A>
</DL><p>
`

func TestParseNetscapeHTML(t *testing.T) {
	roots, err := bookmarks.ParseNetscapeHTML(strings.NewReader(sampleNetscapeExport))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	bar := roots[0]
	if bar.Title != "Bookmarks Bar" || !bar.IsFolder() {
		t.Fatalf("expected folder root, got %+v", bar)
	}
	if len(bar.Children) != 2 {
		t.Fatalf("expected 2 children in bar, got %d", len(bar.Children))
	}
	if bar.Children[0].URL != "https://go.dev" {
		t.Errorf("unexpected first leaf: %+v", bar.Children[0])
	}

	dev := bar.Children[1]
	if dev.Title != "Development" || len(dev.Children) != 2 {
		t.Fatalf("nested folder not parsed: %+v", dev)
	}
	// An anchor without text falls back to its href.
	if dev.Children[1].Title != "https://pkg.go.dev" {
		t.Errorf("expected href as title fallback, got %q", dev.Children[1].Title)
	}

	if roots[1].Title != "Wikipedia" || !roots[1].IsLeaf() {
		t.Errorf("expected top-level leaf after folder close, got %+v", roots[1])
	}
}

func TestParseNetscapeHTML_AssignsUniqueIDs(t *testing.T) {
	roots, err := bookmarks.ParseNetscapeHTML(strings.NewReader(sampleNetscapeExport))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	seen := map[string]bool{}
	check := func(id string) {
		if id == "" {
			t.Error("node without an assigned ID")
		}
		if seen[id] {
			t.Errorf("duplicate ID %q", id)
		}
		seen[id] = true
	}

	for _, r := range roots {
		check(r.ID)
		for _, c := range r.Children {
			check(c.ID)
			for _, g := range c.Children {
				check(g.ID)
			}
		}
	}
}

func TestParseNetscapeHTML_Empty(t *testing.T) {
	roots, err := bookmarks.ParseNetscapeHTML(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(roots) != 0 {
		t.Errorf("expected no roots, got %d", len(roots))
	}
}
