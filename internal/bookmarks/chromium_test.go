package bookmarks_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minimtab/minim/internal/bookmarks"
	"github.com/minimtab/minim/internal/storage"
)

const sampleChromiumFile = `{
  "roots": {
    "bookmark_bar": {
      "id": "1",
      "name": "Bookmarks bar",
      "type": "folder",
      "children": [
        {"id": "10", "name": "Go", "type": "url", "url": "https://go.dev"},
        {
          "id": "11",
          "name": "Work",
          "type": "folder",
          "children": [
            {"id": "12", "name": "CI", "type": "url", "url": "https://ci.example.com"}
          ]
        }
      ]
    },
    "other": {
      "id": "2",
      "name": "Other bookmarks",
      "type": "folder",
      "children": []
    },
    "synced": {
      "id": "3",
      "name": "Mobile bookmarks",
      "type": "folder",
      "children": [
        {"id": "30", "name": "News", "type": "url", "url": "https://news.example.com"}
      ]
    }
  }
}`

func writeChromiumFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Bookmarks")
	if err := os.WriteFile(path, []byte(sampleChromiumFile), 0644); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}
	return path
}

func TestChromiumSource_Roots(t *testing.T) {
	source := bookmarks.NewChromiumSource(writeChromiumFile(t))

	roots, err := source.Roots()
	if err != nil {
		t.Fatalf("Roots failed: %v", err)
	}

	if len(roots) != 3 {
		t.Fatalf("expected 3 named roots, got %d", len(roots))
	}

	bar := roots[0]
	if bar.ID != "1" || bar.Title != "Bookmarks bar" {
		t.Errorf("unexpected bookmark_bar root: %+v", bar)
	}
	if len(bar.Children) != 2 {
		t.Fatalf("expected 2 children in bar, got %d", len(bar.Children))
	}
	if !bar.Children[0].IsLeaf() || bar.Children[0].URL != "https://go.dev" {
		t.Errorf("expected url leaf, got %+v", bar.Children[0])
	}
	if !bar.Children[1].IsFolder() || bar.Children[1].Children[0].ID != "12" {
		t.Errorf("nested folder not mapped: %+v", bar.Children[1])
	}

	// Empty "other" root survives mapping; the loader filters it later.
	if roots[1].IsFolder() || roots[1].IsLeaf() {
		t.Errorf("empty root should be neither folder nor leaf: %+v", roots[1])
	}
}

func TestChromiumSource_MissingFile(t *testing.T) {
	source := bookmarks.NewChromiumSource(filepath.Join(t.TempDir(), "nope"))

	if _, err := source.Roots(); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestChromiumSource_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bookmarks")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	source := bookmarks.NewChromiumSource(path)
	if _, err := source.Roots(); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestDetect_ConfiguredChromiumPath(t *testing.T) {
	cfg := &storage.Config{ChromiumBookmarksPath: writeChromiumFile(t)}

	source, ok := bookmarks.Detect(cfg)

	if !ok {
		t.Fatal("expected capability to be available")
	}
	if _, isChromium := source.(*bookmarks.ChromiumSource); !isChromium {
		t.Errorf("expected ChromiumSource, got %T", source)
	}
}
