package tui

import (
	"testing"

	"github.com/minimtab/minim/internal/model"
)

func TestVisibleRows(t *testing.T) {
	forest := sampleForest()

	tests := []struct {
		name     string
		expanded map[string]bool
		wantIDs  []string
	}{
		{
			name:     "all collapsed shows only roots",
			expanded: map[string]bool{},
			wantIDs:  []string{"bar", "other"},
		},
		{
			name:     "roots expanded shows first level",
			expanded: map[string]bool{"bar": true, "other": true},
			wantIDs:  []string{"bar", "b1", "sub", "other", "b3"},
		},
		{
			name:     "nested folder expanded",
			expanded: map[string]bool{"bar": true, "sub": true},
			wantIDs:  []string{"bar", "b1", "sub", "b2", "other"},
		},
		{
			name:     "expanding a hidden folder has no visible effect",
			expanded: map[string]bool{"sub": true},
			wantIDs:  []string{"bar", "other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := VisibleRows(forest, tt.expanded)

			if len(rows) != len(tt.wantIDs) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if rows[i].Node.ID != want {
					t.Errorf("row %d = %q, want %q", i, rows[i].Node.ID, want)
				}
			}
		})
	}
}

func TestVisibleRows_Depth(t *testing.T) {
	rows := VisibleRows(sampleForest(), map[string]bool{"bar": true, "sub": true})

	wantDepth := map[string]int{"bar": 0, "b1": 1, "sub": 1, "b2": 2, "other": 0}
	for _, row := range rows {
		if want, ok := wantDepth[row.Node.ID]; ok && row.Depth != want {
			t.Errorf("depth of %q = %d, want %d", row.Node.ID, row.Depth, want)
		}
	}
}

func TestVisibleRows_Empty(t *testing.T) {
	if rows := VisibleRows(nil, map[string]bool{}); len(rows) != 0 {
		t.Errorf("expected no rows for empty forest, got %d", len(rows))
	}

	rows := VisibleRows([]model.TreeNode{{ID: "lone", URL: "https://x"}}, nil)
	if len(rows) != 1 || rows[0].Node.ID != "lone" {
		t.Errorf("nil expansion set must still show roots, got %v", rows)
	}
}
