package tui

import "github.com/minimtab/minim/internal/model"

// TreeRow is one visible line of the rendered bookmark tree.
type TreeRow struct {
	Node     model.TreeNode
	Depth    int
	Expanded bool // meaningful for folders only
}

// VisibleRows flattens the forest into the rows currently visible given the
// expansion set. Children of a folder appear only while it is expanded.
func VisibleRows(roots []model.TreeNode, expanded map[string]bool) []TreeRow {
	var rows []TreeRow
	var walk func(node model.TreeNode, depth int)
	walk = func(node model.TreeNode, depth int) {
		isExpanded := expanded[node.ID]
		rows = append(rows, TreeRow{
			Node:     node,
			Depth:    depth,
			Expanded: isExpanded,
		})
		if node.IsFolder() && isExpanded {
			for _, c := range node.Children {
				walk(c, depth+1)
			}
		}
	}
	for _, r := range roots {
		walk(r, 0)
	}
	return rows
}
