package bookmarks

import (
	"encoding/json"
	"os"

	"github.com/minimtab/minim/internal/model"
)

// ChromiumSource reads a Chromium-family "Bookmarks" JSON file.
type ChromiumSource struct {
	path string
}

// NewChromiumSource creates a ChromiumSource for the given file path.
func NewChromiumSource(path string) *ChromiumSource {
	return &ChromiumSource{path: path}
}

// Path returns the Bookmarks file path.
func (s *ChromiumSource) Path() string {
	return s.path
}

// chromiumFile mirrors the subset of the Bookmarks file we read.
type chromiumFile struct {
	Roots map[string]chromiumNode `json:"roots"`
}

type chromiumNode struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"` // "url" or "folder"
	URL      string         `json:"url"`
	Children []chromiumNode `json:"children"`
}

// Roots reads and maps the file's named roots ("bookmark_bar", "other",
// "synced") into tree nodes, preserving that order.
func (s *ChromiumSource) Roots() ([]model.TreeNode, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var file chromiumFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	var roots []model.TreeNode
	for _, key := range []string{"bookmark_bar", "other", "synced"} {
		node, ok := file.Roots[key]
		if !ok {
			continue
		}
		roots = append(roots, mapChromiumNode(node))
	}
	return roots, nil
}

// mapChromiumNode converts one Chromium node and its subtree.
func mapChromiumNode(n chromiumNode) model.TreeNode {
	node := model.TreeNode{
		ID:    n.ID,
		Title: n.Name,
	}
	if n.Type == "url" {
		node.URL = n.URL
		return node
	}
	for _, c := range n.Children {
		node.Children = append(node.Children, mapChromiumNode(c))
	}
	return node
}
