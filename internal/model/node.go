package model

// TreeNode is one node of the host browser's bookmark tree.
// The tree is owned by the host and read-only from our side; it is fetched
// fresh on each sidebar open and never mutated in place.
type TreeNode struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	URL      string     `json:"url,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// IsLeaf returns true if this node is a bookmark (has a URL).
func (n TreeNode) IsLeaf() bool {
	return n.URL != ""
}

// IsFolder returns true if this node is a non-empty folder.
func (n TreeNode) IsFolder() bool {
	return len(n.Children) > 0
}

// RootIDs returns the IDs of the given top-level nodes.
func RootIDs(roots []TreeNode) []string {
	ids := make([]string, len(roots))
	for i, r := range roots {
		ids[i] = r.ID
	}
	return ids
}

// CountLeaves returns the number of bookmarks in the subtree rooted at n.
func (n TreeNode) CountLeaves() int {
	count := 0
	if n.IsLeaf() {
		count++
	}
	for _, c := range n.Children {
		count += c.CountLeaves()
	}
	return count
}
