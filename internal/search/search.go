package search

import (
	"github.com/minimtab/minim/internal/model"
	"github.com/sahilm/fuzzy"
)

// Result represents a fuzzy search match against a bookmark leaf.
type Result struct {
	Node           model.TreeNode
	MatchedIndexes []int
	Score          int
}

// leafTitles implements fuzzy.Source for a slice of bookmark leaves.
type leafTitles []model.TreeNode

func (lt leafTitles) String(i int) string {
	return lt[i].Title
}

func (lt leafTitles) Len() int {
	return len(lt)
}

// FuzzySearchTree searches all bookmark leaves of the forest by title using
// fuzzy matching. Returns results sorted by match score (best first).
func FuzzySearchTree(roots []model.TreeNode, query string) []Result {
	if query == "" {
		return nil
	}

	leaves := leafTitles(CollectLeaves(roots))
	matches := fuzzy.FindFrom(query, leaves)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Node:           leaves[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}

// CollectLeaves flattens the forest into its bookmark leaves in tree order.
func CollectLeaves(roots []model.TreeNode) []model.TreeNode {
	var leaves []model.TreeNode
	var walk func(model.TreeNode)
	walk = func(n model.TreeNode) {
		if n.IsLeaf() {
			leaves = append(leaves, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return leaves
}
