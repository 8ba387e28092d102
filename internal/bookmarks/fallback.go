package bookmarks

import "github.com/minimtab/minim/internal/model"

// FallbackTree returns the fixed development dataset served when no host
// bookmark capability is available. Deterministic so the sidebar is
// exercisable (and testable) outside the host browser.
func FallbackTree() []model.TreeNode {
	return []model.TreeNode{
		{
			ID:    "dev-bar",
			Title: "Bookmarks Bar",
			Children: []model.TreeNode{
				{ID: "dev-1", Title: "Go", URL: "https://go.dev"},
				{ID: "dev-2", Title: "Hacker News", URL: "https://news.ycombinator.com"},
				{
					ID:    "dev-dev",
					Title: "Development",
					Children: []model.TreeNode{
						{ID: "dev-3", Title: "GitHub", URL: "https://github.com"},
						{ID: "dev-4", Title: "Go Packages", URL: "https://pkg.go.dev"},
					},
				},
			},
		},
		{
			ID:    "dev-other",
			Title: "Other Bookmarks",
			Children: []model.TreeNode{
				{ID: "dev-5", Title: "Wikipedia", URL: "https://en.wikipedia.org"},
			},
		},
	}
}
