package bookmarks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/minimtab/minim/internal/model"
)

// ExportSource reads a Netscape bookmarks HTML export, the interchange
// format every major browser can write.
type ExportSource struct {
	path string
}

// NewExportSource creates an ExportSource for the given file path.
func NewExportSource(path string) *ExportSource {
	return &ExportSource{path: path}
}

// Path returns the export file path.
func (s *ExportSource) Path() string {
	return s.path
}

// Roots parses the export into top-level tree nodes.
func (s *ExportSource) Roots() ([]model.TreeNode, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseNetscapeHTML(file)
}

// ParseNetscapeHTML parses Netscape bookmark HTML into a bookmark forest.
// The export format has no node IDs, so stable session-scoped IDs are
// assigned in document order.
func ParseNetscapeHTML(r io.Reader) ([]model.TreeNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var roots []model.TreeNode
	nextID := 0
	assignID := func() string {
		nextID++
		return fmt.Sprintf("n%d", nextID)
	}

	// Stack of folders currently open; nil target = top level.
	var folderStack []*model.TreeNode
	var pendingFolder *model.TreeNode // folder waiting for its DL

	appendNode := func(node model.TreeNode) *model.TreeNode {
		if len(folderStack) > 0 {
			parent := folderStack[len(folderStack)-1]
			parent.Children = append(parent.Children, node)
			return &parent.Children[len(parent.Children)-1]
		}
		roots = append(roots, node)
		return &roots[len(roots)-1]
	}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				// Folder definition - becomes current on the next DL
				name := getTextContent(n)
				if name != "" {
					pendingFolder = appendNode(model.TreeNode{
						ID:    assignID(),
						Title: name,
					})
				}
				return

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					return
				}
				title := getTextContent(n)
				if title == "" {
					title = href
				}
				appendNode(model.TreeNode{
					ID:    assignID(),
					Title: title,
					URL:   href,
				})
				return

			case "dl":
				// Definition list - marks folder contents
				pushedFolder := false
				if pendingFolder != nil {
					folderStack = append(folderStack, pendingFolder)
					pendingFolder = nil
					pushedFolder = true
				}

				for c := n.FirstChild; c != nil; c = c.NextSibling {
					parse(c)
				}

				if pushedFolder && len(folderStack) > 0 {
					folderStack = folderStack[:len(folderStack)-1]
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return roots, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
