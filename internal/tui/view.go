package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/minimtab/minim/internal/icon"
	"github.com/minimtab/minim/internal/tray"
	"github.com/minimtab/minim/internal/tui/layout"
)

// renderView creates the complete tray/sidebar view.
func (a App) renderView() string {
	if a.mode == ModeEdit {
		return a.renderEditModal()
	}

	paneHeight := layout.CalculatePaneHeight(a.height, a.layoutConfig.Pane)
	split := layout.CalculateSplit(a.width, a.sidebar.IsOpen(), a.layoutConfig.Pane)

	trayPane := a.renderTrayPane(split.TrayWidth, paneHeight)

	var content string
	if a.sidebar.IsOpen() {
		sidebarPane := a.renderSidebarPane(split.SidebarWidth, paneHeight)
		content = lipgloss.JoinHorizontal(lipgloss.Top, trayPane, sidebarPane)
	} else {
		content = trayPane
	}

	helpBar := a.renderHelpBar()

	full := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, content, helpBar),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, full)
}

// renderTrayPane renders the shortcut tray with its add affordance.
func (a App) renderTrayPane(width, height int) string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render("minim") + "\n\n")

	items := a.store.Items()
	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)

	for i, item := range items {
		label := icon.Label(item)
		line, _ := layout.TruncateText(label, itemWidth, a.layoutConfig.Text)

		selected := a.focus == FocusTray && a.cursor == i
		if selected {
			content.WriteString(a.styles.TileSelected.Render(line))
		} else {
			content.WriteString(a.styles.Tile.Render(line))
		}
		content.WriteString("\n")

		// Detail lines under the selected tile
		if selected {
			url, _ := layout.TruncateText(item.URL, itemWidth-2, a.layoutConfig.Text)
			content.WriteString("  " + a.styles.URL.Render(url) + "\n")
			if iconURL := a.resolver.Resolve(item.URL); iconURL != "" {
				short, _ := layout.TruncateText(iconURL, itemWidth-2, a.layoutConfig.Text)
				content.WriteString("  " + a.styles.URL.Render("⌁ "+short) + "\n")
			}
		}
	}

	if len(items) < tray.MaxShortcuts {
		addLine := "+ add shortcut"
		if a.focus == FocusTray && a.onAddTile() {
			content.WriteString(a.styles.TileSelected.Render(addLine))
		} else {
			content.WriteString(a.styles.AddTile.Render(addLine))
		}
		content.WriteString("\n")
	}

	if len(items) == 0 {
		content.WriteString("\n" + a.styles.Empty.Render("(no shortcuts yet)"))
	}

	pane := a.styles.Pane
	if a.focus == FocusTray {
		pane = a.styles.PaneActive
	}
	return pane.Width(width).Height(height).Render(content.String())
}

// renderSidebarPane renders the bookmarks sidebar for the current phase.
func (a App) renderSidebarPane(width, height int) string {
	var content strings.Builder

	content.WriteString(a.styles.Title.Render("bookmarks") + "\n\n")

	switch a.sidebar.Phase {
	case SidebarLoading:
		content.WriteString(a.styles.Empty.Render("loading..."))

	case SidebarError:
		content.WriteString(a.styles.ErrorText.Render("Bookmarks unavailable"))
		if a.sidebar.Err != nil {
			msg, _ := layout.TruncateText(a.sidebar.Err.Error(), width-4, a.layoutConfig.Text)
			content.WriteString("\n" + a.styles.Empty.Render(msg))
		}

	case SidebarReady:
		if a.mode == ModeSearch {
			content.WriteString(a.renderSearch(width, height))
		} else {
			content.WriteString(a.renderTree(width, height))
		}
	}

	pane := a.styles.Pane
	if a.focus == FocusSidebar {
		pane = a.styles.PaneActive
	}
	return pane.Width(width).Height(height).Render(content.String())
}

// renderTree renders the visible rows of the bookmark tree.
func (a App) renderTree(width, height int) string {
	rows := VisibleRows(a.sidebar.Roots, a.sidebar.Expanded)
	if len(rows) == 0 {
		return a.styles.Empty.Render("(no bookmarks)")
	}

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	viewport := height - a.layoutConfig.Pane.HeaderLines
	if viewport < 1 {
		viewport = 1
	}
	offset := layout.CalculateViewportOffset(a.sidebar.Cursor, len(rows), viewport)

	var content strings.Builder
	for i := offset; i < len(rows) && i < offset+viewport; i++ {
		row := rows[i]

		var marker string
		switch {
		case row.Node.IsFolder() && row.Expanded:
			marker = "▾ "
		case row.Node.IsFolder():
			marker = "▸ "
		default:
			marker = "  "
		}

		indent := strings.Repeat("  ", row.Depth)
		line, _ := layout.TruncateText(indent+marker+row.Node.Title, itemWidth, a.layoutConfig.Text)

		if a.focus == FocusSidebar && a.sidebar.Cursor == i {
			content.WriteString(a.styles.TileSelected.Render(line))
		} else if row.Node.IsFolder() {
			content.WriteString(a.styles.Folder.Render(line))
		} else {
			content.WriteString(a.styles.Bookmark.Render(line))
		}
		content.WriteString("\n")
	}
	return content.String()
}

// renderSearch renders the sidebar fuzzy search input and results.
func (a App) renderSearch(width, height int) string {
	var content strings.Builder

	content.WriteString(a.sidebar.SearchInput.View() + "\n\n")

	itemWidth := layout.CalculateItemWidth(width, a.layoutConfig.Pane)
	maxVisible := height - 4
	if maxVisible < 1 {
		maxVisible = 1
	}

	start, end := layout.CalculateVisibleListItems(maxVisible, a.sidebar.ResultIdx, len(a.sidebar.Results))
	for i := start; i < end; i++ {
		result := a.sidebar.Results[i]
		line, _ := layout.TruncateText(result.Node.Title, itemWidth, a.layoutConfig.Text)
		if i == a.sidebar.ResultIdx {
			content.WriteString(a.styles.TileSelected.Render(line))
		} else {
			content.WriteString(a.styles.Bookmark.Render(line))
		}
		content.WriteString("\n")
	}

	if a.sidebar.SearchInput.Value() != "" && len(a.sidebar.Results) == 0 {
		content.WriteString(a.styles.Empty.Render("(no matches)"))
	}

	return content.String()
}

// renderEditModal renders the shortcut add/edit dialog.
func (a App) renderEditModal() string {
	var body strings.Builder

	if a.edit.IsNew() {
		body.WriteString("Add Shortcut\n\n")
	} else {
		body.WriteString("Edit Shortcut\n\n")
	}

	body.WriteString("URL:\n")
	body.WriteString(a.edit.URLInput.View())
	body.WriteString("\n\n")
	body.WriteString("Title:\n")
	body.WriteString(a.edit.TitleInput.View())
	body.WriteString("\n\n")

	hints := []Hint{
		{Key: "Enter", Desc: "save"},
		{Key: "Tab", Desc: "next field"},
		{Key: "Esc", Desc: "cancel"},
	}
	if !a.edit.IsNew() {
		hints = append(hints, Hint{Key: "Ctrl+D", Desc: "remove"})
	}
	body.WriteString(a.renderHintsInline(hints))

	// Save stays disabled while the URL is blank.
	if strings.TrimSpace(a.edit.URLInput.Value()) == "" {
		body.WriteString("\n" + a.styles.Empty.Render("enter a URL to save"))
	}

	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal)
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth)

	modal := modalStyle.Render(body.String())
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, modal)
}

// renderHelpBar renders the contextual hint bar with the status message.
func (a App) renderHelpBar() string {
	bar := a.renderHints(a.getContextualHints())
	if a.status != "" {
		bar += "  " + a.styles.Empty.Render(a.status)
	}
	return a.styles.Help.Render(bar)
}
