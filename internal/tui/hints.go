package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "j/k", "Enter")
	Desc string // Short description (e.g., "move", "open")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar.
func (a App) renderHints(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter confirm  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() []Hint {
	switch a.mode {
	case ModeEdit:
		return []Hint{
			{Key: "Tab", Desc: "next field"},
			{Key: "Enter", Desc: "save"},
			{Key: "Esc", Desc: "cancel"},
		}
	case ModeSearch:
		return []Hint{
			{Key: "↑/↓", Desc: "select"},
			{Key: "Enter", Desc: "open"},
			{Key: "Esc", Desc: "close"},
		}
	}

	if a.focus == FocusSidebar {
		return []Hint{
			{Key: "j/k", Desc: "move"},
			{Key: "h/l", Desc: "fold"},
			{Key: "Enter", Desc: "open"},
			{Key: "/", Desc: "search"},
			{Key: "b", Desc: "close"},
			{Key: "q", Desc: "quit"},
		}
	}
	return []Hint{
		{Key: "j/k", Desc: "move"},
		{Key: "Enter", Desc: "open"},
		{Key: "a", Desc: "add"},
		{Key: "e", Desc: "edit"},
		{Key: "d", Desc: "delete"},
		{Key: "Y", Desc: "yank"},
		{Key: "b", Desc: "bookmarks"},
		{Key: "q", Desc: "quit"},
	}
}
