package model

// Shortcut represents one tile in the quick-access tray.
type Shortcut struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"` // optional display override, empty = derive from URL
}

// NewShortcutParams holds parameters for creating a new Shortcut.
type NewShortcutParams struct {
	URL   string
	Title string
}

// NewShortcut creates a Shortcut with a generated UUID.
func NewShortcut(params NewShortcutParams) Shortcut {
	return Shortcut{
		ID:    GenerateUUID(),
		URL:   params.URL,
		Title: params.Title,
	}
}
