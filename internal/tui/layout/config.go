package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Pane  PaneConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PaneConfig holds pane dimension configuration.
type PaneConfig struct {
	// HeightReduction is subtracted from terminal height for pane content.
	// Accounts for: app padding (1) + pane borders (2) + help bar (3) = 6
	HeightReduction int

	// MinHeight is the minimum pane height.
	MinHeight int

	// SplitWidthOffset is subtracted before splitting tray and sidebar.
	// Accounts for borders and spacing between the two panes.
	SplitWidthOffset int

	// SidebarWidthPercent is the sidebar share of the terminal width when
	// the sidebar is open.
	SidebarWidthPercent int

	// MinPaneWidth is the minimum width for either pane.
	MinPaneWidth int

	// ContentPadding is subtracted from pane width for item rendering.
	ContentPadding int

	// HeaderLines is the line count of a pane header.
	HeaderLines int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// WidthPercent is the modal width as percentage of terminal width.
	WidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	TitleCharLimit  int
	URLCharLimit    int
	SearchCharLimit int

	// StandardWidth is the display width for modal inputs.
	StandardWidth int

	// SearchWidth is the display width for the sidebar search input.
	SearchWidth int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Pane: PaneConfig{
			HeightReduction:     6, // app padding (1) + pane borders (2) + help bar (3)
			MinHeight:           5,
			SplitWidthOffset:    6,
			SidebarWidthPercent: 45,
			MinPaneWidth:        24,
			ContentPadding:      4,
			HeaderLines:         2,
		},
		Modal: ModalConfig{
			WidthPercent: 40,
			MinWidth:     50,
			MaxWidth:     80,
		},
		Input: InputConfig{
			TitleCharLimit:  100,
			URLCharLimit:    500,
			SearchCharLimit: 100,
			StandardWidth:   40,
			SearchWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
