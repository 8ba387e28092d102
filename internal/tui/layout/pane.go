package layout

// SplitLayout holds calculated pane widths for the tray/sidebar split.
type SplitLayout struct {
	TrayWidth    int
	SidebarWidth int
}

// CalculatePaneHeight computes the content height for panes.
// Returns at least MinHeight.
func CalculatePaneHeight(terminalHeight int, cfg PaneConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateSplit computes the tray and sidebar widths. With the sidebar
// closed the tray takes the full usable width and SidebarWidth is 0.
func CalculateSplit(terminalWidth int, sidebarOpen bool, cfg PaneConfig) SplitLayout {
	usable := terminalWidth - cfg.SplitWidthOffset
	if usable < cfg.MinPaneWidth {
		usable = cfg.MinPaneWidth
	}

	if !sidebarOpen {
		return SplitLayout{TrayWidth: usable}
	}

	sidebar := usable * cfg.SidebarWidthPercent / 100
	if sidebar < cfg.MinPaneWidth {
		sidebar = cfg.MinPaneWidth
	}
	tray := usable - sidebar
	if tray < cfg.MinPaneWidth {
		tray = cfg.MinPaneWidth
	}

	return SplitLayout{TrayWidth: tray, SidebarWidth: sidebar}
}

// CalculateItemWidth computes the width available for item content.
func CalculateItemWidth(paneWidth int, cfg PaneConfig) int {
	return paneWidth - cfg.ContentPadding
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// selected item visible within the viewport.
func CalculateViewportOffset(selected, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep selection roughly centered, but clamp to valid range
	offset := selected - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
