package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/minimtab/minim/internal/model"
	"github.com/minimtab/minim/internal/search"
	"github.com/minimtab/minim/internal/tui/layout"
)

// EditSession holds state for the shortcut add/edit dialog. A zero TargetID
// means the session is adding a new tile; otherwise it edits an existing one.
type EditSession struct {
	URLInput   textinput.Model
	TitleInput textinput.Model
	TargetID   string // ID of shortcut being edited, "" = new
	Focus      int    // 0 = URL field, 1 = title field
}

// NewEditSession creates an EditSession with initialized inputs.
func NewEditSession(cfg layout.LayoutConfig) EditSession {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://..."
	urlInput.CharLimit = cfg.Input.URLCharLimit
	urlInput.Width = cfg.Input.StandardWidth

	titleInput := textinput.New()
	titleInput.Placeholder = "Title (optional)"
	titleInput.CharLimit = cfg.Input.TitleCharLimit
	titleInput.Width = cfg.Input.StandardWidth

	return EditSession{
		URLInput:   urlInput,
		TitleInput: titleInput,
	}
}

// BeginAdd starts a session targeting a new tile with an empty draft.
func (e *EditSession) BeginAdd() {
	e.Reset()
	e.URLInput.Focus()
}

// BeginEdit starts a session pre-filled from an existing shortcut.
func (e *EditSession) BeginEdit(item model.Shortcut) {
	e.Reset()
	e.TargetID = item.ID
	e.URLInput.SetValue(item.URL)
	e.TitleInput.SetValue(item.Title)
	e.URLInput.Focus()
}

// IsNew returns true when the session targets a new tile.
func (e *EditSession) IsNew() bool {
	return e.TargetID == ""
}

// CycleFocus moves focus between the URL and title fields.
func (e *EditSession) CycleFocus() {
	if e.Focus == 0 {
		e.Focus = 1
		e.URLInput.Blur()
		e.TitleInput.Focus()
	} else {
		e.Focus = 0
		e.TitleInput.Blur()
		e.URLInput.Focus()
	}
}

// Reset clears the session back to an empty draft.
func (e *EditSession) Reset() {
	e.URLInput.Reset()
	e.TitleInput.Reset()
	e.TitleInput.Blur()
	e.URLInput.Blur()
	e.TargetID = ""
	e.Focus = 0
}

// SidebarPhase is the observable visibility state of the bookmarks sidebar.
type SidebarPhase int

const (
	SidebarClosed SidebarPhase = iota
	SidebarLoading
	SidebarReady
	SidebarError
)

// SidebarState holds the bookmarks sidebar: visibility phase, the loaded
// forest, per-folder expansion, and the search session. Tree and expansion
// state live only while the sidebar is open; nothing here is persisted.
type SidebarState struct {
	Phase    SidebarPhase
	Gen      int // generation token guarding in-flight loads
	Roots    []model.TreeNode
	Expanded map[string]bool
	Err      error
	Cursor   int

	Searching   bool
	SearchInput textinput.Model
	Results     []search.Result
	ResultIdx   int
}

// NewSidebarState creates a closed SidebarState.
func NewSidebarState(cfg layout.LayoutConfig) SidebarState {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search bookmarks..."
	searchInput.CharLimit = cfg.Input.SearchCharLimit
	searchInput.Width = cfg.Input.SearchWidth

	return SidebarState{
		Expanded:    make(map[string]bool),
		SearchInput: searchInput,
	}
}

// Open transitions Closed -> Loading and returns the generation token to
// attach to the load. fire is false when the sidebar is already open, in
// which case no load must be issued.
func (s *SidebarState) Open() (gen int, fire bool) {
	if s.Phase != SidebarClosed {
		return s.Gen, false
	}
	s.Gen++
	s.Phase = SidebarLoading
	return s.Gen, true
}

// Close discards the in-memory tree and expansion state. A load still in
// flight will be dropped by ApplyResult when it lands.
func (s *SidebarState) Close() {
	s.Phase = SidebarClosed
	s.Roots = nil
	s.Expanded = make(map[string]bool)
	s.Err = nil
	s.Cursor = 0
	s.ResetSearch()
}

// ApplyResult applies a finished load. Results carrying a stale generation
// token, or arriving after the sidebar has closed, are discarded. On success
// the expansion set is reset to exactly the root IDs.
func (s *SidebarState) ApplyResult(gen int, roots []model.TreeNode, err error) bool {
	if gen != s.Gen || s.Phase == SidebarClosed {
		return false
	}

	if err != nil {
		s.Phase = SidebarError
		s.Err = err
		s.Roots = nil
		return true
	}

	s.Phase = SidebarReady
	s.Err = nil
	s.Roots = roots
	s.Cursor = 0
	s.Expanded = make(map[string]bool)
	for _, id := range model.RootIDs(roots) {
		s.Expanded[id] = true
	}
	return true
}

// Toggle flips the expansion state of a folder ID. Toggling an ID not in the
// tree is harmless.
func (s *SidebarState) Toggle(id string) {
	if s.Expanded[id] {
		delete(s.Expanded, id)
	} else {
		s.Expanded[id] = true
	}
}

// IsExpanded returns true if the folder ID is currently expanded.
func (s *SidebarState) IsExpanded(id string) bool {
	return s.Expanded[id]
}

// IsOpen returns true in any of the open phases.
func (s *SidebarState) IsOpen() bool {
	return s.Phase != SidebarClosed
}

// ResetSearch clears the sidebar search session.
func (s *SidebarState) ResetSearch() {
	s.Searching = false
	s.SearchInput.Reset()
	s.SearchInput.Blur()
	s.Results = nil
	s.ResultIdx = 0
}
