package tui

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/minimtab/minim/internal/bookmarks"
	"github.com/minimtab/minim/internal/icon"
	"github.com/minimtab/minim/internal/logger"
	"github.com/minimtab/minim/internal/model"
	"github.com/minimtab/minim/internal/search"
	"github.com/minimtab/minim/internal/tray"
	"github.com/minimtab/minim/internal/tui/layout"
)

// Mode distinguishes the top-level input modes.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit        // shortcut add/edit dialog open
	ModeSearch      // sidebar bookmark search active
)

// Focus marks which pane receives navigation keys.
type Focus int

const (
	FocusTray Focus = iota
	FocusSidebar
)

// TreeLoadedMsg carries a finished bookmark tree load back into the Update
// loop. Gen is the generation token captured when the load was fired.
type TreeLoadedMsg struct {
	Gen   int
	Roots []model.TreeNode
	Err   error
}

// App is the main bubbletea model for the quick-access layer.
type App struct {
	store        *tray.Store
	loader       *bookmarks.Loader
	resolver     icon.Resolver
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	log          logger.Logger
	opener       func(url string) error

	mode    Mode
	focus   Focus
	cursor  int // tray cursor, may rest on the add affordance
	edit    EditSession
	sidebar SidebarState
	status  string

	// For gg command
	lastKeyWasG bool

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Store        *tray.Store
	Loader       *bookmarks.Loader
	Resolver     icon.Resolver
	Keys         *KeyMap                // optional, uses default if nil
	Styles       *Styles                // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig   // optional, uses default if nil
	Log          logger.Logger          // optional, no-op if nil
	Opener       func(url string) error // optional, opens the default browser if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	log := params.Log
	if log == nil {
		log = logger.Nop()
	}

	opener := params.Opener
	if opener == nil {
		opener = openInBrowser
	}

	return App{
		store:        params.Store,
		loader:       params.Loader,
		resolver:     params.Resolver,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		log:          log,
		opener:       opener,
		edit:         NewEditSession(layoutConfig),
		sidebar:      NewSidebarState(layoutConfig),
		width:        80,
		height:       24,
	}
}

// WithDimensions returns a copy of the App with fixed window dimensions.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	return a
}

// Store returns the underlying shortcut store.
func (a App) Store() *tray.Store {
	return a.store
}

// Cursor returns the current tray cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Focus returns the currently focused pane.
func (a App) Focus() Focus {
	return a.focus
}

// Sidebar returns a snapshot of the sidebar state.
func (a App) Sidebar() SidebarState {
	return a.sidebar
}

// Edit returns a snapshot of the editing session.
func (a App) Edit() EditSession {
	return a.edit
}

// tileCount returns the tray list length including the add affordance.
func (a App) tileCount() int {
	n := a.store.Len()
	if n < tray.MaxShortcuts {
		n++ // trailing add tile
	}
	return n
}

// onAddTile returns true when the tray cursor rests on the add affordance.
func (a App) onAddTile() bool {
	return a.cursor == a.store.Len() && a.store.Len() < tray.MaxShortcuts
}

// currentShortcut returns the shortcut under the tray cursor, or nil.
func (a App) currentShortcut() *model.Shortcut {
	items := a.store.Items()
	if a.cursor < 0 || a.cursor >= len(items) {
		return nil
	}
	item := items[a.cursor]
	return &item
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// loadTreeCmd fires one asynchronous bookmark tree load carrying the
// generation token of the open transition that requested it.
func loadTreeCmd(loader *bookmarks.Loader, gen int) tea.Cmd {
	return func() tea.Msg {
		roots, err := loader.Load()
		return TreeLoadedMsg{Gen: gen, Roots: roots, Err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case TreeLoadedMsg:
		// Stale results (superseded generation or sidebar closed since)
		// are dropped here.
		if !a.sidebar.ApplyResult(msg.Gen, msg.Roots, msg.Err) {
			a.log.Debug("discarded stale bookmark tree result", logger.Int("gen", msg.Gen))
		}
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case ModeEdit:
			return a.updateEdit(msg)
		case ModeSearch:
			return a.updateSearch(msg)
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

// updateNormal handles keys outside any dialog.
func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""

	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.lastKeyWasG = false
			if a.focus == FocusTray {
				a.cursor = 0
			} else {
				a.sidebar.Cursor = 0
			}
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Sidebar):
		return a.toggleSidebar()

	case key.Matches(msg, a.keys.SwitchPane):
		if a.sidebar.IsOpen() {
			if a.focus == FocusTray {
				a.focus = FocusSidebar
			} else {
				a.focus = FocusTray
			}
		}
		return a, nil

	case key.Matches(msg, a.keys.Add):
		a.edit.BeginAdd()
		a.mode = ModeEdit
		return a, nil

	case key.Matches(msg, a.keys.Search):
		if a.focus == FocusSidebar && a.sidebar.Phase == SidebarReady {
			a.sidebar.Searching = true
			a.sidebar.SearchInput.Focus()
			a.mode = ModeSearch
		}
		return a, nil
	}

	if a.focus == FocusSidebar {
		return a.updateSidebarKeys(msg)
	}
	return a.updateTrayKeys(msg)
}

// toggleSidebar opens or closes the bookmarks sidebar. Only the
// Closed -> Loading transition fires a load; a sidebar that is already open
// never re-triggers one.
func (a App) toggleSidebar() (tea.Model, tea.Cmd) {
	if a.sidebar.IsOpen() {
		a.sidebar.Close()
		a.focus = FocusTray
		return a, nil
	}

	gen, fire := a.sidebar.Open()
	a.focus = FocusSidebar
	if !fire {
		return a, nil
	}
	return a, loadTreeCmd(a.loader, gen)
}

// updateTrayKeys handles navigation and actions on the shortcut tray.
func (a App) updateTrayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Down), key.Matches(msg, a.keys.Right):
		if a.cursor < a.tileCount()-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up), key.Matches(msg, a.keys.Left):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if a.tileCount() > 0 {
			a.cursor = a.tileCount() - 1
		}

	case key.Matches(msg, a.keys.Open):
		// The add affordance opens an add session instead of navigating.
		if a.onAddTile() {
			a.edit.BeginAdd()
			a.mode = ModeEdit
			return a, nil
		}
		if item := a.currentShortcut(); item != nil {
			if err := a.opener(item.URL); err != nil {
				a.log.Error("open url failed", logger.String("url", item.URL), logger.Error(err))
				a.status = "could not open " + icon.Label(*item)
			}
		}

	case key.Matches(msg, a.keys.Edit):
		if item := a.currentShortcut(); item != nil {
			a.edit.BeginEdit(*item)
			a.mode = ModeEdit
		}

	case key.Matches(msg, a.keys.Delete):
		if item := a.currentShortcut(); item != nil {
			a.store.Remove(item.ID)
			if a.cursor >= a.tileCount() && a.cursor > 0 {
				a.cursor--
			}
		}

	case key.Matches(msg, a.keys.YankURL):
		if item := a.currentShortcut(); item != nil {
			if err := clipboard.WriteAll(item.URL); err != nil {
				a.log.Error("clipboard write failed", logger.Error(err))
			} else {
				a.status = "URL copied"
			}
		}
	}

	return a, nil
}

// updateSidebarKeys handles navigation over the visible bookmark tree.
func (a App) updateSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.sidebar.Phase != SidebarReady {
		if key.Matches(msg, a.keys.Cancel) {
			a.sidebar.Close()
			a.focus = FocusTray
		}
		return a, nil
	}

	rows := VisibleRows(a.sidebar.Roots, a.sidebar.Expanded)

	switch {
	case key.Matches(msg, a.keys.Down):
		if len(rows) > 0 && a.sidebar.Cursor < len(rows)-1 {
			a.sidebar.Cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.sidebar.Cursor > 0 {
			a.sidebar.Cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(rows) > 0 {
			a.sidebar.Cursor = len(rows) - 1
		}

	case key.Matches(msg, a.keys.Right):
		if row, ok := rowAt(rows, a.sidebar.Cursor); ok && row.Node.IsFolder() && !row.Expanded {
			a.sidebar.Toggle(row.Node.ID)
		}

	case key.Matches(msg, a.keys.Left):
		if row, ok := rowAt(rows, a.sidebar.Cursor); ok && row.Node.IsFolder() && row.Expanded {
			a.sidebar.Toggle(row.Node.ID)
		}

	case key.Matches(msg, a.keys.Open):
		if row, ok := rowAt(rows, a.sidebar.Cursor); ok {
			if row.Node.IsFolder() {
				a.sidebar.Toggle(row.Node.ID)
			} else if row.Node.IsLeaf() {
				if err := a.opener(row.Node.URL); err != nil {
					a.log.Error("open url failed", logger.String("url", row.Node.URL), logger.Error(err))
				}
			}
		}

	case key.Matches(msg, a.keys.YankURL):
		if row, ok := rowAt(rows, a.sidebar.Cursor); ok && row.Node.IsLeaf() {
			if err := clipboard.WriteAll(row.Node.URL); err != nil {
				a.log.Error("clipboard write failed", logger.Error(err))
			} else {
				a.status = "URL copied"
			}
		}

	case key.Matches(msg, a.keys.Cancel):
		a.sidebar.Close()
		a.focus = FocusTray
	}

	return a, nil
}

// updateEdit handles the shortcut add/edit dialog.
func (a App) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		// Discard the draft without touching the store.
		a.edit.Reset()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		a.edit.CycleFocus()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		url := strings.TrimSpace(a.edit.URLInput.Value())
		title := strings.TrimSpace(a.edit.TitleInput.Value())

		// Empty URL keeps the session open for correction.
		if url == "" {
			return a, nil
		}

		var err error
		if a.edit.IsNew() {
			err = a.store.Add(url, title)
		} else {
			err = a.store.Edit(a.edit.TargetID, url, title)
		}
		if err != nil {
			a.log.Warn("shortcut commit rejected", logger.Error(err))
			return a, nil
		}

		a.edit.Reset()
		a.mode = ModeNormal
		return a, nil

	case msg.String() == "ctrl+d":
		// Remove is only valid for an existing tile.
		if !a.edit.IsNew() {
			a.store.Remove(a.edit.TargetID)
			if a.cursor >= a.tileCount() && a.cursor > 0 {
				a.cursor--
			}
			a.edit.Reset()
			a.mode = ModeNormal
		}
		return a, nil
	}

	var cmd tea.Cmd
	if a.edit.Focus == 0 {
		a.edit.URLInput, cmd = a.edit.URLInput.Update(msg)
	} else {
		a.edit.TitleInput, cmd = a.edit.TitleInput.Update(msg)
	}
	return a, cmd
}

// updateSearch handles the sidebar bookmark search session.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Cancel):
		a.sidebar.ResetSearch()
		a.mode = ModeNormal
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		if a.sidebar.ResultIdx < len(a.sidebar.Results) {
			node := a.sidebar.Results[a.sidebar.ResultIdx].Node
			if err := a.opener(node.URL); err != nil {
				a.log.Error("open url failed", logger.String("url", node.URL), logger.Error(err))
			}
		}
		a.sidebar.ResetSearch()
		a.mode = ModeNormal
		return a, nil

	case msg.String() == "down", msg.String() == "ctrl+n":
		if a.sidebar.ResultIdx < len(a.sidebar.Results)-1 {
			a.sidebar.ResultIdx++
		}
		return a, nil

	case msg.String() == "up", msg.String() == "ctrl+p":
		if a.sidebar.ResultIdx > 0 {
			a.sidebar.ResultIdx--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.sidebar.SearchInput, cmd = a.sidebar.SearchInput.Update(msg)
	a.sidebar.Results = search.FuzzySearchTree(a.sidebar.Roots, a.sidebar.SearchInput.Value())
	a.sidebar.ResultIdx = 0
	return a, cmd
}

// rowAt returns the row at index, guarding against an out-of-range cursor.
func rowAt(rows []TreeRow, idx int) (TreeRow, bool) {
	if idx < 0 || idx >= len(rows) {
		return TreeRow{}, false
	}
	return rows[idx], true
}

// openInBrowser opens a URL in the default browser.
func openInBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	if cmd == nil {
		return nil
	}
	return cmd.Start()
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
