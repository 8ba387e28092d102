package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/v3/assert"

	"github.com/minimtab/minim/internal/bookmarks"
	"github.com/minimtab/minim/internal/icon"
	"github.com/minimtab/minim/internal/storage"
	"github.com/minimtab/minim/internal/tray"
)

// testStorage is an in-memory persistence port.
type testStorage struct {
	data map[string][]byte
}

func newTestStorage() *testStorage {
	return &testStorage{data: make(map[string][]byte)}
}

func (m *testStorage) Get(key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return value, nil
}

func (m *testStorage) Set(key string, value []byte) error {
	m.data[key] = value
	return nil
}

// newTestApp builds an App over in-memory storage, the fallback bookmark
// tree, and an opener that records instead of launching a browser.
func newTestApp(t *testing.T, urls ...string) (App, *[]string) {
	t.Helper()

	store := tray.NewStore(newTestStorage(), nil)
	store.Load()
	for _, url := range urls {
		if err := store.Add(url, ""); err != nil {
			t.Fatalf("seeding store failed: %v", err)
		}
	}

	var opened []string
	app := NewApp(AppParams{
		Store:    store,
		Loader:   bookmarks.NewLoader(nil, nil),
		Resolver: icon.Resolver{},
		Opener: func(url string) error {
			opened = append(opened, url)
			return nil
		},
	})
	return app.WithDimensions(120, 40), &opened
}

func press(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(msg)
	return m.(App), cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeString(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		a, _ = press(t, a, keyRune(r))
	}
	return a
}

// openSidebar presses the sidebar toggle and delivers the resulting load.
func openSidebar(t *testing.T, a App) App {
	t.Helper()
	a, cmd := press(t, a, keyRune('b'))
	assert.Assert(t, cmd != nil, "sidebar open must fire a load")
	a, _ = press(t, a, cmd())
	assert.Equal(t, SidebarReady, a.Sidebar().Phase)
	return a
}

func TestApp_TrayNavigation(t *testing.T) {
	a, _ := newTestApp(t, "https://one.example", "https://two.example")

	assert.Equal(t, 0, a.Cursor())

	// Two shortcuts plus the trailing add tile.
	a, _ = press(t, a, keyRune('j'))
	a, _ = press(t, a, keyRune('j'))
	assert.Equal(t, 2, a.Cursor())
	a, _ = press(t, a, keyRune('j'))
	assert.Equal(t, 2, a.Cursor(), "cursor must clamp at the add tile")

	a, _ = press(t, a, keyRune('k'))
	assert.Equal(t, 1, a.Cursor())

	a, _ = press(t, a, keyRune('g'))
	a, _ = press(t, a, keyRune('g'))
	assert.Equal(t, 0, a.Cursor(), "gg must jump to the first tile")

	a, _ = press(t, a, keyRune('G'))
	assert.Equal(t, 2, a.Cursor(), "G must jump to the last tile")
}

func TestApp_OpenShortcut(t *testing.T) {
	a, opened := newTestApp(t, "https://one.example")

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, len(*opened))
	assert.Equal(t, "https://one.example", (*opened)[0])
}

func TestApp_EnterOnAddTileOpensDialog(t *testing.T) {
	a, opened := newTestApp(t, "https://one.example")

	a, _ = press(t, a, keyRune('j')) // move onto the add tile
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeEdit, a.Mode())
	edit := a.Edit()
	assert.Assert(t, edit.IsNew())
	assert.Equal(t, 0, len(*opened), "add tile must not navigate")
}

func TestApp_AddShortcutFlow(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(t, a, keyRune('a'))
	assert.Equal(t, ModeEdit, a.Mode())

	a = typeString(t, a, "https://go.dev")
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyTab}) // to title field
	a = typeString(t, a, "Go")
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeNormal, a.Mode())
	assert.Equal(t, 1, a.Store().Len())
	item := a.Store().Items()[0]
	assert.Equal(t, "https://go.dev", item.URL)
	assert.Equal(t, "Go", item.Title)
}

func TestApp_EmptyURLKeepsDialogOpen(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(t, a, keyRune('a'))
	a = typeString(t, a, "   ")
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, ModeEdit, a.Mode(), "blank URL must keep the dialog open")
	assert.Equal(t, 0, a.Store().Len())
}

func TestApp_CancelDiscardsDraft(t *testing.T) {
	a, _ := newTestApp(t, "https://one.example")

	a, _ = press(t, a, keyRune('e'))
	a = typeString(t, a, "garbage")
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, a.Mode())
	assert.Equal(t, "https://one.example", a.Store().Items()[0].URL)
}

func TestApp_DialogRemoveExistingShortcut(t *testing.T) {
	a, _ := newTestApp(t, "https://one.example")

	a, _ = press(t, a, keyRune('e'))
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyCtrlD})

	assert.Equal(t, ModeNormal, a.Mode())
	assert.Equal(t, 0, a.Store().Len())
}

func TestApp_DeleteClampsCursor(t *testing.T) {
	a, _ := newTestApp(t, "https://one.example", "https://two.example")

	a, _ = press(t, a, keyRune('j'))
	a, _ = press(t, a, keyRune('d'))

	assert.Equal(t, 1, a.Store().Len())
	assert.Assert(t, a.Cursor() < a.tileCount(), "cursor must stay in range after delete")
}

func TestApp_SidebarOpenClose(t *testing.T) {
	a, _ := newTestApp(t)

	a = openSidebar(t, a)
	assert.Equal(t, FocusSidebar, a.Focus())

	sb := a.Sidebar()
	assert.Assert(t, len(sb.Roots) > 0, "fallback tree must be served")
	for _, root := range sb.Roots {
		assert.Assert(t, sb.IsExpanded(root.ID), "roots start expanded")
	}

	a, _ = press(t, a, keyRune('b'))
	sb = a.Sidebar()
	assert.Assert(t, !sb.IsOpen())
	assert.Equal(t, FocusTray, a.Focus())
	assert.Assert(t, a.Sidebar().Roots == nil, "close must discard the tree")
}

func TestApp_SidebarStaleResultDiscarded(t *testing.T) {
	a, _ := newTestApp(t)

	// First open: capture the load but never deliver it.
	a, cmd := press(t, a, keyRune('b'))
	staleMsg := cmd().(TreeLoadedMsg)

	// Close and reopen before the first result lands.
	a, _ = press(t, a, keyRune('b'))
	a, cmd = press(t, a, keyRune('b'))
	currentMsg := cmd().(TreeLoadedMsg)

	a, _ = press(t, a, staleMsg)
	assert.Equal(t, SidebarLoading, a.Sidebar().Phase, "stale result must be dropped")

	a, _ = press(t, a, currentMsg)
	assert.Equal(t, SidebarReady, a.Sidebar().Phase)
}

func TestApp_SwitchPaneRequiresOpenSidebar(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusTray, a.Focus(), "tab with closed sidebar must not move focus")

	a = openSidebar(t, a)
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusTray, a.Focus())
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FocusSidebar, a.Focus())
}

func TestApp_SidebarFolderToggle(t *testing.T) {
	a, _ := newTestApp(t)
	a = openSidebar(t, a)

	rootID := a.Sidebar().Roots[0].ID
	before := len(VisibleRows(a.Sidebar().Roots, a.Sidebar().Expanded))

	// Cursor starts on the first root; h collapses it, l re-expands.
	a, _ = press(t, a, keyRune('h'))
	sb := a.Sidebar()
	assert.Assert(t, !sb.IsExpanded(rootID))
	collapsed := len(VisibleRows(a.Sidebar().Roots, a.Sidebar().Expanded))
	assert.Assert(t, collapsed < before, "collapsing must hide children")

	a, _ = press(t, a, keyRune('l'))
	sb = a.Sidebar()
	assert.Assert(t, sb.IsExpanded(rootID))
}

func TestApp_SidebarOpenLeaf(t *testing.T) {
	a, opened := newTestApp(t)
	a = openSidebar(t, a)

	// First root is expanded, so row 1 is its first child (a leaf in the
	// fallback dataset).
	a, _ = press(t, a, keyRune('j'))
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, len(*opened))
	rows := VisibleRows(a.Sidebar().Roots, a.Sidebar().Expanded)
	assert.Equal(t, rows[1].Node.URL, (*opened)[0])
}

func TestApp_SearchFlow(t *testing.T) {
	a, opened := newTestApp(t)
	a = openSidebar(t, a)

	a, _ = press(t, a, keyRune('/'))
	assert.Equal(t, ModeSearch, a.Mode())

	a = typeString(t, a, "wiki")
	assert.Assert(t, len(a.Sidebar().Results) > 0, "expected a fuzzy match for wiki")

	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, a.Mode())
	assert.Equal(t, 1, len(*opened))
}

func TestApp_SearchEscResets(t *testing.T) {
	a, _ := newTestApp(t)
	a = openSidebar(t, a)

	a, _ = press(t, a, keyRune('/'))
	a = typeString(t, a, "go")
	a, _ = press(t, a, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, ModeNormal, a.Mode())
	sb := a.Sidebar()
	assert.Assert(t, !sb.Searching)
	assert.Equal(t, 0, len(sb.Results))
	assert.Equal(t, "", sb.SearchInput.Value())
}

func TestApp_SearchRequiresReadySidebar(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(t, a, keyRune('/'))
	assert.Equal(t, ModeNormal, a.Mode(), "search must not start without an open sidebar")
}
