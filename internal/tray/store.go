// Package tray owns the persisted list of shortcut tiles shown in the
// quick-access tray. The list is capacity-bounded and insertion-ordered;
// unused capacity is simply absent (no placeholder slots).
package tray

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/minimtab/minim/internal/logger"
	"github.com/minimtab/minim/internal/model"
	"github.com/minimtab/minim/internal/storage"
)

// MaxShortcuts is the fixed tray capacity.
const MaxShortcuts = 12

// StorageKey is the persistence key holding the JSON-encoded shortcut list.
const StorageKey = "minim-shortcuts"

var (
	// ErrEmptyURL is returned when adding or editing with a blank URL.
	ErrEmptyURL = errors.New("tray: url is empty")

	// ErrNotFound is returned when editing a shortcut that doesn't exist.
	ErrNotFound = errors.New("tray: shortcut not found")
)

// Store is the authoritative list of shortcut tiles with durable persistence.
// Every mutation persists the full list; persistence failures are logged and
// never surfaced to the caller.
type Store struct {
	storage storage.Storage
	log     logger.Logger
	items   []model.Shortcut
}

// NewStore creates a Store backed by the given persistence port.
// A nil log defaults to a no-op logger.
func NewStore(st storage.Storage, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{storage: st, log: log, items: []model.Shortcut{}}
}

// Load reads the persisted shortcut list. Missing or corrupt data falls back
// to the default (empty) list; Load never returns an error. The result is
// clamped to MaxShortcuts.
func (s *Store) Load() []model.Shortcut {
	data, err := s.storage.Get(StorageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("shortcut load failed, using defaults", logger.Error(err))
		}
		s.items = DefaultShortcuts()
		return s.Items()
	}

	var items []model.Shortcut
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.Warn("stored shortcuts corrupt, using defaults", logger.Error(err))
		s.items = DefaultShortcuts()
		return s.Items()
	}

	if items == nil {
		items = []model.Shortcut{}
	}
	if len(items) > MaxShortcuts {
		items = items[:MaxShortcuts]
	}
	s.items = items
	return s.Items()
}

// Save persists the full current list. Fire-and-forget: failures are logged,
// a crash between mutation and persistence loses only that mutation.
func (s *Store) Save() {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error("shortcut marshal failed", logger.Error(err))
		return
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		s.log.Error("shortcut save failed", logger.Error(err))
	}
}

// Items returns a copy of the current list in render order.
func (s *Store) Items() []model.Shortcut {
	out := make([]model.Shortcut, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the current number of shortcuts.
func (s *Store) Len() int {
	return len(s.items)
}

// Find returns the shortcut with the given ID, or nil.
func (s *Store) Find(id string) *model.Shortcut {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i]
		}
	}
	return nil
}

// Add appends a new shortcut and persists. The URL is trimmed and must be
// non-empty. The list is clamped to MaxShortcuts after the append.
func (s *Store) Add(url, title string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}

	item := model.NewShortcut(model.NewShortcutParams{
		URL:   url,
		Title: strings.TrimSpace(title),
	})
	s.items = append(s.items, item)
	if len(s.items) > MaxShortcuts {
		s.items = s.items[:MaxShortcuts]
	}
	s.Save()
	return nil
}

// Edit replaces the URL and title of the shortcut with the given ID,
// preserving its ID and position, then persists.
func (s *Store) Edit(id, url, title string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyURL
	}

	item := s.Find(id)
	if item == nil {
		return ErrNotFound
	}
	item.URL = url
	item.Title = strings.TrimSpace(title)
	s.Save()
	return nil
}

// Remove deletes the shortcut with the given ID, preserving the relative
// order of the rest, then persists. An unknown ID is a silent no-op and
// triggers no persistence write.
func (s *Store) Remove(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.Save()
			return
		}
	}
}

// DefaultShortcuts returns the first-run shortcut list. The tray starts
// empty; tiles are added through the add affordance.
func DefaultShortcuts() []model.Shortcut {
	return []model.Shortcut{}
}
