package bookmarks

import (
	"github.com/minimtab/minim/internal/logger"
	"github.com/minimtab/minim/internal/model"
)

// Loader retrieves the bookmark forest from a host source, or serves the
// development fallback when no source is available.
type Loader struct {
	source Source
	log    logger.Logger
}

// NewLoader creates a Loader. A nil source means "capability unavailable"
// and makes Load serve the fallback tree. A nil log defaults to no-op.
func NewLoader(source Source, log logger.Logger) *Loader {
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{source: source, log: log}
}

// HasHostSource reports whether a host capability was detected.
func (l *Loader) HasHostSource() bool {
	return l.source != nil
}

// Load retrieves the full bookmark forest. Without a host source it resolves
// immediately with the fallback tree and no error. A host failure surfaces
// as an error rather than a silent empty tree; there is no automatic retry.
// Top-level roots that are neither non-empty folders nor direct bookmarks
// are discarded.
func (l *Loader) Load() ([]model.TreeNode, error) {
	if l.source == nil {
		l.log.Debug("no bookmark capability, serving fallback tree")
		return FilterRoots(FallbackTree()), nil
	}

	roots, err := l.source.Roots()
	if err != nil {
		l.log.Error("bookmark load failed", logger.Error(err))
		return nil, err
	}

	filtered := FilterRoots(roots)
	l.log.Debug("bookmark tree loaded", logger.Int("roots", len(filtered)))
	return filtered, nil
}

// FilterRoots keeps only top-level nodes that are non-empty folders or
// direct bookmarks, discarding genuinely empty roots.
func FilterRoots(roots []model.TreeNode) []model.TreeNode {
	var out []model.TreeNode
	for _, r := range roots {
		if r.IsFolder() || r.IsLeaf() {
			out = append(out, r)
		}
	}
	return out
}
