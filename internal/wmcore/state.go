// Package wmcore bundles the process-wide mutable state that handlers,
// commands, and the reconciler all thread through by pointer.
package wmcore

import (
	"log/slog"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/platform"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// State is the single mutable context object passed to every handler,
// command, and reconciler call.
type State struct {
	Tree    *wmtree.Tree
	Config  *config.Config
	Backend platform.Backend
	Logger  *slog.Logger

	// ConfigPath is the file ReloadConfig re-reads; empty if the core is
	// running with an in-memory-only config.
	ConfigPath string

	// RecentFocused caches the container id the reconciler last emitted
	// a FocusChanged for, re-resolved by id before use since it is a
	// weak reference.
	RecentFocused wmtree.ContainerID

	// HandleIndex maps native platform handles to the container id
	// managing them, so handlers that only carry a Handle (as platform
	// events do) can find their container in O(1).
	HandleIndex map[platform.Handle]wmtree.ContainerID
}

// New builds a State around an already-populated tree (root + monitors)
// and the supplied config/backend/logger.
func New(tree *wmtree.Tree, cfg *config.Config, backend platform.Backend, logger *slog.Logger) *State {
	return &State{
		Tree:        tree,
		Config:      cfg,
		Backend:     backend,
		Logger:      logger,
		HandleIndex: make(map[platform.Handle]wmtree.ContainerID),
	}
}

// ContainerForHandle resolves a platform handle to its managing
// container, re-validating the id is still live in the tree.
func (s *State) ContainerForHandle(h platform.Handle) (wmtree.ContainerID, bool) {
	id, ok := s.HandleIndex[h]
	if !ok {
		return 0, false
	}
	if _, ok := s.Tree.Get(id); !ok {
		delete(s.HandleIndex, h)
		return 0, false
	}
	return id, true
}

// Bind records that windowID is now backed by native handle h.
func (s *State) Bind(h platform.Handle, windowID wmtree.ContainerID) {
	s.HandleIndex[h] = windowID
}

// Unbind removes a handle->container mapping, called on
// WindowDestroyed/WindowHidden cleanup.
func (s *State) Unbind(h platform.Handle) {
	delete(s.HandleIndex, h)
}
