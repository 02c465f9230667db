package handlers

import (
	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
)

// handleWindowFocused sets the tree's focused descendant to the window
// and queues a focus change for the reconciler.
func handleWindowFocused(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, ev Event) {
	windowID, ok := state.ContainerForHandle(ev.Handle)
	if !ok {
		return
	}

	treeops.SetFocusedDescendant(state.Tree, windowID, 0)
	pending.SetFocusChange()
	if state.Config.General.CursorJumpEnabled {
		pending.SetCursorJump()
	}

	info, err := state.Backend.RefreshWindowInfo(ev.Handle)
	if err != nil {
		state.Logger.Warn("handlers: refresh_window_info failed", "handle", ev.Handle, "error", err)
		return
	}
	runRules(state, pending, events, config.RuleOnFocus, windowID, info)
}
