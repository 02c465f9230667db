package handlers

import (
	"github.com/1broseidon/tilewm/internal/command"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/winstate"
	"github.com/1broseidon/tilewm/internal/wmcore"
)

// handleWindowMinimized transitions a window to Minimized in place,
// remembering its previous state.
func handleWindowMinimized(state *wmcore.State, pending *reconcile.PendingSync, ev Event) {
	windowID, ok := state.ContainerForHandle(ev.Handle)
	if !ok {
		return
	}
	res, err := winstate.ToMinimized(state.Tree, windowID)
	if err != nil {
		state.Logger.Warn("handlers: window_minimized failed", "window", windowID, "error", err)
		return
	}
	pending.QueueRedraw(res.Redraw...)
}

// handleWindowMinimizeEnded restores a window from Minimized to whatever
// state it held before, falling back to window_behavior.initial_state if
// it was born minimized.
func handleWindowMinimizeEnded(state *wmcore.State, pending *reconcile.PendingSync, ev Event) {
	windowID, ok := state.ContainerForHandle(ev.Handle)
	if !ok {
		return
	}
	res, err := winstate.FromMinimized(state.Tree, windowID, command.DefaultWindowState(state))
	if err != nil {
		state.Logger.Warn("handlers: window_minimize_ended failed", "window", windowID, "error", err)
		return
	}
	pending.QueueRedraw(res.Redraw...)
}
