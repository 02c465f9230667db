package handlers

import (
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
)

// handleWindowRemoved detaches a destroyed or hidden-by-platform window,
// lets the detach-and-cleanup cascade run, and, if the removed window was
// focused, lets the tree's own focus-order bookkeeping surface the
// `focus_target_after_removal`: Detach already dropped the
// container's id from its parent's child_focus_order, so the most
// recently focused remaining sibling becomes the target. Tiling order is
// not consulted.
func handleWindowRemoved(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, ev Event) {
	windowID, ok := state.ContainerForHandle(ev.Handle)
	if !ok {
		return
	}

	wasFocused := state.Tree.FocusedContainer() == windowID

	var dto ipc.ContainerDto
	if events != nil {
		dto = ipc.ToDTO(state.Tree, windowID)
	}

	res, err := treeops.Detach(state.Tree, windowID)
	if err != nil {
		state.Logger.Warn("handlers: detach failed on window removal", "window", windowID, "error", err)
		return
	}
	pending.QueueRedraw(res.Redraw...)

	state.Unbind(ev.Handle)
	state.Tree.RemoveDetached(windowID)

	if wasFocused {
		pending.SetFocusChange()
	}

	if events != nil {
		events.Publish(ipc.Event{Kind: ipc.EventWindowUnmanaged, Container: &dto})
	}
}
