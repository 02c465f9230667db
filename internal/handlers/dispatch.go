package handlers

import (
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/wmcore"
)

// Dispatch routes a platform event to its handler and returns the
// PendingSync accumulated while handling it; the caller runs the
// reconciler against it exactly once.
func Dispatch(state *wmcore.State, events ipc.Sink, ev Event) *reconcile.PendingSync {
	pending := reconcile.NewPendingSync()

	switch ev.Kind {
	case KindWindowShown:
		handleWindowShown(state, pending, events, ev)
	case KindWindowLocationChanged:
		handleWindowLocationChanged(state, pending, ev)
	case KindWindowMovedOrResizedStart:
		handleWindowMovedOrResizedStart(state, ev)
	case KindWindowMovedOrResizedEnd:
		handleWindowMovedOrResizedEnd(state, pending, ev)
	case KindWindowFocused:
		handleWindowFocused(state, pending, events, ev)
	case KindWindowMinimized:
		handleWindowMinimized(state, pending, ev)
	case KindWindowMinimizeEnded:
		handleWindowMinimizeEnded(state, pending, ev)
	case KindWindowDestroyed, KindWindowHidden:
		handleWindowRemoved(state, pending, events, ev)
	case KindDisplaySettingsChanged:
		handleDisplaySettingsChanged(state, pending)
	case KindKeybindingTriggered:
		handleKeybindingTriggered(state, pending, events, ev)
	}

	return pending
}
