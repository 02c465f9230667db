package handlers

import (
	"github.com/1broseidon/tilewm/internal/command"
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/wmcore"
)

// handleKeybindingTriggered runs a fired keybinding's command batch
// against the currently focused container.
func handleKeybindingTriggered(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, ev Event) {
	cmds, err := command.ParseAll(ev.Commands)
	if err != nil {
		state.Logger.Warn("handlers: keybinding has unparsable commands", "error", err)
		return
	}
	subject := state.Tree.FocusedContainer()
	if _, err := command.RunMultiple(state, pending, events, cmds, subject); err != nil {
		state.Logger.Warn("handlers: keybinding batch failed", "error", err)
	}
}
