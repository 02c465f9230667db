package handlers

import (
	"github.com/1broseidon/tilewm/internal/command"
	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/platform"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// runRules matches trigger's window rules against info, runs every
// matched rule's command batch against windowID, and records any
// run_once rule as done on the container.
func runRules(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, trigger config.RuleTrigger, windowID wmtree.ContainerID, info platform.WindowInfo) {
	c, ok := state.Tree.Get(windowID)
	if !ok {
		return
	}

	matched := command.ApplicableRules(state.Config, trigger, info, c.DoneWindowRules())
	if len(matched) == 0 {
		return
	}

	var batch []command.Command
	var firedOnce []string
	for _, m := range matched {
		cmds, err := command.ParseAll(m.Rule.Commands)
		if err != nil {
			state.Logger.Warn("handlers: window rule has unparsable commands", "rule", m.ID, "error", err)
			continue
		}
		batch = append(batch, cmds...)
		if m.Rule.RunOnce {
			firedOnce = append(firedOnce, m.ID)
		}
	}

	if _, err := command.RunMultiple(state, pending, events, batch, windowID); err != nil {
		state.Logger.Warn("handlers: window rule batch failed", "window", windowID, "error", err)
	}

	if len(firedOnce) > 0 {
		c.SetDoneWindowRules(append(c.DoneWindowRules(), firedOnce...))
	}
}

// handleWindowShown advances a known window's display-state, or runs
// manage on a new, manageable one.
func handleWindowShown(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, ev Event) {
	if id, ok := state.ContainerForHandle(ev.Handle); ok {
		pending.QueueRedraw(id)
		return
	}

	info, err := state.Backend.RefreshWindowInfo(ev.Handle)
	if err != nil {
		state.Logger.Warn("handlers: refresh_window_info failed", "handle", ev.Handle, "error", err)
		return
	}
	if !info.Manageable {
		return
	}

	workspaceID, ok := focusedWorkspace(state.Tree)
	if !ok {
		state.Logger.Warn("handlers: no focused workspace to manage into", "handle", ev.Handle)
		return
	}

	windowID := manage(state, workspaceID, ev.Handle, info)
	pending.QueueRedraw(windowID)

	if events != nil {
		dto := ipc.ToDTO(state.Tree, windowID)
		events.Publish(ipc.Event{Kind: ipc.EventWindowManaged, Container: &dto})
	}

	runRules(state, pending, events, config.RuleOnManage, windowID, info)
}

// manage creates a Tiling or NonTilingWindow container per
// window_behavior.initial_state, attaches it under workspaceID, and
// records the handle in the core's handle index.
func manage(state *wmcore.State, workspaceID wmtree.ContainerID, handle platform.Handle, info platform.WindowInfo) wmtree.ContainerID {
	var windowID wmtree.ContainerID
	defaultState := command.DefaultWindowState(state)

	if defaultState.Kind == wmtree.WindowStateFloating {
		c := state.Tree.NewNonTilingWindow()
		placement := info.Frame
		if workspaceRect, err := state.Tree.ToRect(workspaceID); err == nil {
			placement = info.Frame.TranslateToCenter(workspaceRect)
		}
		c.NonTilingWindow.Handle = wmtree.Handle(handle)
		c.NonTilingWindow.State = defaultState
		c.NonTilingWindow.FloatingPlacement = placement
		c.NonTilingWindow.DisplayState = wmtree.DisplayShowing
		windowID = c.ID
	} else {
		c := state.Tree.NewTilingWindow()
		c.TilingWindow.Handle = wmtree.Handle(handle)
		c.TilingWindow.State = wmtree.TilingWindowState()
		c.TilingWindow.InnerGap = state.Config.Gaps.InnerGap
		c.TilingWindow.DisplayState = wmtree.DisplayShowing
		windowID = c.ID
	}

	workspace := state.Tree.MustGet(workspaceID)
	if _, err := treeops.Attach(state.Tree, workspaceID, windowID, len(workspace.Children)); err != nil {
		state.Logger.Warn("handlers: attach failed during manage", "window", windowID, "error", err)
	}

	state.Bind(handle, windowID)
	return windowID
}

func focusedWorkspace(t *wmtree.Tree) (wmtree.ContainerID, bool) {
	focused := t.FocusedContainer()
	return t.Workspace(focused)
}
