package command

import (
	"fmt"
	"os/exec"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/ipc"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
	"github.com/1broseidon/tilewm/internal/winstate"
)

// RunMultiple executes cmds in order against subject, each command's
// result becoming the next command's subject. The caller runs the reconciler exactly
// once after the batch returns, not per command. events may be nil.
func RunMultiple(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, cmds []Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	current := subject
	for _, cmd := range cmds {
		next, err := Run(state, pending, events, cmd, current)
		if err != nil {
			state.Logger.Warn("command: failed", "kind", cmd.Kind, "subject", current, "error", err)
			continue
		}
		current = next
	}
	return current, nil
}

// Run executes a single command against subject and returns the
// container id subsequent commands in the same batch should target.
// events may be nil, in which case commands that would otherwise publish
// outbound notifications silently skip doing so.
func Run(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	switch cmd.Kind {
	case KindIgnore:
		return subject, nil

	case KindMove:
		return runMove(state, pending, cmd, subject)

	case KindResize:
		return runResize(state, pending, cmd, subject)

	case KindSetFloating:
		return runSetFloating(state, pending, cmd, subject)

	case KindSetTiling:
		return runSetTiling(state, pending, subject)

	case KindSetFullscreen:
		return runSetFullscreen(state, pending, cmd, subject)

	case KindSetMinimized:
		return runSetMinimized(state, pending, subject)

	case KindFocus:
		return runFocus(state, pending, cmd, subject)

	case KindClose:
		return runClose(state, subject)

	case KindToggleTilingDirection:
		return runToggleTilingDirection(state, pending, events, subject)

	case KindMoveWorkspaceInDirection:
		return runMoveWorkspaceInDirection(state, pending, events, cmd, subject)

	case KindMoveToWorkspace:
		return runMoveToWorkspace(state, pending, events, cmd, subject)

	case KindReloadConfig:
		return subject, runReloadConfig(state)

	case KindShellExec:
		return subject, runShellExec(cmd)

	default:
		return subject, fmt.Errorf("command: unrecognized kind %v", cmd.Kind)
	}
}

// DefaultWindowState returns the WindowState a window with no recorded
// prev_state falls back to.
func DefaultWindowState(state *wmcore.State) wmtree.WindowState {
	switch state.Config.WindowBehavior.InitialState {
	case config.InitialStateFloating:
		return wmtree.WindowState{
			Kind:       wmtree.WindowStateFloating,
			Centered:   state.Config.WindowBehavior.StateDefaults.Centered,
			ShownOnTop: state.Config.WindowBehavior.StateDefaults.ShownOnTop,
		}
	default:
		return wmtree.TilingWindowState()
	}
}

func runSetFloating(state *wmcore.State, pending *reconcile.PendingSync, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	c, ok := state.Tree.Get(subject)
	if !ok || c.Kind != wmtree.KindTilingWindow {
		return subject, nil
	}
	res, err := winstate.ToFloating(state.Tree, subject, cmd.Centered, cmd.ShownOnTop)
	if err != nil {
		return subject, err
	}
	pending.QueueRedraw(res.Redraw...)
	return subject, nil
}

func runSetTiling(state *wmcore.State, pending *reconcile.PendingSync, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	c, ok := state.Tree.Get(subject)
	if !ok || c.Kind != wmtree.KindNonTilingWindow {
		return subject, nil
	}
	res, err := winstate.ToTiling(state.Tree, subject, state.Config.Gaps.InnerGap)
	if err != nil {
		return subject, err
	}
	pending.QueueRedraw(res.Redraw...)
	return subject, nil
}

func runSetFullscreen(state *wmcore.State, pending *reconcile.PendingSync, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	res, err := winstate.ToFullscreen(state.Tree, subject, cmd.Maximized, cmd.ShownOnTop)
	if err != nil {
		return subject, err
	}
	pending.QueueRedraw(res.Redraw...)
	return subject, nil
}

func runSetMinimized(state *wmcore.State, pending *reconcile.PendingSync, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	res, err := winstate.ToMinimized(state.Tree, subject)
	if err != nil {
		return subject, err
	}
	pending.QueueRedraw(res.Redraw...)
	return subject, nil
}

func runClose(state *wmcore.State, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	c, ok := state.Tree.Get(subject)
	if !ok || !c.IsWindow() {
		return subject, nil
	}
	handle, _ := c.Handle()
	if err := state.Backend.Close(handle); err != nil {
		return subject, fmt.Errorf("command: close: %w", err)
	}
	// The window is detached by the WindowDestroyed handler once the
	// platform confirms the close, not here: a close request can be
	// ignored or delayed by the application.
	return subject, nil
}

func runToggleTilingDirection(state *wmcore.State, pending *reconcile.PendingSync, events ipc.Sink, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	c, ok := state.Tree.Get(subject)
	if !ok {
		return subject, nil
	}
	switch c.Kind {
	case wmtree.KindWorkspace:
		c.Workspace.TilingDirection = c.Workspace.TilingDirection.Inverse()
	case wmtree.KindSplit:
		c.Split.TilingDirection = c.Split.TilingDirection.Inverse()
	default:
		return subject, nil
	}
	pending.QueueRedraw(append([]wmtree.ContainerID{subject}, state.Tree.DescendantWindows(subject)...)...)
	if events != nil {
		dto := ipc.ToDTO(state.Tree, subject)
		events.Publish(ipc.Event{Kind: ipc.EventTilingDirectionChanged, Container: &dto})
	}
	return subject, nil
}

func runReloadConfig(state *wmcore.State) error {
	if state.ConfigPath == "" {
		return fmt.Errorf("command: no config path set")
	}
	cfg, err := config.Reload(state.ConfigPath)
	if err != nil {
		state.Logger.Warn("command: config reload failed, keeping prior config", "error", err)
		return err
	}
	state.Config = cfg
	return nil
}

func runShellExec(cmd Command) error {
	if cmd.ShellCommand == "" {
		return nil
	}
	c := exec.Command("/bin/sh", "-c", cmd.ShellCommand)
	return c.Start()
}
