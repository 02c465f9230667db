// Package winstate implements the window state machine: transitions
// between Tiling, Floating, Fullscreen, and Minimized, including the
// structural effects (detach/reattach) that only a transition into or out
// of Floating requires.
package winstate

import (
	"fmt"

	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// Defaults configures the state machine's fallback behavior, sourced from
// the window_behavior config section.
type Defaults struct {
	// InitialState is used when a Fullscreen window with no prev_state is
	// restored (e.g. it was born fullscreen at manage time).
	InitialState wmtree.WindowStateKind
	MinTilingSize float64
}

// ToFloating transitions a TilingWindow to Floating: detaches it from its
// split parent, reparents it under the hosting workspace, and computes its
// floating placement (its current on-screen rect, recentered in the
// workspace when centered is set).
func ToFloating(t *wmtree.Tree, windowID wmtree.ContainerID, centered, shownOnTop bool) (*treeops.Result, error) {
	c, ok := t.Get(windowID)
	if !ok || c.Kind != wmtree.KindTilingWindow {
		return nil, fmt.Errorf("winstate: container %d is not a TilingWindow", windowID)
	}

	oldParentID := c.Parent
	oldIndex := t.IndexOfChild(oldParentID, windowID)

	workspaceID, ok := t.Workspace(windowID)
	if !ok {
		return nil, fmt.Errorf("winstate: window %d has no workspace", windowID)
	}

	currentRect, err := t.ToRect(windowID)
	if err != nil {
		return nil, err
	}

	placement := currentRect
	if centered {
		workspaceRect, err := t.ToRect(workspaceID)
		if err != nil {
			return nil, err
		}
		placement = currentRect.TranslateToCenter(workspaceRect)
	}

	handle := c.TilingWindow.Handle
	displayState := c.TilingWindow.DisplayState
	borderDelta := c.TilingWindow.BorderDelta
	doneRules := c.TilingWindow.DoneWindowRules
	activeDrag := c.TilingWindow.ActiveDrag

	res, err := treeops.Detach(t, windowID)
	if err != nil {
		return nil, err
	}

	c.Kind = wmtree.KindNonTilingWindow
	c.TilingWindow = nil
	c.NonTilingWindow = &wmtree.NonTilingWindowData{
		Handle:            handle,
		State:             wmtree.WindowState{Kind: wmtree.WindowStateFloating, Centered: centered, ShownOnTop: shownOnTop},
		FloatingPlacement: placement,
		InsertionTarget:   &wmtree.InsertionTarget{Parent: oldParentID, Index: oldIndex},
		BorderDelta:       borderDelta,
		DisplayState:      displayState,
		DoneWindowRules:   doneRules,
		ActiveDrag:        activeDrag,
	}

	workspace := t.MustGet(workspaceID)
	attachRes, err := treeops.Attach(t, workspaceID, windowID, len(workspace.Children))
	if err != nil {
		return nil, err
	}

	res.Redraw = append(res.Redraw, attachRes.Redraw...)
	res.Redraw = append(res.Redraw, windowID)
	return res, nil
}

// ToTiling transitions a NonTilingWindow back to Tiling. If the window has
// a recorded insertion target whose parent is still live, is not the
// window itself, and is not a descendant of the window, it is reattached
// there; otherwise it is appended to its workspace.
func ToTiling(t *wmtree.Tree, windowID wmtree.ContainerID, innerGap geometry.LengthValue) (*treeops.Result, error) {
	c, ok := t.Get(windowID)
	if !ok || c.Kind != wmtree.KindNonTilingWindow {
		return nil, fmt.Errorf("winstate: container %d is not a NonTilingWindow", windowID)
	}

	workspaceID := c.Parent
	insertionTarget := c.NonTilingWindow.InsertionTarget

	handle := c.NonTilingWindow.Handle
	displayState := c.NonTilingWindow.DisplayState
	borderDelta := c.NonTilingWindow.BorderDelta
	doneRules := c.NonTilingWindow.DoneWindowRules
	activeDrag := c.NonTilingWindow.ActiveDrag
	floatingPlacement := c.NonTilingWindow.FloatingPlacement

	res, err := treeops.Detach(t, windowID)
	if err != nil {
		return nil, err
	}

	destParent := workspaceID
	destIndex := -1
	if insertionTarget != nil {
		if parent, ok := t.Get(insertionTarget.Parent); ok &&
			insertionTarget.Parent != windowID &&
			!t.IsDescendantOf(insertionTarget.Parent, windowID) {
			destParent = insertionTarget.Parent
			destIndex = insertionTarget.Index
			_ = parent
		}
	}

	c.Kind = wmtree.KindTilingWindow
	c.NonTilingWindow = nil
	c.TilingWindow = &wmtree.TilingWindowData{
		Handle:            handle,
		InnerGap:          innerGap,
		DisplayState:      displayState,
		BorderDelta:       borderDelta,
		State:             wmtree.TilingWindowState(),
		FloatingPlacement: floatingPlacement,
		DoneWindowRules:   doneRules,
		ActiveDrag:        activeDrag,
	}

	attachRes, err := treeops.Attach(t, destParent, windowID, destIndex)
	if err != nil {
		return nil, err
	}

	res.Redraw = append(res.Redraw, attachRes.Redraw...)
	res.Redraw = append(res.Redraw, windowID)
	return res, nil
}

// ToFullscreen marks a window (tiling or non-tiling) Fullscreen without
// restructuring the tree, remembering its current state to fall back to.
func ToFullscreen(t *wmtree.Tree, windowID wmtree.ContainerID, maximized, shownOnTop bool) (*treeops.Result, error) {
	c, ok := t.Get(windowID)
	if !ok || !c.IsWindow() {
		return nil, fmt.Errorf("winstate: container %d is not a window", windowID)
	}

	prev := c.State()
	c.SetPrevState(&prev)

	target := wmtree.WindowState{Kind: wmtree.WindowStateFullscreen, Maximized: maximized, ShownOnTop: shownOnTop}
	setState(c, target)

	return &treeops.Result{Redraw: []wmtree.ContainerID{windowID}}, nil
}

// FromFullscreen restores a window from Fullscreen to its prev_state,
// falling back to defaultState (window_behavior.initial_state) if none was
// recorded — e.g. the window was born fullscreen at manage time.
func FromFullscreen(t *wmtree.Tree, windowID wmtree.ContainerID, defaultState wmtree.WindowState) (*treeops.Result, error) {
	c, ok := t.Get(windowID)
	if !ok || !c.IsWindow() {
		return nil, fmt.Errorf("winstate: container %d is not a window", windowID)
	}
	if c.State().Kind != wmtree.WindowStateFullscreen {
		return nil, fmt.Errorf("winstate: container %d is not Fullscreen", windowID)
	}

	target := defaultState
	if prev := c.PrevState(); prev != nil {
		target = *prev
	}
	c.SetPrevState(nil)

	if target.Kind == wmtree.WindowStateFloating && c.Kind == wmtree.KindTilingWindow {
		res, err := ToFloating(t, windowID, target.Centered, target.ShownOnTop)
		return res, err
	}
	if target.Kind != wmtree.WindowStateFloating && c.Kind == wmtree.KindNonTilingWindow {
		// A non-tiling window can only be Floating, Fullscreen, or
		// Minimized; restoring to Tiling requires the Floating->Tiling
		// structural transition.
		return ToTiling(t, windowID, geometry.LengthValue{})
	}

	setState(c, target)
	return &treeops.Result{Redraw: []wmtree.ContainerID{windowID}}, nil
}

// ToMinimized marks a window Minimized in place: its parent is unchanged,
// its display state moves to Hiding, and its prior state is remembered.
func ToMinimized(t *wmtree.Tree, windowID wmtree.ContainerID) (*treeops.Result, error) {
	c, ok := t.Get(windowID)
	if !ok || !c.IsWindow() {
		return nil, fmt.Errorf("winstate: container %d is not a window", windowID)
	}

	prev := c.State()
	c.SetPrevState(&prev)
	setState(c, wmtree.WindowState{Kind: wmtree.WindowStateMinimized})
	c.SetDisplayState(wmtree.DisplayHiding)

	return &treeops.Result{Redraw: []wmtree.ContainerID{windowID}}, nil
}

// FromMinimized restores a window from Minimized to its prev_state (or
// fallback if none was recorded).
func FromMinimized(t *wmtree.Tree, windowID wmtree.ContainerID, defaultState wmtree.WindowState) (*treeops.Result, error) {
	c, ok := t.Get(windowID)
	if !ok || !c.IsWindow() {
		return nil, fmt.Errorf("winstate: container %d is not a window", windowID)
	}
	if c.State().Kind != wmtree.WindowStateMinimized {
		return nil, fmt.Errorf("winstate: container %d is not Minimized", windowID)
	}

	target := defaultState
	if prev := c.PrevState(); prev != nil {
		target = *prev
	}
	c.SetPrevState(nil)

	if target.Kind == wmtree.WindowStateFloating && c.Kind == wmtree.KindTilingWindow {
		return ToFloating(t, windowID, target.Centered, target.ShownOnTop)
	}
	if target.Kind != wmtree.WindowStateFloating && c.Kind == wmtree.KindNonTilingWindow {
		return ToTiling(t, windowID, geometry.LengthValue{})
	}

	setState(c, target)
	return &treeops.Result{Redraw: []wmtree.ContainerID{windowID}}, nil
}

func setState(c *wmtree.Container, s wmtree.WindowState) {
	switch c.Kind {
	case wmtree.KindTilingWindow:
		c.TilingWindow.State = s
	case wmtree.KindNonTilingWindow:
		c.NonTilingWindow.State = s
	}
}
