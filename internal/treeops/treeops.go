// Package treeops implements the structural tree-mutation commands:
// attach, detach, move-within-tree, flatten redundant splits, resize with
// proportional rebalancing, and focus-order updates.
//
// Every exported function here keeps the tree invariants intact by
// construction.
package treeops

import (
	"fmt"

	"github.com/1broseidon/tilewm/internal/wmtree"
)

// MinTilingSize is the default floor a resize command will not push a
// tiling sibling below.
const MinTilingSize = 0.05

// Result carries the side effects of a structural command that the caller
// (an event handler) needs to fold into pending-sync: containers whose
// geometry changed and so need a redraw.
type Result struct {
	Redraw []wmtree.ContainerID
}

func (r *Result) addRedraw(ids ...wmtree.ContainerID) {
	r.Redraw = append(r.Redraw, ids...)
}

// Attach inserts child into parent's children at index, appends child's id
// to parent's focus order, and rebalances tiling-size among parent's
// tiling children.
func Attach(t *wmtree.Tree, parentID, childID wmtree.ContainerID, index int) (*Result, error) {
	parent, ok := t.Get(parentID)
	if !ok {
		return nil, fmt.Errorf("treeops: parent %d not found", parentID)
	}
	child, ok := t.Get(childID)
	if !ok {
		return nil, fmt.Errorf("treeops: child %d not found", childID)
	}
	if child.HasParent() {
		return nil, fmt.Errorf("treeops: child %d is already attached to %d", childID, child.Parent)
	}

	if index < 0 || index > len(parent.Children) {
		index = len(parent.Children)
	}

	children := make([]wmtree.ContainerID, 0, len(parent.Children)+1)
	children = append(children, parent.Children[:index]...)
	children = append(children, childID)
	children = append(children, parent.Children[index:]...)
	parent.Children = children

	parent.ChildFocusOrder = append(parent.ChildFocusOrder, childID)
	child.Parent = parentID

	res := &Result{}
	if child.Kind.IsTilingVariant() {
		rebalanced, err := ResizeTilingChildrenForInsert(t, parentID, childID)
		if err != nil {
			return nil, err
		}
		res.addRedraw(rebalanced...)
	}
	return res, nil
}

// Detach removes child from its parent's children and focus order. If the
// parent becomes redundant (a Split left with exactly one tiling child) it
// is flattened; if the parent becomes empty and is not itself a keep-alive
// workspace or monitor, cleanup cascades up the chain.
func Detach(t *wmtree.Tree, childID wmtree.ContainerID) (*Result, error) {
	child, ok := t.Get(childID)
	if !ok {
		return nil, fmt.Errorf("treeops: child %d not found", childID)
	}
	if !child.HasParent() {
		return nil, fmt.Errorf("treeops: container %d has no parent to detach from", childID)
	}
	parentID := child.Parent
	parent := t.MustGet(parentID)

	removeID(&parent.Children, childID)
	removeID(&parent.ChildFocusOrder, childID)
	child.Parent = 0

	res := &Result{}
	if child.Kind.IsTilingVariant() {
		rebalanced, err := ResizeTilingChildrenForRemove(t, parentID, child.TilingSize())
		if err != nil {
			return nil, err
		}
		res.addRedraw(rebalanced...)
	}

	remainingTiling := t.TilingChildren(parentID)
	if parent.Kind == wmtree.KindSplit && len(remainingTiling) == 1 {
		flattenRes, err := FlattenSplitContainer(t, parentID)
		if err != nil {
			return nil, err
		}
		res.addRedraw(flattenRes.Redraw...)
		return res, nil
	}

	if isEmpty(parent) && !isKeepAlive(parent) {
		cleanupRes, err := cleanupEmptyChain(t, parentID)
		if err != nil {
			return nil, err
		}
		res.addRedraw(cleanupRes.Redraw...)
	}

	return res, nil
}

// cleanupEmptyChain detaches and destroys empty non-keep-alive containers
// walking up from id until an ancestor is non-empty, a keep-alive boundary
// is reached, or Root is reached.
func cleanupEmptyChain(t *wmtree.Tree, id wmtree.ContainerID) (*Result, error) {
	res := &Result{}
	current, ok := t.Get(id)
	for ok && current.Kind != wmtree.KindRoot && isEmpty(current) && !isKeepAlive(current) {
		parentID := current.Parent
		if !current.HasParent() {
			break
		}
		parent := t.MustGet(parentID)

		removeID(&parent.Children, current.ID)
		removeID(&parent.ChildFocusOrder, current.ID)
		current.Parent = 0
		t.RemoveDetached(current.ID)

		if current.Kind.IsTilingVariant() {
			rebalanced, err := ResizeTilingChildrenForRemove(t, parentID, current.TilingSize())
			if err != nil {
				return nil, err
			}
			res.addRedraw(rebalanced...)
		}

		remainingTiling := t.TilingChildren(parentID)
		if parent.Kind == wmtree.KindSplit && len(remainingTiling) == 1 {
			flattenRes, err := FlattenSplitContainer(t, parentID)
			if err != nil {
				return nil, err
			}
			res.addRedraw(flattenRes.Redraw...)
			return res, nil
		}

		current, ok = t.Get(parentID)
	}
	return res, nil
}

func isEmpty(c *wmtree.Container) bool {
	return len(c.Children) == 0
}

func isKeepAlive(c *wmtree.Container) bool {
	switch c.Kind {
	case wmtree.KindWorkspace:
		return c.Workspace.KeepAlive
	case wmtree.KindMonitor:
		return true
	default:
		return false
	}
}

// MoveWithinTree detaches container and reattaches it under newParent at
// newIndex, atomically (the tree never observes container as fully
// detached). Returns an error if newParent is container itself or a
// descendant of container, which would create a cycle.
func MoveWithinTree(t *wmtree.Tree, containerID, newParentID wmtree.ContainerID, newIndex int) (*Result, error) {
	if containerID == newParentID {
		return nil, fmt.Errorf("treeops: cannot move %d into itself", containerID)
	}
	if t.IsDescendantOf(newParentID, containerID) {
		return nil, fmt.Errorf("treeops: cannot move %d into its own descendant %d", containerID, newParentID)
	}

	focused := t.FocusedContainer()
	focusWasInside := focused == containerID || t.IsDescendantOf(focused, containerID)

	res := &Result{}
	detachRes, err := Detach(t, containerID)
	if err != nil {
		return nil, err
	}
	res.addRedraw(detachRes.Redraw...)

	attachRes, err := Attach(t, newParentID, containerID, newIndex)
	if err != nil {
		return nil, err
	}
	res.addRedraw(attachRes.Redraw...)

	if focusWasInside {
		SetFocusedDescendant(t, containerID, 0)
	}

	res.addRedraw(containerID)
	return res, nil
}

// removeID deletes the first occurrence of id from ids, preserving order.
func removeID(ids *[]wmtree.ContainerID, id wmtree.ContainerID) {
	s := *ids
	for i, v := range s {
		if v == id {
			*ids = append(s[:i], s[i+1:]...)
			return
		}
	}
}
