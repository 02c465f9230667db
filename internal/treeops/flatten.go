package treeops

import (
	"fmt"

	"github.com/1broseidon/tilewm/internal/wmtree"
)

// FlattenSplitContainer splices a redundant Split's single remaining child
// into the split's own parent at the split's former index, inheriting the
// split's tiling-size. Callers that flatten mid state-change must re-queue
// the affected tiling siblings for redraw themselves: flattening detaches
// the very parent the state-change already queued.
func FlattenSplitContainer(t *wmtree.Tree, splitID wmtree.ContainerID) (*Result, error) {
	split, ok := t.Get(splitID)
	if !ok {
		return nil, fmt.Errorf("treeops: split %d not found", splitID)
	}
	if split.Kind != wmtree.KindSplit {
		return nil, fmt.Errorf("treeops: container %d is not a Split", splitID)
	}
	if !split.HasParent() {
		return nil, fmt.Errorf("treeops: split %d has no parent", splitID)
	}
	tilingChildren := t.TilingChildren(splitID)
	if len(tilingChildren) != 1 {
		return nil, fmt.Errorf("treeops: split %d is not redundant (has %d tiling children)", splitID, len(tilingChildren))
	}

	onlyChild := tilingChildren[0]
	grandparentID := split.Parent
	grandparent := t.MustGet(grandparentID)
	index := t.IndexOfChild(grandparentID, splitID)

	wasFocused := t.FocusedContainer() == onlyChild || t.IsDescendantOf(t.FocusedContainer(), onlyChild)

	// Unlink the child from split, unlink split from grandparent, then
	// reattach the child directly under grandparent at split's old index.
	removeChild(split, onlyChild)
	child := t.MustGet(onlyChild)
	child.Parent = 0
	child.SetTilingSize(split.TilingSize())

	removeChild(grandparent, splitID)
	split.Parent = 0
	t.RemoveDetached(splitID)

	children := make([]wmtree.ContainerID, 0, len(grandparent.Children)+1)
	children = append(children, grandparent.Children[:index]...)
	children = append(children, onlyChild)
	children = append(children, grandparent.Children[index:]...)
	grandparent.Children = children
	grandparent.ChildFocusOrder = append(grandparent.ChildFocusOrder, onlyChild)
	child.Parent = grandparentID

	if wasFocused {
		SetFocusedDescendant(t, onlyChild, 0)
	}

	return &Result{Redraw: []wmtree.ContainerID{onlyChild}}, nil
}

func removeChild(parent *wmtree.Container, childID wmtree.ContainerID) {
	removeID(&parent.Children, childID)
	removeID(&parent.ChildFocusOrder, childID)
}
