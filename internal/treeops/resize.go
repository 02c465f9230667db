package treeops

import (
	"fmt"
	"math"

	"github.com/1broseidon/tilewm/internal/wmtree"
)

const tilingSizeEpsilon = 1e-6

// ResizeTilingChildrenForInsert enforces invariant 3 after a
// new tiling child has been attached: the new child receives 1/N of the
// parent's extent and every existing sibling is scaled down by (N-1)/N,
// preserving their relative proportions.
func ResizeTilingChildrenForInsert(t *wmtree.Tree, parentID, insertedID wmtree.ContainerID) ([]wmtree.ContainerID, error) {
	children := t.TilingChildren(parentID)
	n := len(children)
	if n == 0 {
		return nil, fmt.Errorf("treeops: parent %d has no tiling children after insert", parentID)
	}
	if n == 1 {
		t.MustGet(children[0]).SetTilingSize(1.0)
		return children, nil
	}

	share := 1.0 / float64(n)
	scale := float64(n-1) / float64(n)

	for _, id := range children {
		c := t.MustGet(id)
		if id == insertedID {
			c.SetTilingSize(share)
			continue
		}
		c.SetTilingSize(c.TilingSize() * scale)
	}

	return renormalize(t, children), nil
}

// ResizeTilingChildrenForRemove enforces invariant 3 after a tiling child
// of removedSize has been detached: its share is distributed proportionally
// among the remaining siblings.
func ResizeTilingChildrenForRemove(t *wmtree.Tree, parentID wmtree.ContainerID, removedSize float64) ([]wmtree.ContainerID, error) {
	children := t.TilingChildren(parentID)
	if len(children) == 0 {
		return nil, nil
	}

	remainingTotal := 0.0
	for _, id := range children {
		remainingTotal += t.MustGet(id).TilingSize()
	}

	if remainingTotal <= tilingSizeEpsilon {
		even := 1.0 / float64(len(children))
		for _, id := range children {
			t.MustGet(id).SetTilingSize(even)
		}
		return children, nil
	}

	// Distribute the removed child's share proportionally to each
	// sibling's existing share of the remaining total.
	for _, id := range children {
		c := t.MustGet(id)
		proportion := c.TilingSize() / remainingTotal
		c.SetTilingSize(c.TilingSize() + removedSize*proportion)
	}

	return renormalize(t, children), nil
}

// ResizeByDelta implements the user resize command: id's tiling-size
// changes by delta, taking -delta from id's immediate next tiling sibling
// (or previous, if id has no next sibling), saturating at minSize.
func ResizeByDelta(t *wmtree.Tree, id wmtree.ContainerID, delta, minSize float64) ([]wmtree.ContainerID, error) {
	c, ok := t.Get(id)
	if !ok || !c.Kind.IsTilingVariant() {
		return nil, fmt.Errorf("treeops: container %d is not a tiling variant", id)
	}
	if !c.HasParent() {
		return nil, fmt.Errorf("treeops: container %d has no parent", id)
	}
	if minSize <= 0 {
		minSize = MinTilingSize
	}

	siblings := t.TilingSiblings(id)
	if len(siblings) == 0 {
		return nil, fmt.Errorf("treeops: container %d has no tiling sibling to resize against", id)
	}

	parent := t.MustGet(c.Parent)
	tilingChildren := t.TilingChildren(parent.ID)
	selfIndex := -1
	for i, sid := range tilingChildren {
		if sid == id {
			selfIndex = i
			break
		}
	}

	var partnerID wmtree.ContainerID
	if selfIndex+1 < len(tilingChildren) {
		partnerID = tilingChildren[selfIndex+1]
	} else {
		partnerID = tilingChildren[selfIndex-1]
	}
	partner := t.MustGet(partnerID)

	newSelf := c.TilingSize() + delta
	newPartner := partner.TilingSize() - delta

	if newSelf < minSize {
		overshoot := minSize - newSelf
		newSelf = minSize
		newPartner -= overshoot
	}
	if newPartner < minSize {
		overshoot := minSize - newPartner
		newPartner = minSize
		newSelf -= overshoot
	}

	c.SetTilingSize(newSelf)
	partner.SetTilingSize(newPartner)

	return renormalize(t, tilingChildren), nil
}

// renormalize clamps every child's tiling-size to [0,1] and rescales the
// set so the sum is exactly 1.0, returning the affected ids for redraw.
func renormalize(t *wmtree.Tree, children []wmtree.ContainerID) []wmtree.ContainerID {
	total := 0.0
	for _, id := range children {
		c := t.MustGet(id)
		size := c.TilingSize()
		if size < 0 {
			size = 0
		}
		if size > 1 {
			size = 1
		}
		c.SetTilingSize(size)
		total += size
	}

	if total > 0 && math.Abs(total-1.0) > tilingSizeEpsilon {
		for _, id := range children {
			c := t.MustGet(id)
			c.SetTilingSize(c.TilingSize() / total)
		}
	}

	return children
}
