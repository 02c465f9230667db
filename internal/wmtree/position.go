package wmtree

import (
	"fmt"

	"github.com/1broseidon/tilewm/internal/geometry"
)

// ToRect computes the rectangle a container currently occupies. Split and
// TilingWindow rects are computed recursively from the workspace's working
// area, apportioned by sibling tiling-sizes along each ancestor split's
// direction.
func (t *Tree) ToRect(id ContainerID) (geometry.Rect, error) {
	c, ok := t.Get(id)
	if !ok {
		return geometry.Rect{}, fmt.Errorf("wmtree: container %d not found", id)
	}

	switch c.Kind {
	case KindMonitor:
		return c.Monitor.Rect, nil

	case KindWorkspace:
		if !c.HasParent() {
			return geometry.Rect{}, fmt.Errorf("wmtree: workspace %d has no monitor", id)
		}
		monitor := t.MustGet(c.Parent)
		rect := monitor.Monitor.Rect
		if c.Workspace.OuterGap.IsNegligible() {
			return rect, nil
		}
		scale := monitor.Monitor.ScaleFactor
		return rect.ApplyDelta(negateDelta(c.Workspace.OuterGap), scale), nil

	case KindTilingWindow:
		if c.TilingWindow.State.Kind == WindowStateFullscreen {
			monitorID, ok := t.Monitor(id)
			if !ok {
				return geometry.Rect{}, fmt.Errorf("wmtree: window %d has no monitor", id)
			}
			return t.MustGet(monitorID).Monitor.Rect, nil
		}
		return t.tilingRect(id)

	case KindSplit:
		return t.tilingRect(id)

	case KindNonTilingWindow:
		switch c.NonTilingWindow.State.Kind {
		case WindowStateFullscreen:
			monitorID, ok := t.Monitor(id)
			if !ok {
				return geometry.Rect{}, fmt.Errorf("wmtree: window %d has no monitor", id)
			}
			return t.MustGet(monitorID).Monitor.Rect, nil
		default:
			return c.NonTilingWindow.FloatingPlacement, nil
		}

	default:
		return geometry.Rect{}, fmt.Errorf("wmtree: container %d (%s) has no rect", id, c.Kind)
	}
}

// tilingRect computes the rect of a Split or TilingWindow: the slice of its
// parent's rect along the parent's tiling direction proportional to the
// container's tiling-size, shrunk by half the workspace inner-gap on each
// bordering side.
func (t *Tree) tilingRect(id ContainerID) (geometry.Rect, error) {
	c := t.MustGet(id)
	if !c.HasParent() {
		return geometry.Rect{}, fmt.Errorf("wmtree: tiling container %d has no parent", id)
	}
	parent := t.MustGet(c.Parent)

	parentRect, err := t.ToRect(parent.ID)
	if err != nil {
		return geometry.Rect{}, err
	}

	direction, ok := parent.TilingDirection()
	if !ok {
		return geometry.Rect{}, fmt.Errorf("wmtree: parent %d of %d has no tiling direction", parent.ID, id)
	}

	tilingSiblings := t.TilingChildren(parent.ID)
	index := -1
	for i, siblingID := range tilingSiblings {
		if siblingID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return geometry.Rect{}, fmt.Errorf("wmtree: container %d is not a tiling child of %d", id, parent.ID)
	}

	workspaceID, ok := t.Workspace(id)
	if !ok {
		return geometry.Rect{}, fmt.Errorf("wmtree: container %d has no workspace", id)
	}
	workspace := t.MustGet(workspaceID)
	innerGap := workspace.Workspace.InnerGap

	monitorID, _ := t.Monitor(id)
	var scale float64
	if monitor, ok := t.Get(monitorID); ok {
		scale = monitor.Monitor.ScaleFactor
	}

	var offset int
	for _, siblingID := range tilingSiblings[:index] {
		sibling := t.MustGet(siblingID)
		offset += sizeAlong(parentRect, direction, sibling.TilingSize())
	}

	extent := sizeAlong(parentRect, direction, c.TilingSize())

	rect := sliceRect(parentRect, direction, offset, extent)

	half := geometry.LengthValue{Amount: innerGap.Amount / 2, Unit: innerGap.Unit}
	gapDelta := geometry.RectDelta{Left: half, Top: half, Right: half, Bottom: half}
	if index == 0 {
		gapDelta = zeroLeadingEdge(gapDelta, direction)
	}
	if index == len(tilingSiblings)-1 {
		gapDelta = zeroTrailingEdge(gapDelta, direction)
	}

	return rect.ApplyDelta(negateDelta(gapDelta), scale), nil
}

func sizeAlong(rect geometry.Rect, direction geometry.TilingDirection, fraction float64) int {
	if direction == geometry.TilingDirectionHorizontal {
		return int(float64(rect.Width) * fraction)
	}
	return int(float64(rect.Height) * fraction)
}

func sliceRect(rect geometry.Rect, direction geometry.TilingDirection, offset, extent int) geometry.Rect {
	if direction == geometry.TilingDirectionHorizontal {
		return geometry.Rect{X: rect.X + offset, Y: rect.Y, Width: extent, Height: rect.Height}
	}
	return geometry.Rect{X: rect.X, Y: rect.Y + offset, Width: rect.Width, Height: extent}
}

// negateDelta flips the sign meaning of a RectDelta so that ApplyDelta
// (which inflates by adding the edges) can be reused to shrink a rect by
// a gap: a positive gap insets the rect, so we negate each edge before
// calling ApplyDelta, which otherwise expands outward.
func negateDelta(d geometry.RectDelta) geometry.RectDelta {
	neg := func(l geometry.LengthValue) geometry.LengthValue {
		return geometry.LengthValue{Amount: -l.Amount, Unit: l.Unit}
	}
	return geometry.RectDelta{
		Left:   neg(d.Left),
		Top:    neg(d.Top),
		Right:  neg(d.Right),
		Bottom: neg(d.Bottom),
	}
}

// zeroLeadingEdge clears the edge of d that faces the start of direction
// (no outer gap between a window and the workspace edge beyond what the
// workspace itself already applied).
func zeroLeadingEdge(d geometry.RectDelta, direction geometry.TilingDirection) geometry.RectDelta {
	zero := geometry.FromPixels(0)
	if direction == geometry.TilingDirectionHorizontal {
		d.Left = zero
	} else {
		d.Top = zero
	}
	return d
}

// zeroTrailingEdge clears the edge of d that faces the end of direction.
func zeroTrailingEdge(d geometry.RectDelta, direction geometry.TilingDirection) geometry.RectDelta {
	zero := geometry.FromPixels(0)
	if direction == geometry.TilingDirectionHorizontal {
		d.Right = zero
	} else {
		d.Bottom = zero
	}
	return d
}
