// Package geometry provides the rectangle and length-unit primitives shared
// by the container tree, the tree commands, and the reconciler.
package geometry

import "math"

// Point is a single x/y coordinate in screen space.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle in integer screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// CenterPoint returns the point at the center of the rectangle.
func (r Rect) CenterPoint() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// TranslateToCenter returns a copy of r recentered inside into, preserving
// r's width and height.
func (r Rect) TranslateToCenter(into Rect) Rect {
	center := into.CenterPoint()
	return Rect{
		X:      center.X - r.Width/2,
		Y:      center.Y - r.Height/2,
		Width:  r.Width,
		Height: r.Height,
	}
}

// ContainsPoint reports whether p falls within r.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ApplyDelta inflates or deflates r by the four edges of d, resolved
// against r's own width/height (each edge resolves against the axis it
// insets) and optionally scaled by scaleFactor for DPI-aware gaps.
func (r Rect) ApplyDelta(d RectDelta, scaleFactor float64) Rect {
	left := d.Left.Resolve(r.Width, scaleFactor)
	top := d.Top.Resolve(r.Height, scaleFactor)
	right := d.Right.Resolve(r.Width, scaleFactor)
	bottom := d.Bottom.Resolve(r.Height, scaleFactor)

	return Rect{
		X:      r.X - left,
		Y:      r.Y - top,
		Width:  r.Width + left + right,
		Height: r.Height + top + bottom,
	}
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width && r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height && r.Y+r.Height > other.Y
}

// Clamp returns a copy of r moved and shrunk, if necessary, so that it lies
// entirely within bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	out := r
	if out.Width > bounds.Width {
		out.Width = bounds.Width
	}
	if out.Height > bounds.Height {
		out.Height = bounds.Height
	}
	if out.X < bounds.X {
		out.X = bounds.X
	}
	if out.Y < bounds.Y {
		out.Y = bounds.Y
	}
	if out.X+out.Width > bounds.X+bounds.Width {
		out.X = bounds.X + bounds.Width - out.Width
	}
	if out.Y+out.Height > bounds.Y+bounds.Height {
		out.Y = bounds.Y + bounds.Height - out.Height
	}
	return out
}

// LengthUnit distinguishes an absolute pixel amount from a percentage of
// some reference length.
type LengthUnit string

const (
	UnitPixels  LengthUnit = "px"
	UnitPercent LengthUnit = "percent"
)

// LengthValue is a signed length expressed either in pixels or as a
// percentage of a reference length resolved at the call site (e.g. a
// parent's width for a gap, a monitor's scale factor for DPI awareness).
type LengthValue struct {
	Amount float64
	Unit   LengthUnit
}

// FromPixels builds a pixel-unit length value.
func FromPixels(px int) LengthValue {
	return LengthValue{Amount: float64(px), Unit: UnitPixels}
}

// FromPercent builds a percent-unit length value (0-100 scale).
func FromPercent(percent float64) LengthValue {
	return LengthValue{Amount: percent, Unit: UnitPercent}
}

// Resolve converts the length value to an absolute pixel count against the
// given reference length. When scaleFactor is non-zero and the unit is
// pixels, the amount is scaled by it (DPI-aware gaps); percent values are
// never DPI-scaled since they already track the reference length.
func (l LengthValue) Resolve(reference int, scaleFactor float64) int {
	switch l.Unit {
	case UnitPercent:
		return int(math.Round(l.Amount / 100 * float64(reference)))
	default:
		amount := l.Amount
		if scaleFactor > 0 {
			amount *= scaleFactor
		}
		return int(math.Round(amount))
	}
}

// IsNegligible reports whether the length resolves to at most one pixel
// against any reasonable reference — used to skip applying an outer gap
// that was left at its zero default.
func (l LengthValue) IsNegligible() bool {
	return l.Unit == UnitPixels && l.Amount <= 1
}

// RectDelta is a four-sided inset/outset, one LengthValue per edge.
type RectDelta struct {
	Left   LengthValue
	Top    LengthValue
	Right  LengthValue
	Bottom LengthValue
}

// ZeroRectDelta is a RectDelta whose every edge is a zero-pixel length.
func ZeroRectDelta() RectDelta {
	zero := FromPixels(0)
	return RectDelta{Left: zero, Top: zero, Right: zero, Bottom: zero}
}

// IsNegligible reports whether every edge of the delta is negligible.
func (d RectDelta) IsNegligible() bool {
	return d.Left.IsNegligible() && d.Top.IsNegligible() && d.Right.IsNegligible() && d.Bottom.IsNegligible()
}

// Color is an RGBA color used for window borders.
type Color struct {
	R, G, B, A uint8
}

// Direction is a cardinal direction used by move/focus/resize commands.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// TilingDirection is the axis along which a split or workspace arranges its
// tiling children.
type TilingDirection string

const (
	TilingDirectionHorizontal TilingDirection = "horizontal"
	TilingDirectionVertical   TilingDirection = "vertical"
)

// Inverse returns the opposite tiling direction.
func (d TilingDirection) Inverse() TilingDirection {
	if d == TilingDirectionHorizontal {
		return TilingDirectionVertical
	}
	return TilingDirectionHorizontal
}

// TilingDirectionFromDirection returns the tiling direction that is
// relevant when moving or shifting focus in the given cardinal direction.
func TilingDirectionFromDirection(d Direction) TilingDirection {
	switch d {
	case DirectionLeft, DirectionRight:
		return TilingDirectionHorizontal
	default:
		return TilingDirectionVertical
	}
}
