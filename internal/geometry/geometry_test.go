package geometry

import "testing"

func TestLengthValueResolve(t *testing.T) {
	tests := []struct {
		name      string
		value     LengthValue
		reference int
		scale     float64
		want      int
	}{
		{"px no scale", FromPixels(10), 500, 0, 10},
		{"px with scale", FromPixels(10), 500, 1.5, 15},
		{"percent of reference", FromPercent(50), 200, 0, 100},
		{"percent ignores scale", FromPercent(50), 200, 2.0, 100},
		{"rounds to nearest", FromPercent(33.3333), 100, 0, 33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.value.Resolve(tt.reference, tt.scale)
			if got != tt.want {
				t.Fatalf("Resolve() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRectApplyDelta(t *testing.T) {
	r := Rect{X: 100, Y: 100, Width: 200, Height: 200}
	d := RectDelta{
		Left:   FromPixels(10),
		Top:    FromPixels(5),
		Right:  FromPixels(10),
		Bottom: FromPixels(5),
	}

	got := r.ApplyDelta(d, 0)
	want := Rect{X: 90, Y: 95, Width: 220, Height: 210}
	if got != want {
		t.Fatalf("ApplyDelta() = %+v, want %+v", got, want)
	}
}

func TestRectTranslateToCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	into := Rect{X: 0, Y: 0, Width: 1000, Height: 1000}

	got := r.TranslateToCenter(into)
	if got.Width != 100 || got.Height != 50 {
		t.Fatalf("TranslateToCenter() changed size: %+v", got)
	}
	center := got.CenterPoint()
	wantCenter := into.CenterPoint()
	if center != wantCenter {
		t.Fatalf("TranslateToCenter() center = %+v, want %+v", center, wantCenter)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	if !r.ContainsPoint(Point{X: 50, Y: 50}) {
		t.Fatal("expected point inside rect to be contained")
	}
	if r.ContainsPoint(Point{X: 100, Y: 100}) {
		t.Fatal("expected point on far edge to be excluded (half-open rect)")
	}
}

func TestTilingDirectionInverse(t *testing.T) {
	if TilingDirectionHorizontal.Inverse() != TilingDirectionVertical {
		t.Fatal("expected horizontal to invert to vertical")
	}
	if TilingDirectionVertical.Inverse() != TilingDirectionHorizontal {
		t.Fatal("expected vertical to invert to horizontal")
	}
}

func TestTilingDirectionFromDirection(t *testing.T) {
	tests := []struct {
		dir  Direction
		want TilingDirection
	}{
		{DirectionLeft, TilingDirectionHorizontal},
		{DirectionRight, TilingDirectionHorizontal},
		{DirectionUp, TilingDirectionVertical},
		{DirectionDown, TilingDirectionVertical},
	}
	for _, tt := range tests {
		if got := TilingDirectionFromDirection(tt.dir); got != tt.want {
			t.Fatalf("TilingDirectionFromDirection(%s) = %s, want %s", tt.dir, got, tt.want)
		}
	}
}

func TestRectDeltaIsNegligible(t *testing.T) {
	if !ZeroRectDelta().IsNegligible() {
		t.Fatal("expected zero delta to be negligible")
	}
	d := RectDelta{Left: FromPixels(5), Top: FromPixels(0), Right: FromPixels(0), Bottom: FromPixels(0)}
	if d.IsNegligible() {
		t.Fatal("expected non-zero delta to not be negligible")
	}
}
