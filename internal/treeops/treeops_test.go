package treeops

import (
	"math"
	"testing"

	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

func newWorkspaceFixture(t *testing.T) (*wmtree.Tree, wmtree.ContainerID, wmtree.ContainerID) {
	t.Helper()
	tree := wmtree.NewTree()

	monitor := tree.NewMonitor()
	monitor.Monitor.Rect = geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	monitor.Monitor.ScaleFactor = 1.0
	if _, err := Attach(tree, tree.RootID(), monitor.ID, -1); err != nil {
		t.Fatalf("attach monitor: %v", err)
	}

	workspace := tree.NewWorkspace()
	workspace.Workspace.Name = "1"
	workspace.Workspace.TilingDirection = geometry.TilingDirectionHorizontal
	if _, err := Attach(tree, monitor.ID, workspace.ID, -1); err != nil {
		t.Fatalf("attach workspace: %v", err)
	}

	return tree, monitor.ID, workspace.ID
}

func TestAttachTwoTilingWindowsSplitEvenly(t *testing.T) {
	tree, _, workspaceID := newWorkspaceFixture(t)

	w1 := tree.NewTilingWindow()
	if _, err := Attach(tree, workspaceID, w1.ID, -1); err != nil {
		t.Fatalf("attach w1: %v", err)
	}
	if got := w1.TilingSize(); math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("single window tiling-size = %v, want 1.0", got)
	}

	w2 := tree.NewTilingWindow()
	if _, err := Attach(tree, workspaceID, w2.ID, -1); err != nil {
		t.Fatalf("attach w2: %v", err)
	}

	if got := w1.TilingSize(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("w1 tiling-size after second attach = %v, want 0.5", got)
	}
	if got := w2.TilingSize(); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("w2 tiling-size after attach = %v, want 0.5", got)
	}

	rect1, err := tree.ToRect(w1.ID)
	if err != nil {
		t.Fatalf("to_rect w1: %v", err)
	}
	rect2, err := tree.ToRect(w2.ID)
	if err != nil {
		t.Fatalf("to_rect w2: %v", err)
	}

	want1 := geometry.Rect{X: 0, Y: 0, Width: 960, Height: 1080}
	want2 := geometry.Rect{X: 960, Y: 0, Width: 960, Height: 1080}
	if rect1 != want1 {
		t.Fatalf("rect1 = %+v, want %+v", rect1, want1)
	}
	if rect2 != want2 {
		t.Fatalf("rect2 = %+v, want %+v", rect2, want2)
	}
}

func TestDetachRebalancesRemainingSiblings(t *testing.T) {
	tree, _, workspaceID := newWorkspaceFixture(t)

	w1 := tree.NewTilingWindow()
	w2 := tree.NewTilingWindow()
	w3 := tree.NewTilingWindow()
	for _, w := range []*wmtree.Container{w1, w2, w3} {
		if _, err := Attach(tree, workspaceID, w.ID, -1); err != nil {
			t.Fatalf("attach: %v", err)
		}
	}

	if _, err := Detach(tree, w2.ID); err != nil {
		t.Fatalf("detach w2: %v", err)
	}

	total := w1.TilingSize() + w3.TilingSize()
	if math.Abs(total-1.0) > tilingSizeEpsilon {
		t.Fatalf("remaining siblings sum = %v, want 1.0", total)
	}
}

func TestFlattenRedundantSplitPreservesRect(t *testing.T) {
	tree, _, workspaceID := newWorkspaceFixture(t)

	split := tree.NewSplit()
	split.Split.TilingDirection = geometry.TilingDirectionVertical
	if _, err := Attach(tree, workspaceID, split.ID, -1); err != nil {
		t.Fatalf("attach split: %v", err)
	}

	w1 := tree.NewTilingWindow()
	if _, err := Attach(tree, split.ID, w1.ID, -1); err != nil {
		t.Fatalf("attach w1 under split: %v", err)
	}

	beforeRect, err := tree.ToRect(w1.ID)
	if err != nil {
		t.Fatalf("to_rect before flatten: %v", err)
	}

	if _, err := FlattenSplitContainer(tree, split.ID); err != nil {
		t.Fatalf("flatten: %v", err)
	}

	if _, ok := tree.Get(split.ID); ok {
		t.Fatal("expected split to be removed from the arena after flattening")
	}
	if got := tree.MustGet(w1.ID).Parent; got != workspaceID {
		t.Fatalf("w1 parent after flatten = %d, want workspace %d", got, workspaceID)
	}

	afterRect, err := tree.ToRect(w1.ID)
	if err != nil {
		t.Fatalf("to_rect after flatten: %v", err)
	}
	if beforeRect != afterRect {
		t.Fatalf("flatten changed rendered rect: before %+v after %+v", beforeRect, afterRect)
	}
}

func TestResizeByDeltaThenInverseRestoresSizes(t *testing.T) {
	tree, _, workspaceID := newWorkspaceFixture(t)

	w1 := tree.NewTilingWindow()
	w2 := tree.NewTilingWindow()
	for _, w := range []*wmtree.Container{w1, w2} {
		if _, err := Attach(tree, workspaceID, w.ID, -1); err != nil {
			t.Fatalf("attach: %v", err)
		}
	}

	before1, before2 := w1.TilingSize(), w2.TilingSize()

	if _, err := ResizeByDelta(tree, w1.ID, 0.1, MinTilingSize); err != nil {
		t.Fatalf("resize +delta: %v", err)
	}
	if _, err := ResizeByDelta(tree, w1.ID, -0.1, MinTilingSize); err != nil {
		t.Fatalf("resize -delta: %v", err)
	}

	if math.Abs(w1.TilingSize()-before1) > tilingSizeEpsilon {
		t.Fatalf("w1 size after resize round trip = %v, want %v", w1.TilingSize(), before1)
	}
	if math.Abs(w2.TilingSize()-before2) > tilingSizeEpsilon {
		t.Fatalf("w2 size after resize round trip = %v, want %v", w2.TilingSize(), before2)
	}
}

func TestResizeByDeltaSaturatesAtMinimum(t *testing.T) {
	tree, _, workspaceID := newWorkspaceFixture(t)

	w1 := tree.NewTilingWindow()
	w2 := tree.NewTilingWindow()
	for _, w := range []*wmtree.Container{w1, w2} {
		if _, err := Attach(tree, workspaceID, w.ID, -1); err != nil {
			t.Fatalf("attach: %v", err)
		}
	}

	if _, err := ResizeByDelta(tree, w1.ID, -10, MinTilingSize); err != nil {
		t.Fatalf("resize: %v", err)
	}

	if w1.TilingSize() < MinTilingSize-tilingSizeEpsilon {
		t.Fatalf("w1 size = %v, want >= %v", w1.TilingSize(), MinTilingSize)
	}
	if math.Abs(w1.TilingSize()+w2.TilingSize()-1.0) > tilingSizeEpsilon {
		t.Fatalf("sizes no longer sum to 1.0: %v + %v", w1.TilingSize(), w2.TilingSize())
	}
}

func TestSetFocusedDescendantReachableFromRoot(t *testing.T) {
	tree, _, workspaceID := newWorkspaceFixture(t)

	w1 := tree.NewTilingWindow()
	w2 := tree.NewTilingWindow()
	for _, w := range []*wmtree.Container{w1, w2} {
		if _, err := Attach(tree, workspaceID, w.ID, -1); err != nil {
			t.Fatalf("attach: %v", err)
		}
	}

	SetFocusedDescendant(tree, w2.ID, 0)

	if got := tree.FocusedContainer(); got != w2.ID {
		t.Fatalf("FocusedContainer() = %d, want %d", got, w2.ID)
	}
}

func TestMoveWithinTreeRejectsCycle(t *testing.T) {
	tree, _, workspaceID := newWorkspaceFixture(t)

	split := tree.NewSplit()
	split.Split.TilingDirection = geometry.TilingDirectionHorizontal
	if _, err := Attach(tree, workspaceID, split.ID, -1); err != nil {
		t.Fatalf("attach split: %v", err)
	}

	if _, err := MoveWithinTree(tree, workspaceID, split.ID, 0); err == nil {
		t.Fatal("expected error moving workspace into its own descendant split")
	}
}
