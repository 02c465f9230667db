package ipc

import (
	"testing"

	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

func TestToDTOSnapshotsWorkspaceAndWindow(t *testing.T) {
	tree := wmtree.NewTree()

	monitor := tree.NewMonitor()
	monitor.Monitor.Rect = geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	monitor.Monitor.ScaleFactor = 1.0
	if _, err := treeops.Attach(tree, tree.RootID(), monitor.ID, -1); err != nil {
		t.Fatalf("attach monitor: %v", err)
	}

	workspace := tree.NewWorkspace()
	workspace.Workspace.Name = "1"
	workspace.Workspace.TilingDirection = geometry.TilingDirectionHorizontal
	if _, err := treeops.Attach(tree, monitor.ID, workspace.ID, -1); err != nil {
		t.Fatalf("attach workspace: %v", err)
	}

	win := tree.NewTilingWindow()
	if _, err := treeops.Attach(tree, workspace.ID, win.ID, -1); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	win.TilingWindow.Handle = 42

	dto := ToDTO(tree, workspace.ID)
	if dto.Kind != "Workspace" || dto.Name != "1" {
		t.Fatalf("dto = %+v, want Kind=Workspace Name=1", dto)
	}
	if len(dto.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(dto.Children))
	}
	child := dto.Children[0]
	if child.Kind != "TilingWindow" || child.Handle != 42 {
		t.Fatalf("child = %+v, want Kind=TilingWindow Handle=42", child)
	}
}

func TestToDTOParentIDOmittedForRoot(t *testing.T) {
	tree := wmtree.NewTree()
	dto := ToDTO(tree, tree.RootID())
	if dto.ParentID != 0 {
		t.Fatalf("ParentID = %d, want 0 for root", dto.ParentID)
	}
	if dto.Kind != "Root" {
		t.Fatalf("Kind = %q, want Root", dto.Kind)
	}
}
