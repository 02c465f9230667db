package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/platform"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// fakeBackend answers every Backend method with canned, static data; only
// RefreshWindowInfo is exercised by the handler tests below.
type fakeBackend struct {
	info platform.WindowInfo
}

func (f *fakeBackend) ForegroundWindow() (platform.Handle, error)    { return 0, nil }
func (f *fakeBackend) DesktopWindow() (platform.Handle, error)       { return 0, nil }
func (f *fakeBackend) SetForeground(platform.Handle) error           { return nil }
func (f *fakeBackend) MousePosition() (platform.Point, error)        { return platform.Point{}, nil }
func (f *fakeBackend) SetCursorPos(platform.Point) error             { return nil }
func (f *fakeBackend) Monitors() ([]platform.Monitor, error)         { return nil, nil }
func (f *fakeBackend) RefreshWindowInfo(h platform.Handle) (platform.WindowInfo, error) {
	info := f.info
	info.Handle = h
	return info, nil
}
func (f *fakeBackend) IsFullscreen(platform.Handle, geometry.Rect) (bool, error) { return false, nil }
func (f *fakeBackend) SetPosition(platform.Handle, platform.DisplayStateWire, geometry.Rect, bool, bool) error {
	return nil
}
func (f *fakeBackend) SetBorderColor(platform.Handle, *geometry.Color) error { return nil }
func (f *fakeBackend) Close(platform.Handle) error                          { return nil }
func (f *fakeBackend) Minimize(platform.Handle) error                       { return nil }

func newTestState(t *testing.T, backend *fakeBackend) (*wmcore.State, wmtree.ContainerID) {
	t.Helper()
	tree := wmtree.NewTree()

	monitor := tree.NewMonitor()
	monitor.Monitor.Rect = geometry.Rect{X: 0, Y: 0, Width: 1920, Height: 1080}
	if _, err := treeops.Attach(tree, tree.RootID(), monitor.ID, -1); err != nil {
		t.Fatalf("attach monitor: %v", err)
	}

	workspace := tree.NewWorkspace()
	workspace.Workspace.Name = "1"
	workspace.Workspace.TilingDirection = geometry.TilingDirectionHorizontal
	if _, err := treeops.Attach(tree, monitor.ID, workspace.ID, -1); err != nil {
		t.Fatalf("attach workspace: %v", err)
	}
	treeops.SetFocusedDescendant(tree, workspace.ID, 0)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	state := wmcore.New(tree, config.DefaultConfig(), backend, logger)
	return state, workspace.ID
}

func TestHandleWindowShownManagesNewWindow(t *testing.T) {
	backend := &fakeBackend{info: platform.WindowInfo{Manageable: true, Frame: geometry.Rect{Width: 100, Height: 100}}}
	state, _ := newTestState(t, backend)
	pending := reconcile.NewPendingSync()

	handleWindowShown(state, pending, nil, Event{Kind: KindWindowShown, Handle: platform.Handle(99)})

	windowID, ok := state.ContainerForHandle(platform.Handle(99))
	if !ok {
		t.Fatal("window was not bound after handleWindowShown")
	}
	c, ok := state.Tree.Get(windowID)
	if !ok || c.Kind != wmtree.KindTilingWindow {
		t.Fatalf("container = %+v, want a live TilingWindow", c)
	}
	if pending.IsEmpty() {
		t.Fatal("pending sync is empty, want a queued redraw")
	}
}

func TestHandleWindowShownIgnoresUnmanageableWindow(t *testing.T) {
	backend := &fakeBackend{info: platform.WindowInfo{Manageable: false}}
	state, _ := newTestState(t, backend)
	pending := reconcile.NewPendingSync()

	handleWindowShown(state, pending, nil, Event{Kind: KindWindowShown, Handle: platform.Handle(7)})

	if _, ok := state.ContainerForHandle(platform.Handle(7)); ok {
		t.Fatal("unmanageable window was bound, want it skipped")
	}
	if !pending.IsEmpty() {
		t.Fatal("pending sync is non-empty, want no-op for an unmanageable window")
	}
}

func TestHandleWindowShownKnownHandleQueuesRedrawOnly(t *testing.T) {
	backend := &fakeBackend{info: platform.WindowInfo{Manageable: true}}
	state, workspaceID := newTestState(t, backend)

	w := state.Tree.NewTilingWindow()
	if _, err := treeops.Attach(state.Tree, workspaceID, w.ID, -1); err != nil {
		t.Fatalf("attach window: %v", err)
	}
	state.Bind(platform.Handle(5), w.ID)

	pending := reconcile.NewPendingSync()
	handleWindowShown(state, pending, nil, Event{Kind: KindWindowShown, Handle: platform.Handle(5)})

	if state.Tree.Count() != 4 {
		t.Fatalf("container count = %d, want 4 (root, monitor, workspace, window)", state.Tree.Count())
	}
	if pending.IsEmpty() {
		t.Fatal("pending sync is empty, want the known window's redraw queued")
	}
}
