package handlers

import (
	"github.com/1broseidon/tilewm/internal/platform"
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// handleDisplaySettingsChanged re-enumerates monitors, migrates the
// workspaces of any monitor that disappeared onto another, rebinds
// workspaces to their configured bind_to_monitor index, and forces a full
// resync since every window's usable area may have changed.
func handleDisplaySettingsChanged(state *wmcore.State, pending *reconcile.PendingSync) {
	reported, err := state.Backend.Monitors()
	if err != nil {
		state.Logger.Warn("handlers: monitor enumeration failed", "error", err)
		return
	}

	root := state.Tree.Root()
	existingByHardwareID := make(map[string]wmtree.ContainerID, len(root.Children))
	for _, id := range root.Children {
		monitor := state.Tree.MustGet(id)
		existingByHardwareID[monitor.Monitor.HardwareID] = id
	}

	matched := make(map[wmtree.ContainerID]bool, len(reported))
	for _, info := range reported {
		if id, ok := existingByHardwareID[info.HardwareID]; ok {
			updateMonitorData(state.Tree.MustGet(id), info)
			matched[id] = true
			continue
		}
		c := state.Tree.NewMonitor()
		updateMonitorData(c, info)
		if _, err := treeops.Attach(state.Tree, state.Tree.RootID(), c.ID, len(root.Children)); err != nil {
			state.Logger.Warn("handlers: attach new monitor failed", "monitor", c.ID, "error", err)
			continue
		}
		matched[c.ID] = true
	}

	surviving := make([]wmtree.ContainerID, 0, len(root.Children))
	removed := make([]wmtree.ContainerID, 0)
	for _, id := range root.Children {
		if matched[id] {
			surviving = append(surviving, id)
		} else {
			removed = append(removed, id)
		}
	}
	for _, id := range removed {
		migrateMonitorWorkspaces(state, pending, id, surviving)
	}

	rebindWorkspaces(state, pending)

	pending.SetResetWindowEffects()
	pending.QueueRedraw(state.Tree.DescendantWindows(state.Tree.RootID())...)
}

func updateMonitorData(c *wmtree.Container, info platform.Monitor) {
	m := c.Monitor
	m.Handle = wmtree.Handle(info.Handle)
	m.Rect = info.Rect
	m.WorkingRect = info.WorkingRect
	m.DPI = info.DPI
	m.ScaleFactor = info.ScaleFactor
	m.DeviceName = info.DeviceName
	m.DevicePath = info.DevicePath
	m.HardwareID = info.HardwareID
}

// migrateMonitorWorkspaces reparents every workspace of a disconnected
// monitor onto the first monitor still present, then drops the empty
// monitor container. If no monitor survived the change, the workspaces
// are left in place (there is nowhere to migrate them to) and the monitor
// is not removed.
func migrateMonitorWorkspaces(state *wmcore.State, pending *reconcile.PendingSync, monitorID wmtree.ContainerID, surviving []wmtree.ContainerID) {
	if len(surviving) == 0 {
		state.Logger.Warn("handlers: monitor removed with no replacement; leaving its workspaces in place", "monitor", monitorID)
		return
	}
	target := surviving[0]

	monitor := state.Tree.MustGet(monitorID)
	workspaceIDs := append([]wmtree.ContainerID(nil), monitor.Children...)
	for _, workspaceID := range workspaceIDs {
		res, err := treeops.MoveWithinTree(state.Tree, workspaceID, target, -1)
		if err != nil {
			state.Logger.Warn("handlers: workspace migration failed", "workspace", workspaceID, "error", err)
			continue
		}
		pending.QueueRedraw(res.Redraw...)
	}

	if _, err := treeops.Detach(state.Tree, monitorID); err != nil {
		state.Logger.Warn("handlers: removing disconnected monitor failed", "monitor", monitorID, "error", err)
		return
	}
	state.Tree.RemoveDetached(monitorID)
}

// rebindWorkspaces moves any workspace whose config declares
// bind_to_monitor onto the monitor now at that index, if it isn't there
// already.
func rebindWorkspaces(state *wmcore.State, pending *reconcile.PendingSync) {
	monitors := state.Tree.Root().Children
	for _, workspaceID := range state.Tree.DescendantsOfKind(state.Tree.RootID(), wmtree.KindWorkspace) {
		workspace := state.Tree.MustGet(workspaceID)
		idx := workspace.Workspace.BoundMonitorIndex
		if idx == nil || *idx < 0 || *idx >= len(monitors) {
			continue
		}
		target := monitors[*idx]
		if workspace.Parent == target {
			continue
		}
		res, err := treeops.MoveWithinTree(state.Tree, workspaceID, target, -1)
		if err != nil {
			state.Logger.Warn("handlers: workspace rebind failed", "workspace", workspaceID, "error", err)
			continue
		}
		pending.QueueRedraw(res.Redraw...)
	}
}
