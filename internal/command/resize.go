package command

import (
	"github.com/1broseidon/tilewm/internal/reconcile"
	"github.com/1broseidon/tilewm/internal/treeops"
	"github.com/1broseidon/tilewm/internal/wmcore"
	"github.com/1broseidon/tilewm/internal/wmtree"
)

// runResize grows subject by cmd.Delta along its parent's tiling axis,
// taking the opposite amount from its next tiling sibling, or its previous
// one if subject is last (treeops.ResizeByDelta). cmd.Direction is not
// consulted.
func runResize(state *wmcore.State, pending *reconcile.PendingSync, cmd Command, subject wmtree.ContainerID) (wmtree.ContainerID, error) {
	redrawn, err := treeops.ResizeByDelta(state.Tree, subject, cmd.Delta, 0)
	if err != nil {
		return subject, err
	}
	pending.QueueRedraw(redrawn...)
	return subject, nil
}
