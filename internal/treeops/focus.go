package treeops

import "github.com/1broseidon/tilewm/internal/wmtree"

// SetFocusedDescendant walks from container up to endAncestor (Root if
// endAncestor is zero), moving the relevant descendant id to the front of
// each ancestor's ChildFocusOrder so that following the front of every
// node's focus order from Root reaches container.
func SetFocusedDescendant(t *wmtree.Tree, containerID, endAncestor wmtree.ContainerID) {
	current, ok := t.Get(containerID)
	if !ok {
		return
	}
	childID := containerID

	for current.HasParent() {
		parentID := current.Parent
		parent := t.MustGet(parentID)
		moveToFront(&parent.ChildFocusOrder, childID)

		if parentID == endAncestor {
			return
		}

		childID = parentID
		current = parent
	}
}

func moveToFront(ids *[]wmtree.ContainerID, id wmtree.ContainerID) {
	s := *ids
	for i, v := range s {
		if v == id {
			if i == 0 {
				return
			}
			copy(s[1:i+1], s[0:i])
			s[0] = id
			return
		}
	}
	// id wasn't present (shouldn't happen for a live parent/child pair);
	// add it defensively so the invariant still holds afterward.
	*ids = append([]wmtree.ContainerID{id}, s...)
}
