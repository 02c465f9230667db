package wmtree

// Ancestors returns id's ancestor chain, nearest first, ending at Root
// (Root itself is included only if id is not Root).
func (t *Tree) Ancestors(id ContainerID) []ContainerID {
	var out []ContainerID
	c, ok := t.Get(id)
	if !ok {
		return out
	}
	for c.HasParent() {
		out = append(out, c.Parent)
		c = t.MustGet(c.Parent)
	}
	return out
}

// Descendants returns every descendant of id in depth-first pre-order.
func (t *Tree) Descendants(id ContainerID) []ContainerID {
	var out []ContainerID
	t.walkDescendants(id, func(child ContainerID) {
		out = append(out, child)
	})
	return out
}

func (t *Tree) walkDescendants(id ContainerID, visit func(ContainerID)) {
	c, ok := t.Get(id)
	if !ok {
		return
	}
	for _, childID := range c.Children {
		visit(childID)
		t.walkDescendants(childID, visit)
	}
}

// DescendantsOfKind returns every descendant of id whose Kind matches.
func (t *Tree) DescendantsOfKind(id ContainerID, kind Kind) []ContainerID {
	var out []ContainerID
	t.walkDescendants(id, func(child ContainerID) {
		if c, ok := t.Get(child); ok && c.Kind == kind {
			out = append(out, child)
		}
	})
	return out
}

// DescendantWindows returns every TilingWindow/NonTilingWindow descendant
// of id, depth-first pre-order.
func (t *Tree) DescendantWindows(id ContainerID) []ContainerID {
	var out []ContainerID
	t.walkDescendants(id, func(child ContainerID) {
		if c, ok := t.Get(child); ok && c.IsWindow() {
			out = append(out, child)
		}
	})
	return out
}

// TilingSiblings returns id's siblings (children of id's parent, excluding
// id) that are tiling variants (Split or TilingWindow).
func (t *Tree) TilingSiblings(id ContainerID) []ContainerID {
	c, ok := t.Get(id)
	if !ok || !c.HasParent() {
		return nil
	}
	parent := t.MustGet(c.Parent)

	var out []ContainerID
	for _, siblingID := range parent.Children {
		if siblingID == id {
			continue
		}
		sibling, ok := t.Get(siblingID)
		if ok && sibling.Kind.IsTilingVariant() {
			out = append(out, siblingID)
		}
	}
	return out
}

// TilingChildren returns id's children that are tiling variants, in
// tiling order.
func (t *Tree) TilingChildren(id ContainerID) []ContainerID {
	c, ok := t.Get(id)
	if !ok {
		return nil
	}
	var out []ContainerID
	for _, childID := range c.Children {
		if child, ok := t.Get(childID); ok && child.Kind.IsTilingVariant() {
			out = append(out, childID)
		}
	}
	return out
}

// DescendantFocusOrder walks from id following the front of each node's
// ChildFocusOrder (depth-first), returning the leaf it reaches. Returns id
// itself if it has no children.
func (t *Tree) DescendantFocusOrder(id ContainerID) ContainerID {
	current, ok := t.Get(id)
	if !ok {
		return id
	}
	for len(current.ChildFocusOrder) > 0 {
		next, ok := t.Get(current.ChildFocusOrder[0])
		if !ok {
			break
		}
		current = next
	}
	return current.ID
}

// FocusedContainer returns the id reached by following ChildFocusOrder from
// Root — the single container the tree considers focused (invariant 5).
func (t *Tree) FocusedContainer() ContainerID {
	return t.DescendantFocusOrder(t.rootID)
}

// Monitor returns the nearest Monitor ancestor of id (or id itself if it is
// a Monitor), false if none exists (e.g. id is Root or detached).
func (t *Tree) Monitor(id ContainerID) (ContainerID, bool) {
	return t.nearestAncestorOfKind(id, KindMonitor)
}

// Workspace returns the nearest Workspace ancestor of id (or id itself if
// it is a Workspace).
func (t *Tree) Workspace(id ContainerID) (ContainerID, bool) {
	return t.nearestAncestorOfKind(id, KindWorkspace)
}

func (t *Tree) nearestAncestorOfKind(id ContainerID, kind Kind) (ContainerID, bool) {
	c, ok := t.Get(id)
	if !ok {
		return 0, false
	}
	if c.Kind == kind {
		return id, true
	}
	for c.HasParent() {
		c = t.MustGet(c.Parent)
		if c.Kind == kind {
			return c.ID, true
		}
	}
	return 0, false
}

// IsDisplayed reports whether a Workspace is the front of its monitor's
// child focus order (invariant 6).
func (t *Tree) IsDisplayed(workspaceID ContainerID) bool {
	ws, ok := t.Get(workspaceID)
	if !ok || ws.Kind != KindWorkspace || !ws.HasParent() {
		return false
	}
	monitor := t.MustGet(ws.Parent)
	return len(monitor.ChildFocusOrder) > 0 && monitor.ChildFocusOrder[0] == workspaceID
}

// DisplayedWorkspace returns the currently displayed workspace on a
// monitor, if any.
func (t *Tree) DisplayedWorkspace(monitorID ContainerID) (ContainerID, bool) {
	monitor, ok := t.Get(monitorID)
	if !ok || monitor.Kind != KindMonitor || len(monitor.ChildFocusOrder) == 0 {
		return 0, false
	}
	return monitor.ChildFocusOrder[0], true
}

// IsDescendantOf reports whether candidate is a descendant of ancestor.
func (t *Tree) IsDescendantOf(candidate, ancestor ContainerID) bool {
	c, ok := t.Get(candidate)
	if !ok {
		return false
	}
	for c.HasParent() {
		if c.Parent == ancestor {
			return true
		}
		c = t.MustGet(c.Parent)
	}
	return false
}

// IndexOfChild returns the index of childID within parent's Children, or
// -1 if not found.
func (t *Tree) IndexOfChild(parentID, childID ContainerID) int {
	parent, ok := t.Get(parentID)
	if !ok {
		return -1
	}
	for i, id := range parent.Children {
		if id == childID {
			return i
		}
	}
	return -1
}
