// Package wmtree implements the container tree: an arena of typed nodes
// (Root, Monitor, Workspace, Split, TilingWindow, NonTilingWindow) linked by
// parent/children/focus-order ids.
//
// The tree exclusively owns every container. Parent back-references are
// plain ids, not pointers, so a detached subtree becomes unreachable and is
// collected the moment the arena entry is deleted; external holders of an
// id must re-resolve it through Tree.Get before use, which is how weak
// reference semantics fall out of a garbage-collected language.
package wmtree

import "fmt"

// ContainerID is a stable, process-wide, opaque identifier for a node.
// The zero value never names a live container.
type ContainerID uint64

// Kind discriminates the six container variants.
type Kind int

const (
	KindRoot Kind = iota
	KindMonitor
	KindWorkspace
	KindSplit
	KindTilingWindow
	KindNonTilingWindow
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindMonitor:
		return "Monitor"
	case KindWorkspace:
		return "Workspace"
	case KindSplit:
		return "Split"
	case KindTilingWindow:
		return "TilingWindow"
	case KindNonTilingWindow:
		return "NonTilingWindow"
	default:
		return "Unknown"
	}
}

// IsTilingVariant reports whether a container participates in a parent's
// tiling-size normalization.
func (k Kind) IsTilingVariant() bool {
	return k == KindSplit || k == KindTilingWindow
}

// Container is the common header shared by every node variant. Exactly one
// of the variant-specific fields below is non-nil, selected by Kind.
type Container struct {
	ID              ContainerID
	Kind            Kind
	Parent          ContainerID // zero for Root
	Children        []ContainerID
	ChildFocusOrder []ContainerID // permutation of Children; front = most recently focused

	Monitor         *MonitorData
	Workspace       *WorkspaceData
	Split           *SplitData
	TilingWindow    *TilingWindowData
	NonTilingWindow *NonTilingWindowData
}

// HasParent reports whether c is not the root.
func (c *Container) HasParent() bool {
	return c.Parent != 0
}

// Tree is the process-wide singleton container arena. It is not safe for
// concurrent use; the core's single-threaded event loop is the only writer.
type Tree struct {
	nodes  map[ContainerID]*Container
	nextID ContainerID
	rootID ContainerID
}

// NewTree creates a tree containing only the Root singleton.
func NewTree() *Tree {
	t := &Tree{nodes: make(map[ContainerID]*Container)}
	root := t.allocate(KindRoot)
	t.rootID = root.ID
	return t
}

// RootID returns the id of the sole Root container.
func (t *Tree) RootID() ContainerID {
	return t.rootID
}

// Root returns the Root container.
func (t *Tree) Root() *Container {
	return t.nodes[t.rootID]
}

// Get resolves an id to its container, returning false if the id is stale
// (the container was since detached and cleaned up) or was never valid.
func (t *Tree) Get(id ContainerID) (*Container, bool) {
	c, ok := t.nodes[id]
	return c, ok
}

// MustGet resolves an id, panicking if it no longer names a live container.
// Only used internally by tree commands that just created or validated the
// id in the same operation; an external caller should use Get.
func (t *Tree) MustGet(id ContainerID) *Container {
	c, ok := t.nodes[id]
	if !ok {
		panic(fmt.Sprintf("wmtree: dangling container id %d", id))
	}
	return c
}

func (t *Tree) allocate(kind Kind) *Container {
	t.nextID++
	c := &Container{ID: t.nextID, Kind: kind}
	switch kind {
	case KindMonitor:
		c.Monitor = &MonitorData{}
	case KindWorkspace:
		c.Workspace = &WorkspaceData{}
	case KindSplit:
		c.Split = &SplitData{}
	case KindTilingWindow:
		c.TilingWindow = &TilingWindowData{}
	case KindNonTilingWindow:
		c.NonTilingWindow = &NonTilingWindowData{}
	}
	t.nodes[c.ID] = c
	return c
}

// NewMonitor allocates a detached Monitor container; attach it with
// treeops.Attach.
func (t *Tree) NewMonitor() *Container { return t.allocate(KindMonitor) }

// NewWorkspace allocates a detached Workspace container.
func (t *Tree) NewWorkspace() *Container { return t.allocate(KindWorkspace) }

// NewSplit allocates a detached Split container.
func (t *Tree) NewSplit() *Container { return t.allocate(KindSplit) }

// NewTilingWindow allocates a detached TilingWindow container.
func (t *Tree) NewTilingWindow() *Container { return t.allocate(KindTilingWindow) }

// NewNonTilingWindow allocates a detached NonTilingWindow container.
func (t *Tree) NewNonTilingWindow() *Container { return t.allocate(KindNonTilingWindow) }

// RemoveDetached deletes a detached, childless container from the arena.
// Used by cleanup passes once a container has been emptied and unlinked;
// panics if the container still has a parent or children, which would
// indicate a cleanup-ordering bug.
func (t *Tree) RemoveDetached(id ContainerID) {
	c, ok := t.nodes[id]
	if !ok {
		return
	}
	if c.HasParent() || len(c.Children) != 0 {
		panic(fmt.Sprintf("wmtree: RemoveDetached called on non-empty or attached container %d", id))
	}
	delete(t.nodes, id)
}

// Count returns the number of live containers, including Root.
func (t *Tree) Count() int {
	return len(t.nodes)
}
