// Package ipc is the daemon's consumer-facing contract: a JSON-over-
// unix-socket request/response protocol plus an outbound event stream,
// so external tools (scripts, the tree inspector, third-party bars) can
// drive and observe the window manager without linking against it.
package ipc

import "github.com/1broseidon/tilewm/internal/wmtree"

// ContainerDto is a serializable snapshot of one container and its
// subtree, the wire shape for outbound events.
type ContainerDto struct {
	ID       uint64         `json:"id"`
	ParentID uint64         `json:"parent_id,omitempty"`
	Kind     string         `json:"kind"`
	Children []ContainerDto `json:"children,omitempty"`

	// Variant-specific attributes, only the ones relevant to Kind are
	// populated.
	Name            string  `json:"name,omitempty"`
	TilingDirection string  `json:"tiling_direction,omitempty"`
	TilingSize      float64 `json:"tiling_size,omitempty"`
	DisplayState    string  `json:"display_state,omitempty"`
	WindowState     string  `json:"window_state,omitempty"`
	Handle          uint32  `json:"handle,omitempty"`
}

// ToDTO snapshots id and its descendants out of the tree.
func ToDTO(t *wmtree.Tree, id wmtree.ContainerID) ContainerDto {
	c := t.MustGet(id)
	dto := ContainerDto{
		ID:   uint64(id),
		Kind: c.Kind.String(),
	}
	if c.HasParent() {
		dto.ParentID = uint64(c.Parent)
	}

	switch c.Kind {
	case wmtree.KindWorkspace:
		dto.Name = c.Workspace.Name
		dto.TilingDirection = string(c.Workspace.TilingDirection)
	case wmtree.KindSplit:
		dto.TilingDirection = string(c.Split.TilingDirection)
		dto.TilingSize = c.Split.TilingSize
	case wmtree.KindTilingWindow:
		dto.TilingSize = c.TilingWindow.TilingSize
		dto.DisplayState = c.TilingWindow.DisplayState.String()
		dto.WindowState = c.TilingWindow.State.Kind.String()
		dto.Handle = uint32(c.TilingWindow.Handle)
	case wmtree.KindNonTilingWindow:
		dto.DisplayState = c.NonTilingWindow.DisplayState.String()
		dto.WindowState = c.NonTilingWindow.State.Kind.String()
		dto.Handle = uint32(c.NonTilingWindow.Handle)
	}

	for _, childID := range c.Children {
		dto.Children = append(dto.Children, ToDTO(t, childID))
	}
	return dto
}
