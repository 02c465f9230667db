package treeview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/tilewm/internal/ipc"
)

// line is one flattened, indented row of the tree pane.
type line struct {
	id       uint64
	depth    int
	hasKids  bool
	collapsed bool
	text     string
}

var (
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236"))
)

// flatten walks root depth-first, skipping the children of any id in
// collapsed, and returns one line per visible container.
func flatten(root ipc.ContainerDto, collapsed map[uint64]struct{}) []line {
	var out []line
	var walk func(c ipc.ContainerDto, depth int)
	walk = func(c ipc.ContainerDto, depth int) {
		_, isCollapsed := collapsed[c.ID]
		out = append(out, line{
			id:        c.ID,
			depth:     depth,
			hasKids:   len(c.Children) > 0,
			collapsed: isCollapsed,
			text:      describe(c),
		})
		if isCollapsed {
			return
		}
		for _, child := range c.Children {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
	return out
}

// describe renders one container's attributes, the fields populated
// mirroring ipc.ContainerDto's per-Kind attribute set.
func describe(c ipc.ContainerDto) string {
	var b strings.Builder
	b.WriteString(kindStyle.Render(c.Kind))

	switch c.Kind {
	case "Workspace":
		fmt.Fprintf(&b, " %s", c.Name)
		if c.TilingDirection != "" {
			fmt.Fprintf(&b, " (%s)", c.TilingDirection)
		}
	case "Split":
		fmt.Fprintf(&b, " %s size=%.3f", c.TilingDirection, c.TilingSize)
	case "TilingWindow":
		fmt.Fprintf(&b, " handle=%d size=%.3f state=%s display=%s", c.Handle, c.TilingSize, c.WindowState, c.DisplayState)
	case "NonTilingWindow":
		fmt.Fprintf(&b, " handle=%d state=%s display=%s", c.Handle, c.WindowState, c.DisplayState)
	}

	return b.String()
}

func (l line) render(selected bool) string {
	indent := strings.Repeat("  ", l.depth)
	marker := " "
	if l.hasKids {
		if l.collapsed {
			marker = "+"
		} else {
			marker = "-"
		}
	}
	row := fmt.Sprintf("%s%s %s  %s", indent, marker, dimStyle.Render(fmt.Sprintf("#%d", l.id)), l.text)
	if selected {
		return selStyle.Render(row)
	}
	return row
}
