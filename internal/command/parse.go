package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1broseidon/tilewm/internal/geometry"
)

// Parse turns one config command string ("set_floating centered=true") into
// a Command. The first field names the kind (case-insensitive, matching
// Kind.String() with underscores in place of camel case); remaining fields
// are key=value pairs, split the same way an env-file reader splits its
// lines.
func Parse(spec string) (Command, error) {
	fields := strings.Fields(spec)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("command: empty command string")
	}

	kind, err := parseKind(fields[0])
	if err != nil {
		return Command{}, err
	}
	cmd := Command{Kind: kind}

	for _, field := range fields[1:] {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return Command{}, fmt.Errorf("command: malformed argument %q (want key=value)", field)
		}
		if err := applyArg(&cmd, key, value); err != nil {
			return Command{}, err
		}
	}
	return cmd, nil
}

func parseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "move":
		return KindMove, nil
	case "resize":
		return KindResize, nil
	case "set_floating":
		return KindSetFloating, nil
	case "set_tiling":
		return KindSetTiling, nil
	case "set_fullscreen":
		return KindSetFullscreen, nil
	case "set_minimized":
		return KindSetMinimized, nil
	case "focus":
		return KindFocus, nil
	case "close":
		return KindClose, nil
	case "toggle_tiling_direction":
		return KindToggleTilingDirection, nil
	case "move_workspace_in_direction":
		return KindMoveWorkspaceInDirection, nil
	case "move_to_workspace":
		return KindMoveToWorkspace, nil
	case "ignore":
		return KindIgnore, nil
	case "reload_config":
		return KindReloadConfig, nil
	case "shell_exec":
		return KindShellExec, nil
	default:
		return 0, fmt.Errorf("command: unknown command %q", name)
	}
}

func applyArg(cmd *Command, key, value string) error {
	switch key {
	case "direction":
		d := geometry.Direction(strings.ToLower(value))
		switch d {
		case geometry.DirectionLeft, geometry.DirectionRight, geometry.DirectionUp, geometry.DirectionDown:
			cmd.Direction = d
		default:
			return fmt.Errorf("command: invalid direction %q", value)
		}
	case "delta":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("command: invalid delta %q: %w", value, err)
		}
		cmd.Delta = f
	case "centered":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("command: invalid centered %q: %w", value, err)
		}
		cmd.Centered = b
	case "shown_on_top":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("command: invalid shown_on_top %q: %w", value, err)
		}
		cmd.ShownOnTop = b
	case "maximized":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("command: invalid maximized %q: %w", value, err)
		}
		cmd.Maximized = b
	case "name":
		cmd.WorkspaceName = value
	case "cmd":
		cmd.ShellCommand = value
	default:
		return fmt.Errorf("command: unknown argument %q", key)
	}
	return nil
}

// ParseAll parses a window rule's or keybinding's Commands list in order,
// stopping at the first entry that fails to parse.
func ParseAll(specs []string) ([]Command, error) {
	cmds := make([]Command, 0, len(specs))
	for _, s := range specs {
		cmd, err := Parse(s)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}
