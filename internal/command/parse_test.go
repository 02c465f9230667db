package command

import (
	"testing"

	"github.com/1broseidon/tilewm/internal/geometry"
)

func TestParseMoveWithDirection(t *testing.T) {
	cmd, err := Parse("move direction=left")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Kind != KindMove {
		t.Fatalf("Kind = %v, want KindMove", cmd.Kind)
	}
	if cmd.Direction != geometry.DirectionLeft {
		t.Fatalf("Direction = %v, want left", cmd.Direction)
	}
}

func TestParseResizeWithDelta(t *testing.T) {
	cmd, err := Parse("resize delta=0.05")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Kind != KindResize {
		t.Fatalf("Kind = %v, want KindResize", cmd.Kind)
	}
	if cmd.Delta != 0.05 {
		t.Fatalf("Delta = %v, want 0.05", cmd.Delta)
	}
}

func TestParseSetFloatingCentered(t *testing.T) {
	cmd, err := Parse("set_floating centered=true")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Kind != KindSetFloating || !cmd.Centered {
		t.Fatalf("cmd = %+v, want KindSetFloating centered=true", cmd)
	}
}

func TestParseMoveToWorkspaceByName(t *testing.T) {
	cmd, err := Parse("move_to_workspace name=2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Kind != KindMoveToWorkspace || cmd.WorkspaceName != "2" {
		t.Fatalf("cmd = %+v, want KindMoveToWorkspace name=2", cmd)
	}
}

func TestParseShellExec(t *testing.T) {
	cmd, err := Parse("shell_exec cmd=notify-send")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cmd.Kind != KindShellExec || cmd.ShellCommand != "notify-send" {
		t.Fatalf("cmd = %+v, want KindShellExec cmd=notify-send", cmd)
	}
}

func TestParseRejectsUnknownKind(t *testing.T) {
	if _, err := Parse("teleport"); err == nil {
		t.Fatal("Parse(\"teleport\") succeeded, want error")
	}
}

func TestParseRejectsMalformedArgument(t *testing.T) {
	if _, err := Parse("move direction"); err == nil {
		t.Fatal("Parse with bare argument succeeded, want error")
	}
}

func TestParseRejectsInvalidDirection(t *testing.T) {
	if _, err := Parse("move direction=sideways"); err == nil {
		t.Fatal("Parse with invalid direction succeeded, want error")
	}
}

func TestParseRejectsEmptyString(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("Parse(\"\") succeeded, want error")
	}
}

func TestParseAllStopsAtFirstError(t *testing.T) {
	_, err := ParseAll([]string{"move direction=left", "bogus"})
	if err == nil {
		t.Fatal("ParseAll with a bad entry succeeded, want error")
	}
}

func TestParseAllReturnsEveryCommandInOrder(t *testing.T) {
	cmds, err := ParseAll([]string{"set_tiling", "focus direction=down"})
	if err != nil {
		t.Fatalf("ParseAll: %v", err)
	}
	if len(cmds) != 2 || cmds[0].Kind != KindSetTiling || cmds[1].Kind != KindFocus {
		t.Fatalf("cmds = %+v, want [SetTiling, Focus]", cmds)
	}
}
