package config

import "github.com/1broseidon/tilewm/internal/geometry"

type CursorJumpTrigger int

const (
	CursorJumpWindowFocus CursorJumpTrigger = iota
	CursorJumpMonitorFocus
)

type HideMethod int

const (
	HideMethodHide HideMethod = iota
	HideMethodCloak
)

type InitialState int

const (
	InitialStateTiling InitialState = iota
	InitialStateFloating
)

type GapsConfig struct {
	ScaleWithDPI bool
	InnerGap     geometry.LengthValue
	OuterGap     geometry.RectDelta
}

type GeneralConfig struct {
	CursorJumpEnabled        bool
	CursorJumpTrigger        CursorJumpTrigger
	FocusFollowsCursor       bool
	ToggleWorkspaceOnRefocus bool
	HideMethod               HideMethod
}

type StateDefaults struct {
	Centered   bool
	ShownOnTop bool
	Maximized  bool
}

type WindowBehaviorConfig struct {
	InitialState  InitialState
	StateDefaults StateDefaults
}

type WindowEffectGroup struct {
	BorderEnabled bool
	BorderColor   geometry.Color
	HideTitleBar  bool
	CornerStyle   string
}

type WindowEffectsConfig struct {
	FocusedWindow WindowEffectGroup
	OtherWindows  WindowEffectGroup
}

type WorkspaceConfig struct {
	Name          string
	DisplayName   string
	BindToMonitor *int
	KeepAlive     bool
}

type MatchOp int

const (
	MatchEquals MatchOp = iota
	MatchIncludes
	MatchRegex
	MatchNotEquals
	MatchNotRegex
)

// MatchPredicate is one of process/class/title. A regex pattern is
// checked at load time (an invalid one is stored with an empty Value) and
// compiled again on each evaluation.
type MatchPredicate struct {
	Op    MatchOp
	Value string
}

type MatchConfig struct {
	ProcessName *MatchPredicate
	ClassName   *MatchPredicate
	Title       *MatchPredicate
}

type RuleTrigger int

const (
	RuleOnManage RuleTrigger = iota
	RuleOnFocus
	RuleOnTitleChange
)

type WindowRule struct {
	Match    []MatchConfig
	Commands []string
	On       []RuleTrigger
	RunOnce  bool
}

type Keybinding struct {
	Bindings []string
	Commands []string
}

type BindingMode struct {
	Name     string
	Bindings []Keybinding
}

// Config is the effective, fully-resolved configuration the core reads
// from. It carries no pointers: every optional YAML
// field has already been merged onto DefaultConfig()'s value by
// BuildEffectiveConfig.
type Config struct {
	Gaps           GapsConfig
	General        GeneralConfig
	WindowBehavior WindowBehaviorConfig
	WindowEffects  WindowEffectsConfig
	Workspaces     []WorkspaceConfig
	WindowRules    []WindowRule
	Keybindings    []Keybinding
	BindingModes   []BindingMode
}
