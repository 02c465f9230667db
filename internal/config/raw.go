// Package config loads the YAML configuration that parameterizes the
// core: gaps, general behavior, window defaults and effects, the static
// workspace inventory, window rules, and keybindings.
package config

import "gopkg.in/yaml.v3"

// RawLengthValue accepts either a bare pixel integer ("12") or a
// percent-suffixed string ("25%") in YAML, via permissive scalar
// unmarshaling.
type RawLengthValue struct {
	Amount float64
	Unit   string // "px" or "percent"
}

func (l *RawLengthValue) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		var amount float64
		if err2 := value.Decode(&amount); err2 != nil {
			return err
		}
		l.Amount = amount
		l.Unit = "px"
		return nil
	}
	return parseLengthString(raw, l)
}

func parseLengthString(raw string, out *RawLengthValue) error {
	if n := len(raw); n > 0 && raw[n-1] == '%' {
		amount, err := parseFloat(raw[:n-1])
		if err != nil {
			return err
		}
		out.Amount = amount
		out.Unit = "percent"
		return nil
	}
	amount, err := parseFloat(raw)
	if err != nil {
		return err
	}
	out.Amount = amount
	out.Unit = "px"
	return nil
}

type RawRectDelta struct {
	Left   *RawLengthValue `yaml:"left"`
	Top    *RawLengthValue `yaml:"top"`
	Right  *RawLengthValue `yaml:"right"`
	Bottom *RawLengthValue `yaml:"bottom"`
}

type RawCursorJump struct {
	Enabled *bool   `yaml:"enabled"`
	Trigger *string `yaml:"trigger"` // "monitor_focus" | "window_focus"
}

type RawGapsConfig struct {
	ScaleWithDPI *bool           `yaml:"scale_with_dpi"`
	InnerGap     *RawLengthValue `yaml:"inner_gap"`
	OuterGap     *RawRectDelta   `yaml:"outer_gap"`
}

type RawGeneralConfig struct {
	CursorJump              *RawCursorJump `yaml:"cursor_jump"`
	FocusFollowsCursor      *bool          `yaml:"focus_follows_cursor"`
	ToggleWorkspaceOnRefocus *bool         `yaml:"toggle_workspace_on_refocus"`
	HideMethod              *string        `yaml:"hide_method"` // "hide" | "cloak"
}

type RawStateDefaults struct {
	Centered   *bool `yaml:"centered"`
	ShownOnTop *bool `yaml:"shown_on_top"`
	Maximized  *bool `yaml:"maximized"`
}

type RawWindowBehaviorConfig struct {
	InitialState  *string           `yaml:"initial_state"` // "tiling" | "floating"
	StateDefaults *RawStateDefaults `yaml:"state_defaults"`
}

type RawBorderConfig struct {
	Enabled      *bool   `yaml:"enabled"`
	Color        *string `yaml:"color"` // "#RRGGBB" or "#RRGGBBAA"
	HideTitleBar *bool   `yaml:"hide_title_bar"`
	CornerStyle  *string `yaml:"corner_style"`
}

type RawWindowEffectGroup struct {
	Border       *RawBorderConfig `yaml:"border"`
	HideTitleBar *bool            `yaml:"hide_title_bar"`
	CornerStyle  *string          `yaml:"corner_style"`
}

type RawWindowEffectsConfig struct {
	FocusedWindow *RawWindowEffectGroup `yaml:"focused_window"`
	OtherWindows  *RawWindowEffectGroup `yaml:"other_windows"`
}

type RawWorkspaceConfig struct {
	Name          string  `yaml:"name"`
	DisplayName   *string `yaml:"display_name"`
	BindToMonitor *int    `yaml:"bind_to_monitor"`
	KeepAlive     *bool   `yaml:"keep_alive"`
}

type RawMatchPredicate struct {
	Op    string `yaml:"op"` // "equals" | "includes" | "regex" | "not_equals" | "not_regex"
	Value string `yaml:"value"`
}

type RawMatchConfig struct {
	ProcessName *RawMatchPredicate `yaml:"process_name"`
	ClassName   *RawMatchPredicate `yaml:"class_name"`
	Title       *RawMatchPredicate `yaml:"title"`
}

type RawWindowRule struct {
	Match    []RawMatchConfig `yaml:"match"`
	Commands []string         `yaml:"commands"`
	On       []string         `yaml:"on"` // "manage" | "focus" | "title_change"
	RunOnce  *bool            `yaml:"run_once"`
}

type RawKeybinding struct {
	Bindings []string `yaml:"bindings"`
	Commands []string `yaml:"commands"`
}

type RawBindingMode struct {
	Name     string          `yaml:"name"`
	Bindings []RawKeybinding `yaml:"bindings"`
}

// RawConfig mirrors the YAML document shape exactly, every field
// optional so the loader can distinguish "absent" from "zero" while
// layering defaults in effective.go.
type RawConfig struct {
	Gaps            *RawGapsConfig          `yaml:"gaps"`
	General         *RawGeneralConfig       `yaml:"general"`
	WindowBehavior  *RawWindowBehaviorConfig `yaml:"window_behavior"`
	WindowEffects   *RawWindowEffectsConfig `yaml:"window_effects"`
	Workspaces      []RawWorkspaceConfig    `yaml:"workspaces"`
	WindowRules     []RawWindowRule         `yaml:"window_rules"`
	Keybindings     []RawKeybinding         `yaml:"keybindings"`
	BindingModes    []RawBindingMode        `yaml:"binding_modes"`
}
