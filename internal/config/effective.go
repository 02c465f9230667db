package config

import (
	"fmt"
	"regexp"

	"github.com/1broseidon/tilewm/internal/geometry"
)

// BuildEffectiveConfig merges raw onto DefaultConfig(): every raw field
// is optional and, where present, overwrites the corresponding default
// field.
func BuildEffectiveConfig(raw RawConfig) (*Config, error) {
	cfg := DefaultConfig()

	if raw.Gaps != nil {
		if raw.Gaps.ScaleWithDPI != nil {
			cfg.Gaps.ScaleWithDPI = *raw.Gaps.ScaleWithDPI
		}
		if raw.Gaps.InnerGap != nil {
			cfg.Gaps.InnerGap = resolveLengthValue(*raw.Gaps.InnerGap)
		}
		if raw.Gaps.OuterGap != nil {
			cfg.Gaps.OuterGap = mergeRectDelta(cfg.Gaps.OuterGap, *raw.Gaps.OuterGap)
		}
	}

	if raw.General != nil {
		g := raw.General
		if g.CursorJump != nil {
			if g.CursorJump.Enabled != nil {
				cfg.General.CursorJumpEnabled = *g.CursorJump.Enabled
			}
			if g.CursorJump.Trigger != nil {
				trigger, err := parseCursorJumpTrigger(*g.CursorJump.Trigger)
				if err != nil {
					return nil, fmt.Errorf("config: general.cursor_jump.trigger: %w", err)
				}
				cfg.General.CursorJumpTrigger = trigger
			}
		}
		if g.FocusFollowsCursor != nil {
			cfg.General.FocusFollowsCursor = *g.FocusFollowsCursor
		}
		if g.ToggleWorkspaceOnRefocus != nil {
			cfg.General.ToggleWorkspaceOnRefocus = *g.ToggleWorkspaceOnRefocus
		}
		if g.HideMethod != nil {
			method, err := parseHideMethod(*g.HideMethod)
			if err != nil {
				return nil, fmt.Errorf("config: general.hide_method: %w", err)
			}
			cfg.General.HideMethod = method
		}
	}

	if raw.WindowBehavior != nil {
		wb := raw.WindowBehavior
		if wb.InitialState != nil {
			state, err := parseInitialState(*wb.InitialState)
			if err != nil {
				return nil, fmt.Errorf("config: window_behavior.initial_state: %w", err)
			}
			cfg.WindowBehavior.InitialState = state
		}
		if wb.StateDefaults != nil {
			cfg.WindowBehavior.StateDefaults.Centered = derefBool(wb.StateDefaults.Centered, cfg.WindowBehavior.StateDefaults.Centered)
			cfg.WindowBehavior.StateDefaults.ShownOnTop = derefBool(wb.StateDefaults.ShownOnTop, cfg.WindowBehavior.StateDefaults.ShownOnTop)
			cfg.WindowBehavior.StateDefaults.Maximized = derefBool(wb.StateDefaults.Maximized, cfg.WindowBehavior.StateDefaults.Maximized)
		}
	}

	if raw.WindowEffects != nil {
		if raw.WindowEffects.FocusedWindow != nil {
			group, err := mergeEffectGroup(cfg.WindowEffects.FocusedWindow, *raw.WindowEffects.FocusedWindow)
			if err != nil {
				return nil, fmt.Errorf("config: window_effects.focused_window: %w", err)
			}
			cfg.WindowEffects.FocusedWindow = group
		}
		if raw.WindowEffects.OtherWindows != nil {
			group, err := mergeEffectGroup(cfg.WindowEffects.OtherWindows, *raw.WindowEffects.OtherWindows)
			if err != nil {
				return nil, fmt.Errorf("config: window_effects.other_windows: %w", err)
			}
			cfg.WindowEffects.OtherWindows = group
		}
	}

	if raw.Workspaces != nil {
		workspaces := make([]WorkspaceConfig, 0, len(raw.Workspaces))
		for i, w := range raw.Workspaces {
			if w.Name == "" {
				return nil, fmt.Errorf("config: workspaces[%d]: name is required", i)
			}
			workspaces = append(workspaces, WorkspaceConfig{
				Name:          w.Name,
				DisplayName:   derefString(w.DisplayName, w.Name),
				BindToMonitor: w.BindToMonitor,
				KeepAlive:     derefBool(w.KeepAlive, false),
			})
		}
		cfg.Workspaces = workspaces
	}

	rules := make([]WindowRule, 0, len(raw.WindowRules))
	for i, r := range raw.WindowRules {
		rule, err := resolveWindowRule(r)
		if err != nil {
			return nil, fmt.Errorf("config: window_rules[%d]: %w", i, err)
		}
		rules = append(rules, rule)
	}
	cfg.WindowRules = rules

	keybindings := make([]Keybinding, 0, len(raw.Keybindings))
	for _, k := range raw.Keybindings {
		keybindings = append(keybindings, Keybinding{Bindings: k.Bindings, Commands: k.Commands})
	}
	cfg.Keybindings = keybindings

	modes := make([]BindingMode, 0, len(raw.BindingModes))
	for _, m := range raw.BindingModes {
		mode := BindingMode{Name: m.Name}
		for _, b := range m.Bindings {
			mode.Bindings = append(mode.Bindings, Keybinding{Bindings: b.Bindings, Commands: b.Commands})
		}
		modes = append(modes, mode)
	}
	cfg.BindingModes = modes

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveLengthValue(raw RawLengthValue) geometry.LengthValue {
	if raw.Unit == "percent" {
		return geometry.FromPercent(raw.Amount)
	}
	return geometry.LengthValue{Amount: raw.Amount, Unit: geometry.UnitPixels}
}

func mergeRectDelta(base geometry.RectDelta, raw RawRectDelta) geometry.RectDelta {
	if raw.Left != nil {
		base.Left = resolveLengthValue(*raw.Left)
	}
	if raw.Top != nil {
		base.Top = resolveLengthValue(*raw.Top)
	}
	if raw.Right != nil {
		base.Right = resolveLengthValue(*raw.Right)
	}
	if raw.Bottom != nil {
		base.Bottom = resolveLengthValue(*raw.Bottom)
	}
	return base
}

func mergeEffectGroup(base WindowEffectGroup, raw RawWindowEffectGroup) (WindowEffectGroup, error) {
	if raw.Border != nil {
		if raw.Border.Enabled != nil {
			base.BorderEnabled = *raw.Border.Enabled
		}
		if raw.Border.Color != nil {
			color, err := parseColor(*raw.Border.Color)
			if err != nil {
				return base, err
			}
			base.BorderColor = color
		}
		if raw.Border.HideTitleBar != nil {
			base.HideTitleBar = *raw.Border.HideTitleBar
		}
		if raw.Border.CornerStyle != nil {
			base.CornerStyle = *raw.Border.CornerStyle
		}
	}
	if raw.HideTitleBar != nil {
		base.HideTitleBar = *raw.HideTitleBar
	}
	if raw.CornerStyle != nil {
		base.CornerStyle = *raw.CornerStyle
	}
	return base, nil
}

func resolveWindowRule(raw RawWindowRule) (WindowRule, error) {
	rule := WindowRule{
		Commands: raw.Commands,
		RunOnce:  derefBool(raw.RunOnce, false),
	}

	for _, m := range raw.Match {
		match, err := resolveMatchConfig(m)
		if err != nil {
			return rule, err
		}
		rule.Match = append(rule.Match, match)
	}

	for _, on := range raw.On {
		trigger, err := parseRuleTrigger(on)
		if err != nil {
			return rule, err
		}
		rule.On = append(rule.On, trigger)
	}
	if len(rule.On) == 0 {
		rule.On = []RuleTrigger{RuleOnManage}
	}

	return rule, nil
}

func resolveMatchConfig(raw RawMatchConfig) (MatchConfig, error) {
	var match MatchConfig
	var err error
	if raw.ProcessName != nil {
		if match.ProcessName, err = resolveMatchPredicate(*raw.ProcessName); err != nil {
			return match, fmt.Errorf("process_name: %w", err)
		}
	}
	if raw.ClassName != nil {
		if match.ClassName, err = resolveMatchPredicate(*raw.ClassName); err != nil {
			return match, fmt.Errorf("class_name: %w", err)
		}
	}
	if raw.Title != nil {
		if match.Title, err = resolveMatchPredicate(*raw.Title); err != nil {
			return match, fmt.Errorf("title: %w", err)
		}
	}
	return match, nil
}

func resolveMatchPredicate(raw RawMatchPredicate) (*MatchPredicate, error) {
	op, err := parseMatchOp(raw.Op)
	if err != nil {
		return nil, err
	}
	if op == MatchRegex || op == MatchNotRegex {
		if _, err := regexp.Compile(raw.Value); err != nil {
			// An invalid regex compiles to an always-false matcher
			// rather than aborting config load.
			return &MatchPredicate{Op: op, Value: ""}, nil
		}
	}
	return &MatchPredicate{Op: op, Value: raw.Value}, nil
}

func parseCursorJumpTrigger(s string) (CursorJumpTrigger, error) {
	switch s {
	case "monitor_focus":
		return CursorJumpMonitorFocus, nil
	case "window_focus":
		return CursorJumpWindowFocus, nil
	default:
		return 0, fmt.Errorf("unrecognized trigger %q", s)
	}
}

func parseHideMethod(s string) (HideMethod, error) {
	switch s {
	case "hide":
		return HideMethodHide, nil
	case "cloak":
		return HideMethodCloak, nil
	default:
		return 0, fmt.Errorf("unrecognized hide_method %q", s)
	}
}

func parseInitialState(s string) (InitialState, error) {
	switch s {
	case "tiling":
		return InitialStateTiling, nil
	case "floating":
		return InitialStateFloating, nil
	default:
		return 0, fmt.Errorf("unrecognized initial_state %q", s)
	}
}

func parseRuleTrigger(s string) (RuleTrigger, error) {
	switch s {
	case "manage", "Manage":
		return RuleOnManage, nil
	case "focus", "Focus":
		return RuleOnFocus, nil
	case "title_change", "TitleChange":
		return RuleOnTitleChange, nil
	default:
		return 0, fmt.Errorf("unrecognized rule trigger %q", s)
	}
}

func parseMatchOp(s string) (MatchOp, error) {
	switch s {
	case "equals", "":
		return MatchEquals, nil
	case "includes":
		return MatchIncludes, nil
	case "regex":
		return MatchRegex, nil
	case "not_equals":
		return MatchNotEquals, nil
	case "not_regex":
		return MatchNotRegex, nil
	default:
		return 0, fmt.Errorf("unrecognized match op %q", s)
	}
}

func parseColor(s string) (geometry.Color, error) {
	var r, g, b, a uint8
	a = 0xff
	n, err := fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	if err == nil && n == 4 {
		return geometry.Color{R: r, G: g, B: b, A: a}, nil
	}
	n, err = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	if err != nil || n != 3 {
		return geometry.Color{}, fmt.Errorf("invalid color %q, want #RRGGBB or #RRGGBBAA", s)
	}
	return geometry.Color{R: r, G: g, B: b, A: 0xff}, nil
}

// Validate checks structural constraints BuildEffectiveConfig cannot
// enforce field-by-field: workspace name uniqueness. bind_to_monitor
// bounds are checked by the caller that knows the monitor count.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Workspaces))
	for _, w := range c.Workspaces {
		if seen[w.Name] {
			return fmt.Errorf("config: duplicate workspace name %q", w.Name)
		}
		seen[w.Name] = true
	}
	return nil
}
