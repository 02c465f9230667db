package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestBuildEffectiveConfigAppliesDefaults(t *testing.T) {
	cfg, err := BuildEffectiveConfig(RawConfig{})
	if err != nil {
		t.Fatalf("BuildEffectiveConfig: %v", err)
	}
	if cfg.General.HideMethod != HideMethodHide {
		t.Fatalf("default hide_method = %v, want HideMethodHide", cfg.General.HideMethod)
	}
	if len(cfg.Workspaces) != 1 || cfg.Workspaces[0].Name != "1" {
		t.Fatalf("default workspaces = %+v, want single workspace named 1", cfg.Workspaces)
	}
}

func TestBuildEffectiveConfigMergesGaps(t *testing.T) {
	raw := unmarshalRaw(t, `
gaps:
  inner_gap: "10"
  outer_gap:
    left: "5%"
    top: "0"
`)
	cfg, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig: %v", err)
	}
	if cfg.Gaps.InnerGap.Amount != 10 {
		t.Fatalf("inner_gap = %+v, want amount 10", cfg.Gaps.InnerGap)
	}
	if cfg.Gaps.OuterGap.Left.Amount != 5 || cfg.Gaps.OuterGap.Left.Unit != "percent" {
		t.Fatalf("outer_gap.left = %+v, want 5%%", cfg.Gaps.OuterGap.Left)
	}
}

func TestBuildEffectiveConfigRejectsDuplicateWorkspaceNames(t *testing.T) {
	raw := unmarshalRaw(t, `
workspaces:
  - name: "1"
  - name: "1"
`)
	if _, err := BuildEffectiveConfig(raw); err == nil {
		t.Fatal("expected error for duplicate workspace names")
	}
}

func TestResolveWindowRuleDefaultsOnToManage(t *testing.T) {
	raw := unmarshalRaw(t, `
window_rules:
  - match:
      - class_name:
          op: regex
          value: "^Chrome_.*"
    commands: ["set_floating"]
    run_once: true
`)
	cfg, err := BuildEffectiveConfig(raw)
	if err != nil {
		t.Fatalf("BuildEffectiveConfig: %v", err)
	}
	if len(cfg.WindowRules) != 1 {
		t.Fatalf("len(WindowRules) = %d, want 1", len(cfg.WindowRules))
	}
	rule := cfg.WindowRules[0]
	if len(rule.On) != 1 || rule.On[0] != RuleOnManage {
		t.Fatalf("rule.On = %+v, want [RuleOnManage]", rule.On)
	}
	if !rule.RunOnce {
		t.Fatal("rule.RunOnce = false, want true")
	}
	if rule.Match[0].ClassName == nil || rule.Match[0].ClassName.Op != MatchRegex {
		t.Fatalf("rule.Match[0].ClassName = %+v, want regex op", rule.Match[0].ClassName)
	}
}

func TestParseColorAcceptsAlpha(t *testing.T) {
	color, err := parseColor("#112233ff")
	if err != nil {
		t.Fatalf("parseColor: %v", err)
	}
	if color.R != 0x11 || color.G != 0x22 || color.B != 0x33 || color.A != 0xff {
		t.Fatalf("color = %+v", color)
	}
}

func unmarshalRaw(t *testing.T, doc string) RawConfig {
	t.Helper()
	var raw RawConfig
	if err := yaml.Unmarshal([]byte(doc), &raw); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}
	return raw
}
