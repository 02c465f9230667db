package config

import "github.com/1broseidon/tilewm/internal/geometry"

// DefaultConfig returns the built-in configuration applied before any
// user YAML is merged on top, as a single constructor function rather
// than scattered zero values.
func DefaultConfig() *Config {
	return &Config{
		Gaps: GapsConfig{
			ScaleWithDPI: true,
			InnerGap:     geometry.FromPixels(0),
			OuterGap:     geometry.ZeroRectDelta(),
		},
		General: GeneralConfig{
			CursorJumpEnabled: false,
			CursorJumpTrigger: CursorJumpWindowFocus,
			FocusFollowsCursor: false,
			ToggleWorkspaceOnRefocus: false,
			HideMethod: HideMethodHide,
		},
		WindowBehavior: WindowBehaviorConfig{
			InitialState: InitialStateTiling,
		},
		WindowEffects: WindowEffectsConfig{
			FocusedWindow: WindowEffectGroup{
				BorderEnabled: true,
				BorderColor:   geometry.Color{R: 0x4f, G: 0x9c, B: 0xff, A: 0xff},
			},
			OtherWindows: WindowEffectGroup{
				BorderEnabled: true,
				BorderColor:   geometry.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
			},
		},
		Workspaces: []WorkspaceConfig{
			{Name: "1", KeepAlive: true},
		},
	}
}
