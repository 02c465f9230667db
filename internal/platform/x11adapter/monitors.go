//go:build linux

package x11adapter

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/platform"
)

// Monitors enumerates active CRTCs via RandR, translated into
// platform.Monitor values with a working rect derived from EWMH
// _NET_WORKAREA.
func (b *Backend) Monitors() ([]platform.Monitor, error) {
	if err := randr.Init(b.conn.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("x11adapter: randr init: %w", err)
	}

	resources, err := randr.GetScreenResources(b.conn.XUtil.Conn(), b.conn.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11adapter: get screen resources: %w", err)
	}

	workArea, _ := ewmh.WorkareaGet(b.conn.XUtil)

	var monitors []platform.Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(b.conn.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("monitor-%d", i)
		if out, err := randr.GetOutputInfo(b.conn.XUtil.Conn(), info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		rect := geometry.Rect{X: int(info.X), Y: int(info.Y), Width: int(info.Width), Height: int(info.Height)}
		working := rect
		if i < len(workArea) {
			wa := workArea[i]
			working = geometry.Rect{X: int(wa.X), Y: int(wa.Y), Width: int(wa.Width), Height: int(wa.Height)}
		}

		monitors = append(monitors, platform.Monitor{
			Handle:      platform.Handle(crtc),
			Rect:        rect,
			WorkingRect: working,
			DPI:         96,
			ScaleFactor: 1.0,
			DeviceName:  name,
			DevicePath:  name,
			HardwareID:  name,
		})
	}

	return monitors, nil
}
