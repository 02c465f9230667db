//go:build linux

package x11adapter

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/platform"
)

// Backend implements platform.Backend on top of an open X11 Connection.
type Backend struct {
	conn *Connection
}

var _ platform.Backend = (*Backend)(nil)

// New wraps an existing connection behind platform.Backend.
func New(conn *Connection) *Backend {
	return &Backend{conn: conn}
}

// XUtil exposes the underlying xgbutil connection for packages (hotkeys)
// that need to register directly against it rather than through
// platform.Backend.
func (b *Backend) XUtil() *xgbutil.XUtil {
	return b.conn.XUtil
}

// RootWindow returns the X root window hotkeys are grabbed against.
func (b *Backend) RootWindow() xproto.Window {
	return b.conn.Root
}

func (b *Backend) ForegroundWindow() (platform.Handle, error) {
	w, err := ewmh.ActiveWindowGet(b.conn.XUtil)
	if err != nil {
		return 0, fmt.Errorf("x11adapter: active window: %w", err)
	}
	return platform.Handle(w), nil
}

func (b *Backend) DesktopWindow() (platform.Handle, error) {
	return platform.Handle(b.conn.Root), nil
}

func (b *Backend) SetForeground(h platform.Handle) error {
	return ewmh.ActiveWindowReq(b.conn.XUtil, xproto.Window(h))
}

func (b *Backend) MousePosition() (platform.Point, error) {
	pointer, err := xproto.QueryPointer(b.conn.XUtil.Conn(), b.conn.Root).Reply()
	if err != nil {
		return platform.Point{}, fmt.Errorf("x11adapter: query pointer: %w", err)
	}
	return platform.Point{X: int(pointer.RootX), Y: int(pointer.RootY)}, nil
}

func (b *Backend) SetCursorPos(p platform.Point) error {
	return xproto.WarpPointerChecked(b.conn.XUtil.Conn(), 0, b.conn.Root, 0, 0, 0, 0, int16(p.X), int16(p.Y)).Check()
}

func (b *Backend) RefreshWindowInfo(h platform.Handle) (platform.WindowInfo, error) {
	win := xproto.Window(h)
	info := platform.WindowInfo{Handle: h, Manageable: true}

	if title, err := ewmh.WmNameGet(b.conn.XUtil, win); err == nil {
		info.Title = title
	} else if title, err := icccm.WmNameGet(b.conn.XUtil, win); err == nil {
		info.Title = title
	}

	if class, err := icccm.WmClassGet(b.conn.XUtil, win); err == nil {
		info.ClassName = class.Class
	}

	if pid, err := ewmh.WmPidGet(b.conn.XUtil, win); err == nil {
		info.ProcessName = fmt.Sprintf("%d", pid)
	}

	geom, err := xproto.GetGeometry(b.conn.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err == nil {
		translate, terr := xproto.TranslateCoordinates(b.conn.XUtil.Conn(), win, b.conn.Root, 0, 0).Reply()
		if terr == nil {
			info.Frame = geometry.Rect{
				X:      int(translate.DstX),
				Y:      int(translate.DstY),
				Width:  int(geom.Width),
				Height: int(geom.Height),
			}
		}
	}

	if states, err := ewmh.WmStateGet(b.conn.XUtil, win); err == nil {
		for _, s := range states {
			switch s {
			case "_NET_WM_STATE_HIDDEN":
				info.IsMinimized = true
			case "_NET_WM_STATE_MAXIMIZED_HORZ", "_NET_WM_STATE_MAXIMIZED_VERT":
				info.IsMaximized = true
			}
		}
	}

	if types, err := ewmh.WmWindowTypeGet(b.conn.XUtil, win); err == nil {
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DESKTOP" || t == "_NET_WM_WINDOW_TYPE_DOCK" ||
				t == "_NET_WM_WINDOW_TYPE_SPLASH" || t == "_NET_WM_WINDOW_TYPE_NOTIFICATION" {
				info.Manageable = false
			}
		}
	}

	return info, nil
}

func (b *Backend) IsFullscreen(h platform.Handle, monitorRect geometry.Rect) (bool, error) {
	info, err := b.RefreshWindowInfo(h)
	if err != nil {
		return false, err
	}
	return info.Frame == monitorRect, nil
}

func (b *Backend) SetPosition(h platform.Handle, state platform.DisplayStateWire, rect geometry.Rect, visible bool, hasPendingDPIAdjustment bool) error {
	win := xproto.Window(h)

	if !visible {
		return xproto.UnmapWindowChecked(b.conn.XUtil.Conn(), win).Check()
	}

	if err := ewmh.MoveresizeWindow(b.conn.XUtil, win, rect.X, rect.Y, rect.Width, rect.Height); err != nil {
		xwindow.New(b.conn.XUtil, win).MoveResize(rect.X, rect.Y, rect.Width, rect.Height)
	}
	return xproto.MapWindowChecked(b.conn.XUtil.Conn(), win).Check()
}

func (b *Backend) SetBorderColor(h platform.Handle, color *geometry.Color) error {
	win := xproto.Window(h)
	if color == nil {
		return xproto.ChangeWindowAttributesChecked(b.conn.XUtil.Conn(), win, 0, nil).Check()
	}
	pixel := uint32(color.R)<<16 | uint32(color.G)<<8 | uint32(color.B)
	return xproto.ChangeWindowAttributesChecked(
		b.conn.XUtil.Conn(), win, xproto.CwBorderPixel, []uint32{pixel},
	).Check()
}

func (b *Backend) Close(h platform.Handle) error {
	return ewmh.CloseWindow(b.conn.XUtil, xproto.Window(h))
}

func (b *Backend) Minimize(h platform.Handle) error {
	return ewmh.WmStateReq(b.conn.XUtil, xproto.Window(h), 1, "_NET_WM_STATE_HIDDEN")
}
