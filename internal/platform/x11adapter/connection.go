//go:build linux

// Package x11adapter implements platform.Backend on top of XGB/xgbutil.
package x11adapter

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"
)

// Connection owns the X11 connection and root window.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window
}

// NewConnection opens a connection to the X server and initializes the
// extensions the adapter needs (keybind for hotkeys, EWMH/RandR are
// lazily initialized by xgbutil on first use).
func NewConnection() (*Connection, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11adapter: connect: %w", err)
	}
	keybind.Initialize(xu)

	return &Connection{
		XUtil: xu,
		Root:  xu.RootWin(),
	}, nil
}

// EventLoop runs the blocking xgbutil event loop. Call from its own
// goroutine; delivered events are translated into platform events and
// posted to the core's queue by the handlers registered in
// internal/hotkeys and the adapter's own X event callbacks.
func (c *Connection) EventLoop() {
	xevent.Main(c.XUtil)
}

// Close disconnects from the X server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
