//go:build linux

package x11adapter

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/handlers"
	"github.com/1broseidon/tilewm/internal/platform"
)

// WatchRoot selects SubstructureNotify and PropertyChange on the root
// window and connects the xevent callbacks that translate X11
// notifications into platform events, posted to events. It never issues
// SubstructureRedirect: another window manager still owns map/configure
// requests, and tilewmd reacts to what it announces rather than
// intercepting it.
func (b *Backend) WatchRoot(events chan<- handlers.Event) error {
	root := b.conn.Root
	xu := b.conn.XUtil

	if err := xproto.ChangeWindowAttributesChecked(
		xu.Conn(), root, xproto.CwEventMask,
		[]uint32{xproto.EventMaskSubstructureNotify | xproto.EventMaskPropertyChange},
	).Check(); err != nil {
		return err
	}

	xevent.MapNotifyFun(func(xu *xgbutil.XUtil, ev xevent.MapNotifyEvent) {
		if ev.Event != root || ev.OverrideRedirect {
			return
		}
		events <- handlers.Event{Kind: handlers.KindWindowShown, Handle: platform.Handle(ev.Window)}
	}).Connect(xu, root)

	xevent.UnmapNotifyFun(func(xu *xgbutil.XUtil, ev xevent.UnmapNotifyEvent) {
		if ev.Event != root {
			return
		}
		events <- handlers.Event{Kind: handlers.KindWindowHidden, Handle: platform.Handle(ev.Window)}
	}).Connect(xu, root)

	xevent.DestroyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.DestroyNotifyEvent) {
		if ev.Event != root {
			return
		}
		events <- handlers.Event{Kind: handlers.KindWindowDestroyed, Handle: platform.Handle(ev.Window)}
	}).Connect(xu, root)

	xevent.ConfigureNotifyFun(func(xu *xgbutil.XUtil, ev xevent.ConfigureNotifyEvent) {
		if ev.Event != root || ev.Window == root {
			return
		}
		events <- handlers.Event{
			Kind:   handlers.KindWindowLocationChanged,
			Handle: platform.Handle(ev.Window),
			Frame: geometry.Rect{
				X:      int(ev.X),
				Y:      int(ev.Y),
				Width:  int(ev.Width),
				Height: int(ev.Height),
			},
		}
	}).Connect(xu, root)

	activeWindowAtom, err := xprop.Atm(xu, "_NET_ACTIVE_WINDOW")
	if err != nil {
		return err
	}
	xevent.PropertyNotifyFun(func(xu *xgbutil.XUtil, ev xevent.PropertyNotifyEvent) {
		if ev.Window != root || ev.Atom != activeWindowAtom {
			return
		}
		active, err := ewmh.ActiveWindowGet(xu)
		if err != nil || active == 0 {
			return
		}
		events <- handlers.Event{Kind: handlers.KindWindowFocused, Handle: platform.Handle(active)}
	}).Connect(xu, root)

	return nil
}
