// Package hotkeys registers global keybindings against the X server and
// turns each fired key sequence into a KeybindingTriggered platform
// event, posted to the core's event queue.
package hotkeys

import (
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"
	"github.com/BurntSushi/xgbutil/xevent"

	"github.com/1broseidon/tilewm/internal/config"
	"github.com/1broseidon/tilewm/internal/handlers"
	"github.com/1broseidon/tilewm/internal/platform"
)

// x11Accessor is implemented by platform.Backend implementations that
// expose their underlying X11 connection for direct keybind registration.
type x11Accessor interface {
	XUtil() *xgbutil.XUtil
	RootWindow() xproto.Window
}

// Handler owns the set of registered global keybindings.
type Handler struct {
	xu     *xgbutil.XUtil
	root   xproto.Window
	events chan<- handlers.Event
}

var ignoreModsOnce sync.Once

// NewHandler builds a Handler against backend's X11 connection. Events
// fired by registered keybindings are sent to events; the caller's main
// loop is responsible for draining that channel and calling
// handlers.Dispatch.
func NewHandler(backend platform.Backend, events chan<- handlers.Event) *Handler {
	var xu *xgbutil.XUtil
	var root xproto.Window
	if accessor, ok := backend.(x11Accessor); ok {
		xu = accessor.XUtil()
		root = accessor.RootWindow()
	}

	ignoreModsOnce.Do(func() {
		configureIgnoreMods(xu)
	})

	return &Handler{xu: xu, root: root, events: events}
}

// RegisterAll registers every top-level keybinding in cfg. Binding modes
// are registered alongside the default set rather than gated behind an
// activation command, since the closed command enumeration has no
// switch-binding-mode member yet; BindingModesChanged is emitted only
// when that changes.
func (h *Handler) RegisterAll(cfg *config.Config) error {
	for _, kb := range cfg.Keybindings {
		if err := h.register(kb); err != nil {
			return err
		}
	}
	for _, mode := range cfg.BindingModes {
		for _, kb := range mode.Bindings {
			if err := h.register(kb); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *Handler) register(kb config.Keybinding) error {
	for _, sequence := range kb.Bindings {
		commands := kb.Commands
		if err := h.registerFunc(sequence, func() {
			h.events <- handlers.Event{Kind: handlers.KindKeybindingTriggered, Commands: commands}
		}); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) registerFunc(keySequence string, callback func()) error {
	return keybind.KeyPressFun(func(xu *xgbutil.XUtil, ev xevent.KeyPressEvent) {
		callback()
	}).Connect(h.xu, h.root, keySequence, true)
}

// configureIgnoreMods tells xgbutil/keybind to treat CapsLock/NumLock/
// ScrollLock as don't-care modifiers, so a binding registered as "Mod4-j"
// still fires with any combination of those locks held.
func configureIgnoreMods(xu *xgbutil.XUtil) {
	caps := uint16(xproto.ModMaskLock)
	numLock := modMaskForKeysym(xu, "Num_Lock")
	scrollLock := modMaskForKeysym(xu, "Scroll_Lock")

	base := []uint16{caps}
	if numLock != 0 && numLock != caps {
		base = append(base, numLock)
	}
	if scrollLock != 0 && scrollLock != caps && scrollLock != numLock {
		base = append(base, scrollLock)
	}

	unique := make(map[uint16]struct{})
	for subset := 0; subset < (1 << len(base)); subset++ {
		var mask uint16
		for bit := range base {
			if subset&(1<<bit) != 0 {
				mask |= base[bit]
			}
		}
		unique[mask] = struct{}{}
	}

	ignore := make([]uint16, 0, len(unique))
	for mask := range unique {
		ignore = append(ignore, mask)
	}
	xevent.IgnoreMods = ignore
}

func modMaskForKeysym(xu *xgbutil.XUtil, keysym string) uint16 {
	if xu == nil {
		return 0
	}
	for _, keycode := range keybind.StrToKeycodes(xu, keysym) {
		if mask := keybind.ModGet(xu, keycode); mask != 0 {
			return mask
		}
	}
	return 0
}
