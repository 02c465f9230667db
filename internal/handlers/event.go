// Package handlers implements the platform-event handlers. Every handler
// is side-effect-free on the platform: it mutates only the tree and
// pending-sync, leaving the actual window repositioning to reconcile.
package handlers

import (
	"github.com/1broseidon/tilewm/internal/geometry"
	"github.com/1broseidon/tilewm/internal/platform"
)

// Kind discriminates the platform event union.
type Kind int

const (
	KindWindowShown Kind = iota
	KindWindowLocationChanged
	KindWindowMovedOrResizedStart
	KindWindowMovedOrResizedEnd
	KindWindowFocused
	KindWindowMinimized
	KindWindowMinimizeEnded
	KindWindowDestroyed
	KindWindowHidden
	KindDisplaySettingsChanged
	KindKeybindingTriggered
)

// Event is one platform notification. Only the fields relevant to Kind
// are meaningful.
type Event struct {
	Kind   Kind
	Handle platform.Handle

	// WindowLocationChanged
	Frame       geometry.Rect
	IsMinimized bool
	IsMaximized bool

	// KeybindingTriggered: the command batch bound to the key sequence
	// that fired, run against the currently focused container.
	Commands []string
}
