// Package reconcile implements the pending-sync accumulator and the
// reconciliation pass that drains it.
package reconcile

import "github.com/1broseidon/tilewm/internal/wmtree"

// PendingSync accumulates dirtiness across one event's handler calls (or
// one command batch) for the reconciler to drain exactly once.
type PendingSync struct {
	containersToRedraw map[wmtree.ContainerID]struct{}
	focusChange        bool
	cursorJump         bool
	resetWindowEffects bool
}

// NewPendingSync returns an empty accumulator.
func NewPendingSync() *PendingSync {
	return &PendingSync{containersToRedraw: make(map[wmtree.ContainerID]struct{})}
}

// QueueRedraw marks containers dirty; deduped by id.
func (p *PendingSync) QueueRedraw(ids ...wmtree.ContainerID) {
	for _, id := range ids {
		p.containersToRedraw[id] = struct{}{}
	}
}

// SetFocusChange marks that focus moved this event.
func (p *PendingSync) SetFocusChange() { p.focusChange = true }

// SetCursorJump requests a cursor-jump check in the reconciler pass,
// subject to the configured trigger.
func (p *PendingSync) SetCursorJump() { p.cursorJump = true }

// SetResetWindowEffects requests effects be reapplied to every window,
// not just the previously-focused one (used by DisplaySettingsChanged).
func (p *PendingSync) SetResetWindowEffects() { p.resetWindowEffects = true }

// IsEmpty reports whether draining this pass would issue no platform
// calls at all.
func (p *PendingSync) IsEmpty() bool {
	return len(p.containersToRedraw) == 0 && !p.focusChange && !p.cursorJump && !p.resetWindowEffects
}

// redrawSet returns the queued container ids, order unspecified.
func (p *PendingSync) redrawSet() []wmtree.ContainerID {
	ids := make([]wmtree.ContainerID, 0, len(p.containersToRedraw))
	for id := range p.containersToRedraw {
		ids = append(ids, id)
	}
	return ids
}

// clear resets the accumulator after a reconciler pass.
func (p *PendingSync) clear() {
	p.containersToRedraw = make(map[wmtree.ContainerID]struct{})
	p.focusChange = false
	p.cursorJump = false
	p.resetWindowEffects = false
}
