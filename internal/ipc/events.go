package ipc

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// EventKind enumerates the outbound event stream.
type EventKind string

const (
	EventFocusChanged          EventKind = "FocusChanged"
	EventWorkspaceActivated    EventKind = "WorkspaceActivated"
	EventWorkspaceDeactivated  EventKind = "WorkspaceDeactivated"
	EventWorkspaceUpdated      EventKind = "WorkspaceUpdated"
	EventWindowManaged         EventKind = "WindowManaged"
	EventWindowUnmanaged       EventKind = "WindowUnmanaged"
	EventTilingDirectionChanged EventKind = "TilingDirectionChanged"
	EventUserConfigChanged     EventKind = "UserConfigChanged"
	EventBindingModesChanged   EventKind = "BindingModesChanged"
)

// Event is one outbound notification. Container is populated for the
// events that carry a container snapshot; WorkspaceName for the
// workspace-lifecycle events which may fire before/after a container
// exists.
type Event struct {
	Kind          EventKind     `json:"kind"`
	Container     *ContainerDto `json:"container,omitempty"`
	WorkspaceName string        `json:"workspace_name,omitempty"`
}

// Sink is anything that can publish outbound events; the reconciler and
// command dispatcher depend only on this, not on a concrete transport.
type Sink interface {
	Publish(Event)
}

// Broadcaster fans out published events to every subscribed channel, a
// push (event) stream rather than request/response.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[chan Event]struct{}
	logger      *slog.Logger
}

// NewBroadcaster returns an empty event hub.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{subscribers: make(map[chan Event]struct{}), logger: logger}
}

// Subscribe registers a new buffered channel that receives every future
// published event. Call Unsubscribe when the client disconnects.
func (b *Broadcaster) Subscribe() chan Event {
	ch := make(chan Event, 64)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes ch.
func (b *Broadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish fans evt out to every subscriber; a slow subscriber whose
// buffer is full has the event dropped for it rather than blocking the
// reconciler (the core's single-threaded loop must never stall on IPC).
func (b *Broadcaster) Publish(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subscribers {
		select {
		case ch <- evt:
		default:
			b.logger.Warn("ipc: subscriber channel full, dropping event", "kind", evt.Kind)
		}
	}
}

// Marshal serializes an event as a single JSON line for the socket
// wire format.
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
