package ipc

import (
	"io"
	"log/slog"
	"testing"
)

func newTestBroadcaster() *Broadcaster {
	return NewBroadcaster(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBroadcasterDeliversToSubscriber(t *testing.T) {
	b := newTestBroadcaster()
	ch := b.Subscribe()

	b.Publish(Event{Kind: EventFocusChanged})

	select {
	case evt := <-ch:
		if evt.Kind != EventFocusChanged {
			t.Fatalf("Kind = %v, want EventFocusChanged", evt.Kind)
		}
	default:
		t.Fatal("subscriber received nothing, want the published event")
	}
}

func TestBroadcasterFansOutToEverySubscriber(t *testing.T) {
	b := newTestBroadcaster()
	ch1 := b.Subscribe()
	ch2 := b.Subscribe()

	b.Publish(Event{Kind: EventWindowManaged})

	for i, ch := range []chan Event{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Fatalf("subscriber %d received nothing, want the published event", i)
		}
	}
}

func TestBroadcasterUnsubscribeStopsDeliveryAndClosesChannel(t *testing.T) {
	b := newTestBroadcaster()
	ch := b.Subscribe()
	b.Unsubscribe(ch)

	b.Publish(Event{Kind: EventWindowUnmanaged})

	evt, ok := <-ch
	if ok {
		t.Fatalf("channel still open and yielded %+v, want closed", evt)
	}
}

func TestBroadcasterDropsEventWhenSubscriberBufferFull(t *testing.T) {
	b := newTestBroadcaster()
	ch := b.Subscribe()

	for i := 0; i < 100; i++ {
		b.Publish(Event{Kind: EventFocusChanged})
	}

	if len(ch) == 0 {
		t.Fatal("buffer is empty, want it filled up to capacity")
	}
}

func TestEventMarshalIncludesContainer(t *testing.T) {
	dto := ContainerDto{ID: 1, Kind: "Workspace", Name: "1"}
	data, err := Event{Kind: EventWorkspaceActivated, Container: &dto}.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal returned empty data")
	}
}
