package events

import (
	"context"
	"errors"
	"testing"

	"aiconsult_backend/platform/logger"
)

type pingEvent struct{ BaseEvent }

func (pingEvent) EventName() string { return "test.ping" }

func TestPublishSyncRunsHandlersInOrderAndJoinsErrors(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	var order []string
	errFirst := errors.New("first failed")

	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error {
		order = append(order, "first")
		return errFirst
	}))
	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error {
		order = append(order, "second")
		return nil
	}))
	bus.Subscribe("test.other", HandlerFunc(func(context.Context, Event) error {
		order = append(order, "other")
		return nil
	}))

	err := bus.PublishSync(context.Background(), pingEvent{NewBaseEvent()})
	if !errors.Is(err, errFirst) {
		t.Fatalf("expected joined error to contain first handler error, got %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("unexpected handler order %v", order)
	}
}

func TestPublishSyncRecoversPanics(t *testing.T) {
	bus := NewInMemoryBus(logger.Discard())
	bus.Subscribe("test.ping", HandlerFunc(func(context.Context, Event) error {
		panic("boom")
	}))

	if err := bus.PublishSync(context.Background(), pingEvent{NewBaseEvent()}); err == nil {
		t.Fatalf("expected panic to surface as an error")
	}
}
