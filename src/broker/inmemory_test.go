package broker

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestInMemoryPublishSubscribe(t *testing.T) {
	b := NewInMemoryBroker()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Subscribe(ctx, "test.topic", "test-group")
	if err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}

	if err := b.Publish(ctx, "test.topic", "run-1", []byte("payload")); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	select {
	case msg := <-ch:
		if msg.Topic != "test.topic" {
			t.Errorf("Topic = %q, expected %q", msg.Topic, "test.topic")
		}
		if msg.Key != "run-1" {
			t.Errorf("Key = %q, expected %q", msg.Key, "run-1")
		}
		if string(msg.Value) != "payload" {
			t.Errorf("Value = %q, expected %q", msg.Value, "payload")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
}

func TestInMemoryPreservesPublishOrder(t *testing.T) {
	b := NewInMemoryBroker()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := b.Subscribe(ctx, "ordered", "g")
	if err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}

	const n = 50
	for i := 0; i < n; i++ {
		if err := b.Publish(ctx, "ordered", "k", []byte(fmt.Sprintf("%d", i))); err != nil {
			t.Fatalf("Publish(%d) error: %v", i, err)
		}
	}

	for i := 0; i < n; i++ {
		select {
		case msg := <-ch:
			if want := fmt.Sprintf("%d", i); string(msg.Value) != want {
				t.Fatalf("message %d = %q, expected %q", i, msg.Value, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}
}

func TestInMemoryTopicsAreIsolated(t *testing.T) {
	b := NewInMemoryBroker()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chA, err := b.Subscribe(ctx, "topic.a", "g")
	if err != nil {
		t.Fatalf("Subscribe(a) error: %v", err)
	}
	if _, err := b.Subscribe(ctx, "topic.b", "g"); err != nil {
		t.Fatalf("Subscribe(b) error: %v", err)
	}

	if err := b.Publish(ctx, "topic.b", "k", []byte("for b")); err != nil {
		t.Fatalf("Publish() error: %v", err)
	}

	select {
	case msg := <-chA:
		t.Fatalf("topic.a received %q published to topic.b", msg.Value)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestInMemoryCloseClosesSubscribers(t *testing.T) {
	b := NewInMemoryBroker()

	ctx := context.Background()
	ch, err := b.Subscribe(ctx, "t", "g")
	if err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel, got a message")
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber channel not closed after broker Close()")
	}

	if err := b.Publish(ctx, "t", "k", []byte("x")); err == nil {
		t.Error("Publish() after Close() expected error, got nil")
	}
	if _, err := b.Subscribe(ctx, "t", "g"); err == nil {
		t.Error("Subscribe() after Close() expected error, got nil")
	}
}

func TestInMemoryCancelledSubscriberStopsReceiving(t *testing.T) {
	b := NewInMemoryBroker()
	defer b.Close()

	subCtx, subCancel := context.WithCancel(context.Background())
	ch, err := b.Subscribe(subCtx, "t", "g")
	if err != nil {
		t.Fatalf("Subscribe() error: %v", err)
	}

	subCancel()

	// The watcher closes the channel asynchronously.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("subscriber channel not closed after context cancellation")
		}
	}
}
