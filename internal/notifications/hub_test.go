package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublishSubscribe проверяет доставку событий подписчику.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	defer unsubscribe()

	hub.Publish(userID, Event{Type: EventGoalUpdated, Data: GoalEventData{Name: "vacation"}})

	select {
	case event := <-ch:
		if event.Type != EventGoalUpdated {
			t.Fatalf("expected %s, got %s", EventGoalUpdated, event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

// TestHubUnsubscribe проверяет закрытие канала после отписки.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	userID := uuid.New()

	ch, unsubscribe := hub.Subscribe(userID)
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
}

// TestHubIsolation проверяет, что события не утекают другим пользователям.
func TestHubIsolation(t *testing.T) {
	hub := NewHub()
	first := uuid.New()
	second := uuid.New()

	ch, unsubscribe := hub.Subscribe(first)
	defer unsubscribe()

	hub.Publish(second, Event{Type: EventGoalCreated})

	select {
	case event := <-ch:
		t.Fatalf("unexpected event for another user: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}
