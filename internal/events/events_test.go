package events

import (
	"context"
	"testing"
	"time"
)

func TestNewTransactionEvent(t *testing.T) {
	ev := NewTransactionEvent(ActionCreated, "user-1", "tx-42")

	if ev.Action != ActionCreated {
		t.Errorf("NewTransactionEvent() Action = %v, want %v", ev.Action, ActionCreated)
	}
	if ev.UserID != "user-1" {
		t.Errorf("NewTransactionEvent() UserID = %v, want user-1", ev.UserID)
	}
	if ev.TransactionID != "tx-42" {
		t.Errorf("NewTransactionEvent() TransactionID = %v, want tx-42", ev.TransactionID)
	}
	if ev.Timestamp.IsZero() {
		t.Error("NewTransactionEvent() Timestamp should not be zero")
	}
	if time.Since(ev.Timestamp) > time.Second {
		t.Error("NewTransactionEvent() Timestamp should be recent")
	}
}

func TestTransactionEvent_JSON(t *testing.T) {
	timestamp := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	ev := &TransactionEvent{
		Action:        ActionDeleted,
		UserID:        "user-1",
		TransactionID: "tx-42",
		Timestamp:     timestamp,
	}

	data, err := ev.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := TransactionEventFromJSON(data)
	if err != nil {
		t.Fatalf("TransactionEventFromJSON() error = %v", err)
	}

	if parsed.Action != ev.Action {
		t.Errorf("Parsed Action = %v, want %v", parsed.Action, ev.Action)
	}
	if parsed.UserID != ev.UserID {
		t.Errorf("Parsed UserID = %v, want %v", parsed.UserID, ev.UserID)
	}
	if parsed.TransactionID != ev.TransactionID {
		t.Errorf("Parsed TransactionID = %v, want %v", parsed.TransactionID, ev.TransactionID)
	}
	if !parsed.Timestamp.Equal(ev.Timestamp) {
		t.Errorf("Parsed Timestamp = %v, want %v", parsed.Timestamp, ev.Timestamp)
	}
}

func TestTransactionEvent_InvalidJSON(t *testing.T) {
	invalidJSON := []byte(`{"action": 7, "user_id": "user-1"}`)

	_, err := TransactionEventFromJSON(invalidJSON)
	if err == nil {
		t.Error("TransactionEventFromJSON() should fail with invalid JSON")
	}
}

func TestNilPublisher(t *testing.T) {
	// A nil publisher is the broker-less configuration; every method
	// must be a safe no-op so callers never branch on it.
	var p *Publisher

	if err := p.PublishTransactionEvent(context.Background(), ActionCreated, "user-1", "tx-42"); err != nil {
		t.Errorf("PublishTransactionEvent() on nil publisher = %v, want nil", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() on nil publisher = %v, want nil", err)
	}
}
