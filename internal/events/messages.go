package events

import (
	"encoding/json"
	"time"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// TransactionEvent announces a ledger mutation. It carries ids only;
// consumers fetch whatever detail they need themselves.
type TransactionEvent struct {
	Action        string    `json:"action"`
	UserID        string    `json:"user_id"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewTransactionEvent(action, userID, transactionID string) *TransactionEvent {
	return &TransactionEvent{
		Action:        action,
		UserID:        userID,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (e *TransactionEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func TransactionEventFromJSON(data []byte) (*TransactionEvent, error) {
	var ev TransactionEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
