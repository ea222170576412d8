package events

import (
	"encoding/json"
	"time"
)

// Actions carried by expense events.
const (
	ActionSaved   = "expense.saved"
	ActionDeleted = "expense.deleted"
)

// ExpenseEvent announces a ledger mutation to downstream consumers. It
// carries only the id and action; consumers interested in the record itself
// read the store.
type ExpenseEvent struct {
	Action    string    `json:"action"`
	ExpenseID string    `json:"expense_id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewExpenseEvent(action, expenseID string) *ExpenseEvent {
	return &ExpenseEvent{
		Action:    action,
		ExpenseID: expenseID,
		Timestamp: time.Now(),
	}
}

func (e *ExpenseEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func ExpenseEventFromJSON(data []byte) (*ExpenseEvent, error) {
	var e ExpenseEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
