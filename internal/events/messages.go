package events

import (
	"encoding/json"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const TypeTransactionRecorded = "transaction.recorded"

// TransactionRecordedMessage is published once a transaction and its
// rollups are committed.
type TransactionRecordedMessage struct {
	Type            string                 `json:"type"`
	TransactionID   uuid.UUID              `json:"transactionId"`
	UserID          string                 `json:"userId"`
	Amount          decimal.Decimal        `json:"amount"`
	TransactionType models.TransactionType `json:"transactionType"`
	Category        string                 `json:"category"`
	Date            string                 `json:"date"`
	OccurredAt      time.Time              `json:"occurredAt"`
}

func NewTransactionRecordedMessage(t *models.Transaction, occurredAt time.Time) *TransactionRecordedMessage {
	return &TransactionRecordedMessage{
		Type:            TypeTransactionRecorded,
		TransactionID:   t.ID,
		UserID:          t.UserID,
		Amount:          t.Amount,
		TransactionType: t.Type,
		Category:        t.Category,
		Date:            t.Date.UTC().Format("2006-01-02"),
		OccurredAt:      occurredAt.UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedMessageFromJSON decodes a message body
func TransactionRecordedMessageFromJSON(data []byte) (*TransactionRecordedMessage, error) {
	var msg TransactionRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
