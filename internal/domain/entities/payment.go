package entities

import "time"

// Payment settles exactly one service record. Payments are append-only.
//
// Storage model (DynamoDB):
//   - PK: payment_number
//   - GSI1 (record_number-index): record_number
type Payment struct {
	PaymentNumber  int64     `json:"payment_number"`
	RecordNumber   int64     `json:"record_number"`
	AmountPaid     float64   `json:"amount_paid"`
	PaymentDate    time.Time `json:"payment_date"`
	ReceivedBy     string    `json:"received_by,omitempty"`
	ReceivedByName string    `json:"received_by_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
