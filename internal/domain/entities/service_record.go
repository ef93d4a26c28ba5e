package entities

import "time"

// PaymentStatus is the settlement state of a service record.
//
// The only transition is Pending -> Paid, driven by a successful payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusPaid
}

// ServiceRecord is one service performed on one car.
//
// Storage model (DynamoDB):
//   - PK: record_number
//
// PlateNumber and ServiceCode are soft references: they are checked when the record is created
// but nothing keeps them valid afterwards.
type ServiceRecord struct {
	RecordNumber  int64         `json:"record_number"`
	PlateNumber   string        `json:"plate_number"`
	ServiceCode   string        `json:"service_code"`
	ServiceDate   time.Time     `json:"service_date"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentNumber int64         `json:"payment_number,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ServiceRecordPatch carries the descriptive fields an operator may edit.
// Nil fields are left untouched. There is deliberately no status field.
type ServiceRecordPatch struct {
	PlateNumber *string
	ServiceCode *string
	ServiceDate *time.Time
}

func (p ServiceRecordPatch) IsEmpty() bool {
	return p.PlateNumber == nil && p.ServiceCode == nil && p.ServiceDate == nil
}
