package request

type PaymentCreateRequest struct {
	RecordNumber int64   `json:"record_number" binding:"required"`
	AmountPaid   float64 `json:"amount_paid" binding:"required"`
	PaymentDate  string  `json:"payment_date"`
}
