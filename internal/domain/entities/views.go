package entities

import "time"

// UnknownLabel replaces text fields of a reference that could not be resolved.
const UnknownLabel = "Unknown"

// ServiceRecordView is a service record joined with its car and service.
// Unresolved joins carry UnknownLabel / 0 instead of failing the read.
type ServiceRecordView struct {
	ServiceRecord
	ServiceName  string  `json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	CarModel     string  `json:"car_model"`
	CarType      string  `json:"car_type"`
	DriverPhone  string  `json:"driver_phone"`
	MechanicName string  `json:"mechanic_name"`
}

// PaymentView is a payment joined with the record, car and service it settled.
type PaymentView struct {
	Payment
	PlateNumber string `json:"plate_number"`
	CarModel    string `json:"car_model"`
	ServiceName string `json:"service_name"`
}

// Bill is the denormalized document printed for a settled record.
type Bill struct {
	PaymentNumber     int64     `json:"payment_number"`
	RecordNumber      int64     `json:"record_number"`
	AmountPaid        float64   `json:"amount_paid"`
	PaymentDate       time.Time `json:"payment_date"`
	PlateNumber       string    `json:"plate_number"`
	CarType           string    `json:"car_type"`
	CarModel          string    `json:"car_model"`
	ManufacturingYear int       `json:"manufacturing_year"`
	DriverPhone       string    `json:"driver_phone"`
	MechanicName      string    `json:"mechanic_name"`
	ServiceCode       string    `json:"service_code"`
	ServiceName       string    `json:"service_name"`
	ServicePrice      float64   `json:"service_price"`
	ServiceDate       time.Time `json:"service_date"`
	ReceivedBy        string    `json:"received_by"`
}
