package entities

import "time"

// DashboardCounts are entity totals at the time the dashboard was built.
type DashboardCounts struct {
	TotalCars         int64 `json:"total_cars"`
	TotalServices     int64 `json:"total_services"`
	TotalRecords      int64 `json:"total_records"`
	PendingPayments   int64 `json:"pending_payments"`
	CompletedPayments int64 `json:"completed_payments"`
}

type DashboardRevenue struct {
	Total    float64 `json:"total"`
	Today    float64 `json:"today"`
	Currency string  `json:"currency"`
}

type DashboardToday struct {
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

// Dashboard is a point-in-time snapshot; the joined reads are not transactionally consistent.
type Dashboard struct {
	Counts         DashboardCounts     `json:"counts"`
	Revenue        DashboardRevenue    `json:"revenue"`
	Today          DashboardToday      `json:"today"`
	RecentRecords  []ServiceRecordView `json:"recent_records"`
	RecentPayments []PaymentView       `json:"recent_payments"`
}

// DailyReportLine is one payment received on the report date.
type DailyReportLine struct {
	RecordNumber int64     `json:"record_number"`
	PlateNumber  string    `json:"plate_number"`
	CarModel     string    `json:"car_model"`
	ServiceName  string    `json:"service_name"`
	ServicePrice float64   `json:"service_price"`
	AmountPaid   float64   `json:"amount_paid"`
	PaymentDate  time.Time `json:"payment_date"`
	MechanicName string    `json:"mechanic_name"`
}

type DailyReportSummary struct {
	TotalServices     int     `json:"total_services"`
	TotalServicePrice float64 `json:"total_service_price"`
	TotalAmountPaid   float64 `json:"total_amount_paid"`
}

type DailyReport struct {
	Date    time.Time          `json:"date"`
	Lines   []DailyReportLine  `json:"reports"`
	Summary DailyReportSummary `json:"summary"`
}
