package entities

import (
	"strings"
	"time"
)

// Car is a vehicle registered at the workshop.
//
// Storage model (DynamoDB):
//   - PK: plate_number
//
// PlateNumber is the natural key and is always stored upper-cased.
type Car struct {
	PlateNumber       string    `json:"plate_number"`
	Type              string    `json:"type"`
	Model             string    `json:"model"`
	ManufacturingYear int       `json:"manufacturing_year"`
	DriverPhone       string    `json:"driver_phone"`
	MechanicName      string    `json:"mechanic_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NormalizePlateNumber trims and upper-cases a plate so lookups and storage agree.
func NormalizePlateNumber(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}
