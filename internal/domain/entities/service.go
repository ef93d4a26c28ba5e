package entities

import (
	"fmt"
	"strings"
	"time"
)

// Service is a catalog entry (e.g. "Oil Change").
//
// Storage model (DynamoDB):
//   - PK: service_code
//
// ServiceCode is generated from the service sequence, never supplied by the caller.
type Service struct {
	ServiceCode  string    `json:"service_code"`
	ServiceName  string    `json:"service_name"`
	ServicePrice float64   `json:"service_price"`
	CreatedAt    time.Time `json:"created_at"`
}

// ServiceCodeFromSequence renders a sequence value as a catalog code: 3 -> "SRV003".
func ServiceCodeFromSequence(n int64) string {
	return fmt.Sprintf("SRV%03d", n)
}

// NormalizeServiceCode trims and upper-cases a code supplied by a caller.
func NormalizeServiceCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
