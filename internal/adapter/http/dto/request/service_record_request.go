package request

import (
	"time"

	"crpms_ledger/internal/domain/entities"
)

// ServiceRecordCreateRequest opens a record. The record number is assigned by the server.
type ServiceRecordCreateRequest struct {
	PlateNumber string `json:"plate_number"`
	ServiceCode string `json:"service_code"`
	ServiceDate string `json:"service_date"`
}

// ServiceRecordUpdateRequest carries the descriptive fields that may change.
// Payment status is deliberately absent.
type ServiceRecordUpdateRequest struct {
	PlateNumber *string `json:"plate_number"`
	ServiceCode *string `json:"service_code"`
	ServiceDate *string `json:"service_date"`
}

func (r ServiceRecordUpdateRequest) ToPatch(loc *time.Location) (entities.ServiceRecordPatch, error) {
	patch := entities.ServiceRecordPatch{
		PlateNumber: r.PlateNumber,
		ServiceCode: r.ServiceCode,
	}
	if r.ServiceDate != nil {
		date, err := ParseDate(*r.ServiceDate, loc)
		if err != nil {
			return entities.ServiceRecordPatch{}, err
		}
		patch.ServiceDate = date
	}
	return patch, nil
}
