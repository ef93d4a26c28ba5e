package request

import "crpms_ledger/internal/domain/entities"

type CarCreateRequest struct {
	PlateNumber       string `json:"plate_number" binding:"required"`
	Type              string `json:"type" binding:"required"`
	Model             string `json:"model" binding:"required"`
	ManufacturingYear int    `json:"manufacturing_year" binding:"required"`
	DriverPhone       string `json:"driver_phone" binding:"required"`
	MechanicName      string `json:"mechanic_name" binding:"required"`
}

func (r CarCreateRequest) ToEntity() entities.Car {
	return entities.Car{
		PlateNumber:       r.PlateNumber,
		Type:              r.Type,
		Model:             r.Model,
		ManufacturingYear: r.ManufacturingYear,
		DriverPhone:       r.DriverPhone,
		MechanicName:      r.MechanicName,
	}
}
