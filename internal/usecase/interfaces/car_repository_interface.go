package interfaces

import (
	"context"
	"crpms_ledger/internal/domain/entities"
)

//go:generate mockgen -source=car_repository_interface.go -destination=mocks/car_repository_interface_mock.go -package=mock_interfaces

// ICarRepository abstracts persistence for Car.
//
// GetByPlate returns a zero Car (empty PlateNumber) when nothing matches.
// Create returns ErrAlreadyExists when the plate is taken.
type ICarRepository interface {
	Create(ctx context.Context, c entities.Car) (entities.Car, error)
	GetByPlate(ctx context.Context, plate string) (entities.Car, error)
	List(ctx context.Context) ([]entities.Car, error)
	Delete(ctx context.Context, plate string) (bool, error)
	Count(ctx context.Context) (int64, error)
}
