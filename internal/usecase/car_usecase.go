package usecase

import (
	"context"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=car_usecase.go -destination=../adapter/http/handlers/mocks/car_usecase_mock.go -package=mocks

var (
	ErrInvalidPlateNumber = errors.New("invalid plate number")
	ErrInvalidCarPayload  = errors.New("invalid car payload")
	ErrCarAlreadyExists   = errors.New("car with this plate number already exists")
	ErrCarNotFound        = errors.New("car not found")
)

// ICarUseCase registers and reads vehicles.
type ICarUseCase interface {
	Register(ctx context.Context, car entities.Car) (entities.Car, error)
	List(ctx context.Context) ([]entities.Car, error)
	GetByPlate(ctx context.Context, plate string) (entities.Car, error)
	Delete(ctx context.Context, plate string) error
}

type CarUseCase struct {
	repo interfaces.ICarRepository
	now  func() time.Time
}

var _ ICarUseCase = (*CarUseCase)(nil)

func NewCarUseCase(repo interfaces.ICarRepository) *CarUseCase {
	return &CarUseCase{repo: repo, now: time.Now}
}

func (u *CarUseCase) Register(ctx context.Context, car entities.Car) (entities.Car, error) {
	car.PlateNumber = entities.NormalizePlateNumber(car.PlateNumber)
	if car.PlateNumber == "" {
		return entities.Car{}, ErrInvalidPlateNumber
	}
	car.Type = strings.TrimSpace(car.Type)
	car.Model = strings.TrimSpace(car.Model)
	car.DriverPhone = strings.TrimSpace(car.DriverPhone)
	car.MechanicName = strings.TrimSpace(car.MechanicName)
	if car.Type == "" || car.Model == "" || car.DriverPhone == "" || car.MechanicName == "" || car.ManufacturingYear <= 0 {
		return entities.Car{}, ErrInvalidCarPayload
	}

	now := u.now().UTC()
	car.CreatedAt = now
	car.UpdatedAt = now

	created, err := u.repo.Create(ctx, car)
	if err != nil {
		if errors.Is(err, interfaces.ErrAlreadyExists) {
			return entities.Car{}, ErrCarAlreadyExists
		}
		return entities.Car{}, fmt.Errorf("create car: %w", err)
	}
	log.WithField("plate_number", created.PlateNumber).Info("[car][usecase] car registered")
	return created, nil
}

func (u *CarUseCase) List(ctx context.Context) ([]entities.Car, error) {
	cars, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(cars, func(i, j int) bool {
		return cars[i].CreatedAt.After(cars[j].CreatedAt)
	})
	return cars, nil
}

func (u *CarUseCase) GetByPlate(ctx context.Context, plate string) (entities.Car, error) {
	plate = entities.NormalizePlateNumber(plate)
	if plate == "" {
		return entities.Car{}, ErrInvalidPlateNumber
	}
	c, err := u.repo.GetByPlate(ctx, plate)
	if err != nil {
		return entities.Car{}, err
	}
	if c.PlateNumber == "" {
		return entities.Car{}, ErrCarNotFound
	}
	return c, nil
}

// Delete retires a vehicle. Service records that reference it are kept and
// show the car as unknown from then on.
func (u *CarUseCase) Delete(ctx context.Context, plate string) error {
	plate = entities.NormalizePlateNumber(plate)
	if plate == "" {
		return ErrInvalidPlateNumber
	}
	deleted, err := u.repo.Delete(ctx, plate)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrCarNotFound
	}
	log.WithField("plate_number", plate).Info("[car][usecase] car deleted")
	return nil
}
