package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"
	mock_interfaces "crpms_ledger/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCar() entities.Car {
	return entities.Car{
		PlateNumber:       " rad123a ",
		Type:              "SUV",
		Model:             "RAV4",
		ManufacturingYear: 2019,
		DriverPhone:       "0788000000",
		MechanicName:      "Eric",
	}
}

func TestCarUseCase_Register(t *testing.T) {
	t.Run("invalid plate", func(t *testing.T) {
		uc := NewCarUseCase(nil)
		c := validCar()
		c.PlateNumber = "   "
		if _, err := uc.Register(context.Background(), c); !errors.Is(err, ErrInvalidPlateNumber) {
			t.Fatalf("expected ErrInvalidPlateNumber, got %v", err)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		uc := NewCarUseCase(nil)
		c := validCar()
		c.ManufacturingYear = 0
		if _, err := uc.Register(context.Background(), c); !errors.Is(err, ErrInvalidCarPayload) {
			t.Fatalf("expected ErrInvalidCarPayload, got %v", err)
		}
		c = validCar()
		c.MechanicName = " "
		if _, err := uc.Register(context.Background(), c); !errors.Is(err, ErrInvalidCarPayload) {
			t.Fatalf("expected ErrInvalidCarPayload, got %v", err)
		}
	})

	t.Run("duplicate plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Car{}, interfaces.ErrAlreadyExists)

		if _, err := uc.Register(context.Background(), validCar()); !errors.Is(err, ErrCarAlreadyExists) {
			t.Fatalf("expected ErrCarAlreadyExists, got %v", err)
		}
	})

	t.Run("success normalizes plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(repo)
		fixed := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Car) (entities.Car, error) {
			if c.PlateNumber != "RAD123A" {
				t.Fatalf("expected normalized plate, got %q", c.PlateNumber)
			}
			if !c.CreatedAt.Equal(fixed) || !c.UpdatedAt.Equal(fixed) {
				t.Fatalf("expected timestamps to be set")
			}
			return c, nil
		})

		got, err := uc.Register(context.Background(), validCar())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PlateNumber != "RAD123A" {
			t.Fatalf("unexpected car: %+v", got)
		}
	})
}

func TestCarUseCase_ListGetDelete(t *testing.T) {
	t.Run("list newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(repo)

		old := entities.Car{PlateNumber: "A", CreatedAt: time.Unix(100, 0)}
		recent := entities.Car{PlateNumber: "B", CreatedAt: time.Unix(200, 0)}
		repo.EXPECT().List(gomock.Any()).Return([]entities.Car{old, recent}, nil)

		got, err := uc.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].PlateNumber != "B" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(repo)

		repo.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(entities.Car{}, nil)

		if _, err := uc.GetByPlate(context.Background(), "rad123a"); !errors.Is(err, ErrCarNotFound) {
			t.Fatalf("expected ErrCarNotFound, got %v", err)
		}
	})

	t.Run("get repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(repo)

		repo.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(entities.Car{}, errors.New("db"))

		if _, err := uc.GetByPlate(context.Background(), "RAD123A"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "RAD123A").Return(false, nil)

		if err := uc.Delete(context.Background(), "rad123a"); !errors.Is(err, ErrCarNotFound) {
			t.Fatalf("expected ErrCarNotFound, got %v", err)
		}
	})

	t.Run("delete ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICarRepository(ctrl)
		uc := NewCarUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "RAD123A").Return(true, nil)

		if err := uc.Delete(context.Background(), "RAD123A"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
