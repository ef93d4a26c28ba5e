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

type recordMocks struct {
	repo     *mock_interfaces.MockIServiceRecordRepository
	cars     *mock_interfaces.MockICarRepository
	services *mock_interfaces.MockIServiceRepository
	seq      *mock_interfaces.MockISequencer
}

func newRecordUseCase(t *testing.T) (*ServiceRecordUseCase, recordMocks) {
	ctrl := gomock.NewController(t)
	m := recordMocks{
		repo:     mock_interfaces.NewMockIServiceRecordRepository(ctrl),
		cars:     mock_interfaces.NewMockICarRepository(ctrl),
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
		seq:      mock_interfaces.NewMockISequencer(ctrl),
	}
	return NewServiceRecordUseCase(m.repo, m.cars, m.services, m.seq), m
}

var (
	testCar     = entities.Car{PlateNumber: "RAD123A", Type: "SUV", Model: "RAV4", ManufacturingYear: 2019, DriverPhone: "0788000000", MechanicName: "Eric"}
	testService = entities.Service{ServiceCode: "SRV001", ServiceName: "Engine repair", ServicePrice: 60000}
)

func TestServiceRecordUseCase_Create(t *testing.T) {
	t.Run("missing plate or code", func(t *testing.T) {
		uc, _ := newRecordUseCase(t)
		if _, err := uc.Create(context.Background(), " ", "SRV001", nil); !errors.Is(err, ErrInvalidPlateNumber) {
			t.Fatalf("expected ErrInvalidPlateNumber, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "RAD123A", "", nil); !errors.Is(err, ErrInvalidServiceCode) {
			t.Fatalf("expected ErrInvalidServiceCode, got %v", err)
		}
	})

	t.Run("car not found allocates nothing", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		m.cars.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(entities.Car{}, nil)

		if _, err := uc.Create(context.Background(), "rad123a", "SRV001", nil); !errors.Is(err, ErrCarNotFound) {
			t.Fatalf("expected ErrCarNotFound, got %v", err)
		}
	})

	t.Run("service not found allocates nothing", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		m.cars.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(testCar, nil)
		m.services.EXPECT().GetByCode(gomock.Any(), "SRV404").Return(entities.Service{}, nil)

		if _, err := uc.Create(context.Background(), "RAD123A", "srv404", nil); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("sequencer unavailable creates nothing", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		m.cars.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(testCar, nil)
		m.services.EXPECT().GetByCode(gomock.Any(), "SRV001").Return(testService, nil)
		m.seq.EXPECT().Next(gomock.Any(), entities.SequenceServiceRecord).Return(int64(0), context.DeadlineExceeded)

		_, err := uc.Create(context.Background(), "RAD123A", "SRV001", nil)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected wrapped deadline error, got %v", err)
		}
	})

	t.Run("success returns enriched pending record", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		fixed := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		uc.now = func() time.Time { return fixed }

		m.cars.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(testCar, nil)
		m.services.EXPECT().GetByCode(gomock.Any(), "SRV001").Return(testService, nil)
		m.seq.EXPECT().Next(gomock.Any(), entities.SequenceServiceRecord).Return(int64(7), nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error) {
			if r.RecordNumber != 7 || r.PaymentStatus != entities.PaymentStatusPending || !r.ServiceDate.Equal(fixed) {
				t.Fatalf("unexpected record: %+v", r)
			}
			return r, nil
		})

		got, err := uc.Create(context.Background(), "rad123a", "SRV001", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.RecordNumber != 7 || got.CarModel != "RAV4" || got.ServiceName != "Engine repair" || got.ServicePrice != 60000 {
			t.Fatalf("unexpected view: %+v", got)
		}
	})
}

func TestServiceRecordUseCase_ListDegradesMissingReferences(t *testing.T) {
	uc, m := newRecordUseCase(t)
	m.repo.EXPECT().List(gomock.Any()).Return([]entities.ServiceRecord{
		{RecordNumber: 1, PlateNumber: "GONE1", ServiceCode: "SRV001", PaymentStatus: entities.PaymentStatusPaid},
		{RecordNumber: 2, PlateNumber: "RAD123A", ServiceCode: "SRV001", PaymentStatus: entities.PaymentStatusPending},
		{RecordNumber: 3, PlateNumber: "GONE1", ServiceCode: "SRV009"},
	}, nil)
	m.cars.EXPECT().GetByPlate(gomock.Any(), "GONE1").Return(entities.Car{}, nil).Times(1)
	m.cars.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(testCar, nil).Times(1)
	m.services.EXPECT().GetByCode(gomock.Any(), "SRV001").Return(testService, nil).Times(1)
	m.services.EXPECT().GetByCode(gomock.Any(), "SRV009").Return(entities.Service{}, nil).Times(1)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 || got[0].RecordNumber != 3 || got[2].RecordNumber != 1 {
		t.Fatalf("expected newest first, got %+v", got)
	}
	if got[0].CarModel != entities.UnknownLabel || got[0].ServiceName != entities.UnknownLabel || got[0].ServicePrice != 0 {
		t.Fatalf("expected unknown fallbacks, got %+v", got[0])
	}
	if got[0].PaymentStatus != entities.PaymentStatusPending {
		t.Fatalf("expected empty status to read as pending, got %q", got[0].PaymentStatus)
	}
	if got[1].CarModel != "RAV4" {
		t.Fatalf("expected resolved car, got %+v", got[1])
	}
}

func TestServiceRecordUseCase_ListStoreErrorPropagates(t *testing.T) {
	uc, m := newRecordUseCase(t)
	m.repo.EXPECT().ListByStatus(gomock.Any(), entities.PaymentStatusPending).Return([]entities.ServiceRecord{
		{RecordNumber: 1, PlateNumber: "RAD123A", ServiceCode: "SRV001"},
	}, nil)
	m.cars.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(entities.Car{}, errors.New("timeout"))

	if _, err := uc.ListUnpaid(context.Background()); err == nil {
		t.Fatalf("expected store error")
	}
}

func TestServiceRecordUseCase_GetByNumber(t *testing.T) {
	t.Run("invalid number", func(t *testing.T) {
		uc, _ := newRecordUseCase(t)
		if _, err := uc.GetByNumber(context.Background(), 0); !errors.Is(err, ErrInvalidRecordNumber) {
			t.Fatalf("expected ErrInvalidRecordNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		m.repo.EXPECT().GetByNumber(gomock.Any(), int64(5)).Return(entities.ServiceRecord{}, nil)
		if _, err := uc.GetByNumber(context.Background(), 5); !errors.Is(err, ErrServiceRecordNotFound) {
			t.Fatalf("expected ErrServiceRecordNotFound, got %v", err)
		}
	})

	t.Run("enriched", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		m.repo.EXPECT().GetByNumber(gomock.Any(), int64(5)).Return(entities.ServiceRecord{RecordNumber: 5, PlateNumber: "RAD123A", ServiceCode: "SRV001"}, nil)
		m.cars.EXPECT().GetByPlate(gomock.Any(), "RAD123A").Return(testCar, nil)
		m.services.EXPECT().GetByCode(gomock.Any(), "SRV001").Return(testService, nil)

		got, err := uc.GetByNumber(context.Background(), 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.MechanicName != "Eric" || got.DriverPhone != "0788000000" {
			t.Fatalf("unexpected view: %+v", got)
		}
	})
}

func TestServiceRecordUseCase_Update(t *testing.T) {
	t.Run("normalizes and drops empty fields", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		plate := " rad999b "
		empty := ""
		m.repo.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, p entities.ServiceRecordPatch) (entities.ServiceRecord, error) {
			if p.PlateNumber == nil || *p.PlateNumber != "RAD999B" {
				t.Fatalf("expected normalized plate, got %+v", p.PlateNumber)
			}
			if p.ServiceCode != nil || p.ServiceDate != nil {
				t.Fatalf("expected empty fields dropped, got %+v", p)
			}
			return entities.ServiceRecord{RecordNumber: 4, PlateNumber: *p.PlateNumber}, nil
		})

		got, err := uc.Update(context.Background(), 4, entities.ServiceRecordPatch{PlateNumber: &plate, ServiceCode: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PlateNumber != "RAD999B" {
			t.Fatalf("unexpected record: %+v", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		code := "SRV002"
		m.repo.EXPECT().Update(gomock.Any(), int64(4), gomock.Any()).Return(entities.ServiceRecord{}, nil)
		if _, err := uc.Update(context.Background(), 4, entities.ServiceRecordPatch{ServiceCode: &code}); !errors.Is(err, ErrServiceRecordNotFound) {
			t.Fatalf("expected ErrServiceRecordNotFound, got %v", err)
		}
	})

	t.Run("empty patch reads current", func(t *testing.T) {
		uc, m := newRecordUseCase(t)
		m.repo.EXPECT().GetByNumber(gomock.Any(), int64(4)).Return(entities.ServiceRecord{RecordNumber: 4}, nil)
		if _, err := uc.Update(context.Background(), 4, entities.ServiceRecordPatch{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceRecordUseCase_Delete(t *testing.T) {
	cases := []struct {
		name    string
		deleted bool
		repoErr error
		want    error
	}{
		{name: "deleted", deleted: true},
		{name: "missing", want: ErrServiceRecordNotFound},
		{name: "paid", repoErr: interfaces.ErrSettlementRecordNotPending, want: ErrServiceRecordAlreadyPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newRecordUseCase(t)
			m.repo.EXPECT().DeletePending(gomock.Any(), int64(9)).Return(tc.deleted, tc.repoErr)

			err := uc.Delete(context.Background(), 9)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
