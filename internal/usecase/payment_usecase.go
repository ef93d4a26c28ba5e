package usecase

import (
	"context"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

var (
	ErrInvalidAmount   = errors.New("amount paid must be positive")
	ErrPaymentNotFound = errors.New("payment not found")
)

// IPaymentUseCase settles service records and reads the payment ledger.
type IPaymentUseCase interface {
	Create(ctx context.Context, recordNumber int64, amountPaid float64, paymentDate *time.Time, operator entities.Operator) (entities.Payment, error)
	List(ctx context.Context) ([]entities.PaymentView, error)
	GetBillByRecord(ctx context.Context, recordNumber int64) (entities.Bill, error)
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	records  interfaces.IServiceRecordRepository
	cars     interfaces.ICarRepository
	services interfaces.IServiceRepository
	now      func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, records interfaces.IServiceRecordRepository, cars interfaces.ICarRepository, services interfaces.IServiceRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, records: records, cars: cars, services: services, now: time.Now}
}

// Create records a payment and marks the record Paid in one atomic settlement.
//
// The pre-read only rejects the obvious cases early; the Pending guard inside Settle is what
// decides concurrent submissions.
func (u *PaymentUseCase) Create(ctx context.Context, recordNumber int64, amountPaid float64, paymentDate *time.Time, operator entities.Operator) (entities.Payment, error) {
	if recordNumber <= 0 {
		return entities.Payment{}, ErrInvalidRecordNumber
	}
	if amountPaid <= 0 || math.IsNaN(amountPaid) || math.IsInf(amountPaid, 0) {
		return entities.Payment{}, ErrInvalidAmount
	}
	logger := log.WithField("record_number", recordNumber)

	rec, err := u.records.GetByNumber(ctx, recordNumber)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("load service record: %w", err)
	}
	if rec.RecordNumber == 0 {
		return entities.Payment{}, ErrServiceRecordNotFound
	}
	if rec.PaymentStatus == entities.PaymentStatusPaid {
		logger.Info("[payment][usecase] record already paid")
		return entities.Payment{}, ErrServiceRecordAlreadyPaid
	}

	now := u.now().UTC()
	date := now
	if paymentDate != nil && !paymentDate.IsZero() {
		date = paymentDate.UTC()
	}
	p := entities.Payment{
		RecordNumber:   recordNumber,
		AmountPaid:     amountPaid,
		PaymentDate:    date.Truncate(time.Millisecond),
		ReceivedBy:     strings.TrimSpace(operator.ID),
		ReceivedByName: strings.TrimSpace(operator.Name),
		CreatedAt:      now.Truncate(time.Millisecond),
	}

	settled, err := u.repo.Settle(ctx, p)
	switch {
	case err == nil:
	case errors.Is(err, interfaces.ErrSettlementRecordNotPending):
		logger.Info("[payment][usecase] lost settlement race, record already paid")
		return entities.Payment{}, ErrServiceRecordAlreadyPaid
	case errors.Is(err, interfaces.ErrSettlementRecordMissing):
		return entities.Payment{}, ErrServiceRecordNotFound
	default:
		logger.WithError(err).Warn("[payment][usecase] settlement failed")
		return entities.Payment{}, fmt.Errorf("settle record %d: %w", recordNumber, err)
	}

	logger.WithFields(log.Fields{"payment_number": settled.PaymentNumber, "amount_paid": settled.AmountPaid}).Info("[payment][usecase] record settled")
	return settled, nil
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.PaymentView, error) {
	payments, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortPaymentsNewestFirst(payments)

	resolver := newReferenceResolver(u.cars, u.services, u.records)
	views := make([]entities.PaymentView, 0, len(payments))
	for _, p := range payments {
		v, err := resolver.paymentView(ctx, p)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// GetBillByRecord builds the printable bill for a settled record.
// An existing but unpaid record yields ErrPaymentNotFound; a missing record ErrServiceRecordNotFound.
func (u *PaymentUseCase) GetBillByRecord(ctx context.Context, recordNumber int64) (entities.Bill, error) {
	if recordNumber <= 0 {
		return entities.Bill{}, ErrInvalidRecordNumber
	}
	p, err := u.repo.GetByRecordNumber(ctx, recordNumber)
	if err != nil {
		return entities.Bill{}, err
	}

	resolver := newReferenceResolver(u.cars, u.services, u.records)
	if p.PaymentNumber == 0 {
		rec, err := resolver.record(ctx, recordNumber)
		if err != nil {
			return entities.Bill{}, err
		}
		if rec.RecordNumber == 0 {
			return entities.Bill{}, ErrServiceRecordNotFound
		}
		return entities.Bill{}, ErrPaymentNotFound
	}

	rec, car, svc, err := resolver.paymentRefs(ctx, p)
	if err != nil {
		return entities.Bill{}, err
	}
	return entities.Bill{
		PaymentNumber:     p.PaymentNumber,
		RecordNumber:      p.RecordNumber,
		AmountPaid:        p.AmountPaid,
		PaymentDate:       p.PaymentDate,
		PlateNumber:       orUnknown(firstNonEmpty(car.PlateNumber, rec.PlateNumber)),
		CarType:           orUnknown(car.Type),
		CarModel:          orUnknown(car.Model),
		ManufacturingYear: car.ManufacturingYear,
		DriverPhone:       orUnknown(car.DriverPhone),
		MechanicName:      orUnknown(car.MechanicName),
		ServiceCode:       orUnknown(firstNonEmpty(svc.ServiceCode, rec.ServiceCode)),
		ServiceName:       orUnknown(svc.ServiceName),
		ServicePrice:      svc.ServicePrice,
		ServiceDate:       rec.ServiceDate,
		ReceivedBy:        orUnknown(firstNonEmpty(p.ReceivedByName, p.ReceivedBy)),
	}, nil
}

func sortPaymentsNewestFirst(payments []entities.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].PaymentNumber > payments[j].PaymentNumber
	})
}
