package usecase

import (
	"context"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"
	"fmt"
)

// referenceResolver joins records and payments with the cars and services they point to.
//
// References are soft keys: a miss resolves to the zero value and callers substitute
// entities.UnknownLabel / 0. Store errors are not swallowed. Lookups are memoized for the
// lifetime of one resolver, so build a new one per read operation.
type referenceResolver struct {
	cars     interfaces.ICarRepository
	services interfaces.IServiceRepository
	records  interfaces.IServiceRecordRepository

	carCache     map[string]entities.Car
	serviceCache map[string]entities.Service
	recordCache  map[int64]entities.ServiceRecord
}

func newReferenceResolver(cars interfaces.ICarRepository, services interfaces.IServiceRepository, records interfaces.IServiceRecordRepository) *referenceResolver {
	return &referenceResolver{
		cars:         cars,
		services:     services,
		records:      records,
		carCache:     map[string]entities.Car{},
		serviceCache: map[string]entities.Service{},
		recordCache:  map[int64]entities.ServiceRecord{},
	}
}

func (r *referenceResolver) car(ctx context.Context, plate string) (entities.Car, error) {
	if plate == "" {
		return entities.Car{}, nil
	}
	if c, ok := r.carCache[plate]; ok {
		return c, nil
	}
	c, err := r.cars.GetByPlate(ctx, plate)
	if err != nil {
		return entities.Car{}, fmt.Errorf("resolve car %s: %w", plate, err)
	}
	r.carCache[plate] = c
	return c, nil
}

func (r *referenceResolver) service(ctx context.Context, code string) (entities.Service, error) {
	if code == "" {
		return entities.Service{}, nil
	}
	if s, ok := r.serviceCache[code]; ok {
		return s, nil
	}
	s, err := r.services.GetByCode(ctx, code)
	if err != nil {
		return entities.Service{}, fmt.Errorf("resolve service %s: %w", code, err)
	}
	r.serviceCache[code] = s
	return s, nil
}

func (r *referenceResolver) record(ctx context.Context, recordNumber int64) (entities.ServiceRecord, error) {
	if rec, ok := r.recordCache[recordNumber]; ok {
		return rec, nil
	}
	rec, err := r.records.GetByNumber(ctx, recordNumber)
	if err != nil {
		return entities.ServiceRecord{}, fmt.Errorf("resolve service record %d: %w", recordNumber, err)
	}
	r.recordCache[recordNumber] = rec
	return rec, nil
}

// primeRecords seeds the record cache from a listing the caller already holds.
func (r *referenceResolver) primeRecords(records []entities.ServiceRecord) {
	for _, rec := range records {
		r.recordCache[rec.RecordNumber] = rec
	}
}

func (r *referenceResolver) recordView(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecordView, error) {
	car, err := r.car(ctx, rec.PlateNumber)
	if err != nil {
		return entities.ServiceRecordView{}, err
	}
	svc, err := r.service(ctx, rec.ServiceCode)
	if err != nil {
		return entities.ServiceRecordView{}, err
	}
	return buildRecordView(rec, car, svc), nil
}

func (r *referenceResolver) recordViews(ctx context.Context, records []entities.ServiceRecord) ([]entities.ServiceRecordView, error) {
	views := make([]entities.ServiceRecordView, 0, len(records))
	for _, rec := range records {
		v, err := r.recordView(ctx, rec)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// paymentRefs resolves the record, car and service behind a payment.
func (r *referenceResolver) paymentRefs(ctx context.Context, p entities.Payment) (entities.ServiceRecord, entities.Car, entities.Service, error) {
	rec, err := r.record(ctx, p.RecordNumber)
	if err != nil {
		return entities.ServiceRecord{}, entities.Car{}, entities.Service{}, err
	}
	car, err := r.car(ctx, rec.PlateNumber)
	if err != nil {
		return entities.ServiceRecord{}, entities.Car{}, entities.Service{}, err
	}
	svc, err := r.service(ctx, rec.ServiceCode)
	if err != nil {
		return entities.ServiceRecord{}, entities.Car{}, entities.Service{}, err
	}
	return rec, car, svc, nil
}

func (r *referenceResolver) paymentView(ctx context.Context, p entities.Payment) (entities.PaymentView, error) {
	rec, car, svc, err := r.paymentRefs(ctx, p)
	if err != nil {
		return entities.PaymentView{}, err
	}
	return entities.PaymentView{
		Payment:     p,
		PlateNumber: orUnknown(firstNonEmpty(car.PlateNumber, rec.PlateNumber)),
		CarModel:    orUnknown(car.Model),
		ServiceName: orUnknown(svc.ServiceName),
	}, nil
}

func buildRecordView(rec entities.ServiceRecord, car entities.Car, svc entities.Service) entities.ServiceRecordView {
	if rec.PaymentStatus == "" {
		rec.PaymentStatus = entities.PaymentStatusPending
	}
	return entities.ServiceRecordView{
		ServiceRecord: rec,
		ServiceName:   orUnknown(svc.ServiceName),
		ServicePrice:  svc.ServicePrice,
		CarModel:      orUnknown(car.Model),
		CarType:       orUnknown(car.Type),
		DriverPhone:   orUnknown(car.DriverPhone),
		MechanicName:  orUnknown(car.MechanicName),
	}
}

func orUnknown(v string) string {
	if v == "" {
		return entities.UnknownLabel
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
