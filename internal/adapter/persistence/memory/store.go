// Package memory keeps every entity in process memory behind one lock.
//
// It implements the same ports as the DynamoDB repositories, including the all-or-nothing
// settlement, and is used for local runs and for concurrency tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"
)

type Store struct {
	mu        sync.Mutex
	cars      map[string]entities.Car
	services  map[string]entities.Service
	records   map[int64]entities.ServiceRecord
	payments  map[int64]entities.Payment
	sequences map[entities.SequenceKind]int64
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		cars:      map[string]entities.Car{},
		services:  map[string]entities.Service{},
		records:   map[int64]entities.ServiceRecord{},
		payments:  map[int64]entities.Payment{},
		sequences: map[entities.SequenceKind]int64{},
		now:       time.Now,
	}
}

func (s *Store) Cars() *CarRepository                     { return &CarRepository{s} }
func (s *Store) Services() *ServiceRepository             { return &ServiceRepository{s} }
func (s *Store) ServiceRecords() *ServiceRecordRepository { return &ServiceRecordRepository{s} }
func (s *Store) Payments() *PaymentRepository             { return &PaymentRepository{s} }
func (s *Store) Sequencer() *Sequencer                    { return &Sequencer{s} }

// Sequencer

type Sequencer struct{ s *Store }

var _ interfaces.ISequencer = (*Sequencer)(nil)

func (q *Sequencer) Next(ctx context.Context, kind entities.SequenceKind) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	q.s.sequences[kind]++
	return q.s.sequences[kind], nil
}

// Cars

type CarRepository struct{ s *Store }

var _ interfaces.ICarRepository = (*CarRepository)(nil)

func (r *CarRepository) Create(ctx context.Context, c entities.Car) (entities.Car, error) {
	if err := ctx.Err(); err != nil {
		return entities.Car{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cars[c.PlateNumber]; ok {
		return entities.Car{}, interfaces.ErrAlreadyExists
	}
	r.s.cars[c.PlateNumber] = c
	return c, nil
}

func (r *CarRepository) GetByPlate(ctx context.Context, plate string) (entities.Car, error) {
	if err := ctx.Err(); err != nil {
		return entities.Car{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.cars[plate], nil
}

func (r *CarRepository) List(ctx context.Context) ([]entities.Car, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Car, 0, len(r.s.cars))
	for _, c := range r.s.cars {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlateNumber < out[j].PlateNumber })
	return out, nil
}

func (r *CarRepository) Delete(ctx context.Context, plate string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.cars[plate]; !ok {
		return false, nil
	}
	delete(r.s.cars, plate)
	return true, nil
}

func (r *CarRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.cars)), nil
}

// Services

type ServiceRepository struct{ s *Store }

var _ interfaces.IServiceRepository = (*ServiceRepository)(nil)

func (r *ServiceRepository) Create(ctx context.Context, svc entities.Service) (entities.Service, error) {
	if err := ctx.Err(); err != nil {
		return entities.Service{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.services[svc.ServiceCode]; ok {
		return entities.Service{}, interfaces.ErrAlreadyExists
	}
	r.s.services[svc.ServiceCode] = svc
	return svc, nil
}

func (r *ServiceRepository) GetByCode(ctx context.Context, code string) (entities.Service, error) {
	if err := ctx.Err(); err != nil {
		return entities.Service{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.services[code], nil
}

func (r *ServiceRepository) List(ctx context.Context) ([]entities.Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Service, 0, len(r.s.services))
	for _, svc := range r.s.services {
		out = append(out, svc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ServiceCode < out[j].ServiceCode })
	return out, nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.services)), nil
}

// Service records

type ServiceRecordRepository struct{ s *Store }

var _ interfaces.IServiceRecordRepository = (*ServiceRecordRepository)(nil)

func (r *ServiceRecordRepository) Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.ServiceRecord{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.records[rec.RecordNumber]; ok {
		return entities.ServiceRecord{}, interfaces.ErrAlreadyExists
	}
	if rec.PaymentStatus == "" {
		rec.PaymentStatus = entities.PaymentStatusPending
	}
	r.s.records[rec.RecordNumber] = rec
	return rec, nil
}

func (r *ServiceRecordRepository) GetByNumber(ctx context.Context, recordNumber int64) (entities.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.ServiceRecord{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.records[recordNumber], nil
}

func (r *ServiceRecordRepository) List(ctx context.Context) ([]entities.ServiceRecord, error) {
	return r.filter(ctx, func(entities.ServiceRecord) bool { return true })
}

func (r *ServiceRecordRepository) ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.ServiceRecord, error) {
	return r.filter(ctx, func(rec entities.ServiceRecord) bool { return rec.PaymentStatus == status })
}

func (r *ServiceRecordRepository) filter(ctx context.Context, keep func(entities.ServiceRecord) bool) ([]entities.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.ServiceRecord, 0, len(r.s.records))
	for _, rec := range r.s.records {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordNumber < out[j].RecordNumber })
	return out, nil
}

func (r *ServiceRecordRepository) Update(ctx context.Context, recordNumber int64, patch entities.ServiceRecordPatch) (entities.ServiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return entities.ServiceRecord{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.records[recordNumber]
	if !ok {
		return entities.ServiceRecord{}, nil
	}
	if patch.PlateNumber != nil {
		rec.PlateNumber = *patch.PlateNumber
	}
	if patch.ServiceCode != nil {
		rec.ServiceCode = *patch.ServiceCode
	}
	if patch.ServiceDate != nil {
		rec.ServiceDate = *patch.ServiceDate
	}
	rec.UpdatedAt = r.s.now().UTC()
	r.s.records[recordNumber] = rec
	return rec, nil
}

func (r *ServiceRecordRepository) DeletePending(ctx context.Context, recordNumber int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.records[recordNumber]
	if !ok {
		return false, nil
	}
	if rec.PaymentStatus == entities.PaymentStatusPaid {
		return false, interfaces.ErrSettlementRecordNotPending
	}
	delete(r.s.records, recordNumber)
	return true, nil
}

// Payments

type PaymentRepository struct{ s *Store }

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

// Settle checks the Pending guard, takes the next payment number and flips the record, all
// under the store lock. A losing caller never advances the counter.
func (r *PaymentRepository) Settle(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Payment{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.records[p.RecordNumber]
	if !ok {
		return entities.Payment{}, interfaces.ErrSettlementRecordMissing
	}
	if rec.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Payment{}, interfaces.ErrSettlementRecordNotPending
	}

	r.s.sequences[entities.SequencePayment]++
	p.PaymentNumber = r.s.sequences[entities.SequencePayment]
	r.s.payments[p.PaymentNumber] = p

	rec.PaymentStatus = entities.PaymentStatusPaid
	rec.PaymentNumber = p.PaymentNumber
	rec.UpdatedAt = p.CreatedAt
	r.s.records[p.RecordNumber] = rec
	return p, nil
}

func (r *PaymentRepository) GetByRecordNumber(ctx context.Context, recordNumber int64) (entities.Payment, error) {
	if err := ctx.Err(); err != nil {
		return entities.Payment{}, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.payments {
		if p.RecordNumber == recordNumber {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *PaymentRepository) List(ctx context.Context) ([]entities.Payment, error) {
	return r.filter(ctx, func(entities.Payment) bool { return true })
}

func (r *PaymentRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Payment, error) {
	return r.filter(ctx, func(p entities.Payment) bool {
		return !p.PaymentDate.Before(from) && !p.PaymentDate.After(to)
	})
}

func (r *PaymentRepository) filter(ctx context.Context, keep func(entities.Payment) bool) ([]entities.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Payment, 0, len(r.s.payments))
	for _, p := range r.s.payments {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentNumber < out[j].PaymentNumber })
	return out, nil
}
