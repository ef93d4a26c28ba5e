package usecase

import (
	"context"
	"crpms_ledger/internal/domain/entities"
	"crpms_ledger/internal/usecase/interfaces"
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service_record_usecase.go -destination=../adapter/http/handlers/mocks/service_record_usecase_mock.go -package=mocks

var (
	ErrInvalidRecordNumber      = errors.New("invalid record number")
	ErrServiceRecordNotFound    = errors.New("service record not found")
	ErrServiceRecordAlreadyPaid = errors.New("service record already paid")
)

// IServiceRecordUseCase is the service record ledger.
//
// Record numbers come from the sequencer; callers never supply them. Payment status is owned by
// the payment flow and cannot be changed here.
type IServiceRecordUseCase interface {
	Create(ctx context.Context, plateNumber, serviceCode string, serviceDate *time.Time) (entities.ServiceRecordView, error)
	List(ctx context.Context) ([]entities.ServiceRecordView, error)
	ListUnpaid(ctx context.Context) ([]entities.ServiceRecordView, error)
	GetByNumber(ctx context.Context, recordNumber int64) (entities.ServiceRecordView, error)
	Update(ctx context.Context, recordNumber int64, patch entities.ServiceRecordPatch) (entities.ServiceRecord, error)
	Delete(ctx context.Context, recordNumber int64) error
}

type ServiceRecordUseCase struct {
	repo      interfaces.IServiceRecordRepository
	cars      interfaces.ICarRepository
	services  interfaces.IServiceRepository
	sequencer interfaces.ISequencer
	now       func() time.Time
}

var _ IServiceRecordUseCase = (*ServiceRecordUseCase)(nil)

func NewServiceRecordUseCase(repo interfaces.IServiceRecordRepository, cars interfaces.ICarRepository, services interfaces.IServiceRepository, sequencer interfaces.ISequencer) *ServiceRecordUseCase {
	return &ServiceRecordUseCase{repo: repo, cars: cars, services: services, sequencer: sequencer, now: time.Now}
}

func (u *ServiceRecordUseCase) Create(ctx context.Context, plateNumber, serviceCode string, serviceDate *time.Time) (entities.ServiceRecordView, error) {
	plateNumber = entities.NormalizePlateNumber(plateNumber)
	if plateNumber == "" {
		return entities.ServiceRecordView{}, ErrInvalidPlateNumber
	}
	serviceCode = entities.NormalizeServiceCode(serviceCode)
	if serviceCode == "" {
		return entities.ServiceRecordView{}, ErrInvalidServiceCode
	}
	logger := log.WithFields(log.Fields{"plate_number": plateNumber, "service_code": serviceCode})

	car, err := u.cars.GetByPlate(ctx, plateNumber)
	if err != nil {
		return entities.ServiceRecordView{}, fmt.Errorf("load car: %w", err)
	}
	if car.PlateNumber == "" {
		logger.Info("[record][usecase] car not found")
		return entities.ServiceRecordView{}, ErrCarNotFound
	}
	svc, err := u.services.GetByCode(ctx, serviceCode)
	if err != nil {
		return entities.ServiceRecordView{}, fmt.Errorf("load service: %w", err)
	}
	if svc.ServiceCode == "" {
		logger.Info("[record][usecase] service not found")
		return entities.ServiceRecordView{}, ErrServiceNotFound
	}

	recordNumber, err := u.sequencer.Next(ctx, entities.SequenceServiceRecord)
	if err != nil {
		logger.WithError(err).Warn("[record][usecase] record number allocation failed")
		return entities.ServiceRecordView{}, fmt.Errorf("allocate record number: %w", err)
	}

	now := u.now().UTC()
	date := now
	if serviceDate != nil && !serviceDate.IsZero() {
		date = serviceDate.UTC()
	}
	rec := entities.ServiceRecord{
		RecordNumber:  recordNumber,
		PlateNumber:   plateNumber,
		ServiceCode:   serviceCode,
		ServiceDate:   date,
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		// The allocated number stays unused; it is never handed out again.
		logger.WithError(err).WithField("record_number", recordNumber).Warn("[record][usecase] create failed after allocation")
		return entities.ServiceRecordView{}, fmt.Errorf("create service record %d: %w", recordNumber, err)
	}
	logger.WithField("record_number", created.RecordNumber).Info("[record][usecase] record created")
	return buildRecordView(created, car, svc), nil
}

func (u *ServiceRecordUseCase) List(ctx context.Context) ([]entities.ServiceRecordView, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return u.enrich(ctx, records)
}

func (u *ServiceRecordUseCase) ListUnpaid(ctx context.Context) ([]entities.ServiceRecordView, error) {
	records, err := u.repo.ListByStatus(ctx, entities.PaymentStatusPending)
	if err != nil {
		return nil, err
	}
	return u.enrich(ctx, records)
}

func (u *ServiceRecordUseCase) enrich(ctx context.Context, records []entities.ServiceRecord) ([]entities.ServiceRecordView, error) {
	sortRecordsNewestFirst(records)
	return newReferenceResolver(u.cars, u.services, u.repo).recordViews(ctx, records)
}

func (u *ServiceRecordUseCase) GetByNumber(ctx context.Context, recordNumber int64) (entities.ServiceRecordView, error) {
	if recordNumber <= 0 {
		return entities.ServiceRecordView{}, ErrInvalidRecordNumber
	}
	rec, err := u.repo.GetByNumber(ctx, recordNumber)
	if err != nil {
		return entities.ServiceRecordView{}, err
	}
	if rec.RecordNumber == 0 {
		return entities.ServiceRecordView{}, ErrServiceRecordNotFound
	}
	return newReferenceResolver(u.cars, u.services, u.repo).recordView(ctx, rec)
}

func (u *ServiceRecordUseCase) Update(ctx context.Context, recordNumber int64, patch entities.ServiceRecordPatch) (entities.ServiceRecord, error) {
	if recordNumber <= 0 {
		return entities.ServiceRecord{}, ErrInvalidRecordNumber
	}
	patch = normalizePatch(patch)

	var (
		updated entities.ServiceRecord
		err     error
	)
	if patch.IsEmpty() {
		updated, err = u.repo.GetByNumber(ctx, recordNumber)
	} else {
		updated, err = u.repo.Update(ctx, recordNumber, patch)
	}
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if updated.RecordNumber == 0 {
		return entities.ServiceRecord{}, ErrServiceRecordNotFound
	}
	log.WithField("record_number", recordNumber).Info("[record][usecase] record updated")
	return updated, nil
}

// Delete removes an unpaid record. A settled record keeps its payment, so it cannot go.
func (u *ServiceRecordUseCase) Delete(ctx context.Context, recordNumber int64) error {
	if recordNumber <= 0 {
		return ErrInvalidRecordNumber
	}
	deleted, err := u.repo.DeletePending(ctx, recordNumber)
	if err != nil {
		if errors.Is(err, interfaces.ErrSettlementRecordNotPending) {
			return ErrServiceRecordAlreadyPaid
		}
		return err
	}
	if !deleted {
		return ErrServiceRecordNotFound
	}
	log.WithField("record_number", recordNumber).Info("[record][usecase] record deleted")
	return nil
}

// normalizePatch drops empty values so they keep the stored ones.
func normalizePatch(p entities.ServiceRecordPatch) entities.ServiceRecordPatch {
	out := entities.ServiceRecordPatch{}
	if p.PlateNumber != nil {
		if v := entities.NormalizePlateNumber(*p.PlateNumber); v != "" {
			out.PlateNumber = &v
		}
	}
	if p.ServiceCode != nil {
		if v := entities.NormalizeServiceCode(*p.ServiceCode); v != "" {
			out.ServiceCode = &v
		}
	}
	if p.ServiceDate != nil && !p.ServiceDate.IsZero() {
		v := p.ServiceDate.UTC()
		out.ServiceDate = &v
	}
	return out
}

func sortRecordsNewestFirst(records []entities.ServiceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].RecordNumber > records[j].RecordNumber
	})
}
