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

//go:generate mockgen -source=service_catalog_usecase.go -destination=../adapter/http/handlers/mocks/service_catalog_usecase_mock.go -package=mocks

var (
	ErrInvalidServiceName  = errors.New("invalid service name")
	ErrInvalidServicePrice = errors.New("invalid service price")
	ErrInvalidServiceCode  = errors.New("invalid service code")
	ErrServiceNotFound     = errors.New("service not found")
)

// IServiceCatalogUseCase manages the list of services the workshop sells.
type IServiceCatalogUseCase interface {
	Create(ctx context.Context, name string, price float64) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	GetByCode(ctx context.Context, code string) (entities.Service, error)
}

type ServiceCatalogUseCase struct {
	repo      interfaces.IServiceRepository
	sequencer interfaces.ISequencer
	now       func() time.Time
}

var _ IServiceCatalogUseCase = (*ServiceCatalogUseCase)(nil)

func NewServiceCatalogUseCase(repo interfaces.IServiceRepository, sequencer interfaces.ISequencer) *ServiceCatalogUseCase {
	return &ServiceCatalogUseCase{repo: repo, sequencer: sequencer, now: time.Now}
}

func (u *ServiceCatalogUseCase) Create(ctx context.Context, name string, price float64) (entities.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Service{}, ErrInvalidServiceName
	}
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return entities.Service{}, ErrInvalidServicePrice
	}

	n, err := u.sequencer.Next(ctx, entities.SequenceService)
	if err != nil {
		return entities.Service{}, fmt.Errorf("allocate service code: %w", err)
	}

	s := entities.Service{
		ServiceCode:  entities.ServiceCodeFromSequence(n),
		ServiceName:  name,
		ServicePrice: price,
		CreatedAt:    u.now().UTC(),
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Service{}, fmt.Errorf("create service %s: %w", s.ServiceCode, err)
	}
	log.WithFields(log.Fields{"service_code": created.ServiceCode, "price": created.ServicePrice}).Info("[service][usecase] service created")
	return created, nil
}

func (u *ServiceCatalogUseCase) List(ctx context.Context) ([]entities.Service, error) {
	services, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].ServiceName < services[j].ServiceName
	})
	return services, nil
}

func (u *ServiceCatalogUseCase) GetByCode(ctx context.Context, code string) (entities.Service, error) {
	code = entities.NormalizeServiceCode(code)
	if code == "" {
		return entities.Service{}, ErrInvalidServiceCode
	}
	s, err := u.repo.GetByCode(ctx, code)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ServiceCode == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}
