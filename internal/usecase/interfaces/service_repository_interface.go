package interfaces

import (
	"context"
	"crpms_ledger/internal/domain/entities"
)

//go:generate mockgen -source=service_repository_interface.go -destination=mocks/service_repository_interface_mock.go -package=mock_interfaces

// IServiceRepository abstracts persistence for the service catalog.
//
// GetByCode returns a zero Service (empty ServiceCode) when nothing matches.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByCode(ctx context.Context, code string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Count(ctx context.Context) (int64, error)
}
