package interfaces

import (
	"context"
	"crpms_ledger/internal/domain/entities"
)

//go:generate mockgen -source=service_record_repository_interface.go -destination=mocks/service_record_repository_interface_mock.go -package=mock_interfaces

// IServiceRecordRepository abstracts persistence for ServiceRecord.
//
// Lookups return a zero ServiceRecord (RecordNumber 0) when nothing matches.
// Update applies only descriptive fields and returns a zero record when the key is absent.
// DeletePending removes the record only while it is Pending:
//   - (true, nil) deleted
//   - (false, nil) no such record
//   - (false, ErrSettlementRecordNotPending) record exists but is already settled
type IServiceRecordRepository interface {
	Create(ctx context.Context, r entities.ServiceRecord) (entities.ServiceRecord, error)
	GetByNumber(ctx context.Context, recordNumber int64) (entities.ServiceRecord, error)
	List(ctx context.Context) ([]entities.ServiceRecord, error)
	ListByStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.ServiceRecord, error)
	Update(ctx context.Context, recordNumber int64, patch entities.ServiceRecordPatch) (entities.ServiceRecord, error)
	DeletePending(ctx context.Context, recordNumber int64) (bool, error)
}
