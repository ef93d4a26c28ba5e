package interfaces

import (
	"context"
	"crpms_ledger/internal/domain/entities"
	"time"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface_mock.go -package=mock_interfaces

// IPaymentRepository abstracts persistence for Payment.
//
// Settle is the only way to create a payment. In one atomic unit it:
//   - flips the record identified by p.RecordNumber from Pending to Paid,
//   - allocates the next payment number,
//   - stores the payment under that number.
//
// Either all three effects land or none does. A caller whose record is not Pending gets
// ErrSettlementRecordNotPending (or ErrSettlementRecordMissing) and consumes no payment number.
//
// ListByDateRange is inclusive on both ends.
type IPaymentRepository interface {
	Settle(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByRecordNumber(ctx context.Context, recordNumber int64) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.Payment, error)
}
