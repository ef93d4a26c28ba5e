package interfaces

import (
	"context"
	"crpms_ledger/internal/domain/entities"
)

//go:generate mockgen -source=sequence_interface.go -destination=mocks/sequence_interface_mock.go -package=mock_interfaces

// ISequencer allocates identifiers per entity kind.
//
// Next must be an atomic increment-and-fetch on the store: two concurrent callers never receive
// the same value. A failure after Next returns leaves a gap, never a duplicate.
type ISequencer interface {
	Next(ctx context.Context, kind entities.SequenceKind) (int64, error)
}
