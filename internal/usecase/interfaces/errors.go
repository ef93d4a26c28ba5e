package interfaces

import "errors"

// Store-level outcomes that repositories report and use cases translate.
var (
	// ErrAlreadyExists is returned when a conditional create finds the key taken.
	ErrAlreadyExists = errors.New("item already exists")
	// ErrSettlementRecordMissing is returned by Settle when the record does not exist.
	ErrSettlementRecordMissing = errors.New("settlement: service record missing")
	// ErrSettlementRecordNotPending is returned by Settle when the record is no longer Pending.
	ErrSettlementRecordNotPending = errors.New("settlement: service record not pending")
	// ErrSequenceContention is returned when a guarded counter advance keeps losing.
	// It is transient and safe to retry.
	ErrSequenceContention = errors.New("sequence contention")
)
