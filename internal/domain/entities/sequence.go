package entities

// SequenceKind names an independent identifier counter.
type SequenceKind string

const (
	SequenceServiceRecord SequenceKind = "service_record"
	SequencePayment       SequenceKind = "payment"
	SequenceService       SequenceKind = "service"
)
