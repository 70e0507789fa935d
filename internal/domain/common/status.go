package common

// Status mirrors the transaction lifecycle shared by collections,
// token classes, mint transactions and burn transactions.
// Transitions only move forward: pending → completed / failed.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusFailed
}
