package adjustment

import "time"

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// AdjustmentRequest is a disputed-timestamp correction tied to one fichaje.
// PENDING → APPROVED|REJECTED, both terminal, both exactly once. Approval
// rewrites the target fichaje's timestamp in the same transaction.
type AdjustmentRequest struct {
	ID                 string
	FichajeID          string
	UserID             string
	OriginalTimestamp  time.Time
	RequestedTimestamp time.Time
	Reason             string
	Status             Status
	ManagerID          *string
	RejectionReason    *string
	ResolvedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// DTO / Join
	UserName   *string
	Department *string
}

// IsResolved reports whether the request has reached a terminal state.
func (a *AdjustmentRequest) IsResolved() bool {
	return a.Status != StatusPending
}
