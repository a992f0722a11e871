package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListOverlapping returns the user's non-rejected requests overlapping
	// [from, to] at date precision. The report builder consumes this.
	ListOverlapping(ctx context.Context, userID string, from, to time.Time) ([]LeaveRequest, error)

	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// UpdateStatus resolves a pending request. Zero rows affected means the
	// request was already processed.
	UpdateStatus(ctx context.Context, id string, status Status) error
}
