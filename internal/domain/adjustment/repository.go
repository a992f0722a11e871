package adjustment

import (
	"context"
	"time"
)

type AdjustmentRepository interface {
	Create(ctx context.Context, a AdjustmentRequest) (AdjustmentRequest, error)

	GetByID(ctx context.Context, id string) (AdjustmentRequest, error)

	// HasPendingForFichaje reports whether another PENDING request exists for
	// the fichaje. Enforces one outstanding dispute per event.
	HasPendingForFichaje(ctx context.Context, fichajeID string) (bool, error)

	// Resolve moves a PENDING request to a terminal status, recording the
	// resolving manager and instant. It must affect zero rows when the
	// request is no longer PENDING so re-processing surfaces as a conflict.
	Resolve(ctx context.Context, id string, status Status, managerID string, rejectionReason *string, resolvedAt time.Time) error

	ListByUser(ctx context.Context, userID string) ([]AdjustmentRequest, error)

	// ListPending returns pending requests; department == "" means all
	// departments (admin view).
	ListPending(ctx context.Context, department string) ([]AdjustmentRequest, error)
}
