package adjustment

import "context"

type AdjustmentService interface {
	Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	ListMine(ctx context.Context) ([]AdjustmentResponse, error)

	// ListPending returns the open requests the caller may resolve: their own
	// department for managers, every department for admins.
	ListPending(ctx context.Context) ([]AdjustmentResponse, error)

	// Approve resolves the request and rewrites the disputed fichaje's
	// timestamp in the same transaction.
	Approve(ctx context.Context, id string) (AdjustmentResponse, error)

	Reject(ctx context.Context, req RejectAdjustmentRequest) (AdjustmentResponse, error)
}
