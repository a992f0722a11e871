package fichaje

import "context"

type FichajeService interface {
	// Create validates and records a clock event for the authenticated user,
	// enforcing strict ENTRADA/SALIDA alternation within the local day.
	Create(ctx context.Context, req CreateFichajeRequest) (CreateFichajeResponse, error)

	// Status reports whether the user currently has an open ENTRADA today and
	// which event type is expected next.
	Status(ctx context.Context) (StatusResponse, error)

	// MySessions returns the user's events grouped into per-day sessions.
	MySessions(ctx context.Context, filter MyFichajesFilter) ([]SessionDay, error)
}
