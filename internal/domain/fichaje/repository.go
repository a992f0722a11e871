package fichaje

import (
	"context"
	"time"
)

// FichajeRepository defines data access for clock events. GetLastOfDay and
// Create are called together inside one transaction by the sequencer; the
// repository joins the ambient transaction carried in the context.
type FichajeRepository interface {
	// AcquireUserLock serializes concurrent clock submissions of one user for
	// the lifetime of the surrounding transaction. Must be called inside a
	// transaction before GetLastOfDay.
	AcquireUserLock(ctx context.Context, userID string) error

	Create(ctx context.Context, f Fichaje) (Fichaje, error)

	GetByID(ctx context.Context, id string) (Fichaje, error)

	// GetLastOfDay returns the most recent event of the user inside the
	// half-open day window [dayStart, dayEnd), or nil when the day is empty.
	GetLastOfDay(ctx context.Context, userID string, dayStart, dayEnd time.Time) (*Fichaje, error)

	// ListByUserRange returns the user's events with timestamp in [from, to),
	// oldest first.
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]Fichaje, error)

	// UpdateTimestamp overwrites the event timestamp. Only the adjustment
	// workflow calls this, inside its approval transaction.
	UpdateTimestamp(ctx context.Context, id string, ts time.Time) error
}
