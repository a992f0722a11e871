package fichaje

import "time"

type Type string

const (
	TypeEntrada Type = "ENTRADA"
	TypeSalida  Type = "SALIDA"
)

var TypeValues = []string{
	string(TypeEntrada),
	string(TypeSalida),
}

// Fichaje is a single clock event. The department is stamped at creation time
// from the user's current department so historic records stay stable when the
// user transfers later. Immutable once created except through the adjustment
// workflow.
type Fichaje struct {
	ID         string
	UserID     string
	Department string
	Type       Type
	Timestamp  time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO / Join
	UserName *string
}
