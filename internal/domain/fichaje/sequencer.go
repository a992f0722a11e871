package fichaje

// The sequencing state machine is split into a pure decide step (this file)
// and a thin transactional apply step in the service, so the decision logic
// is unit-testable without a database.

// ExpectedNextType returns the only legal type for the next clock event of
// the day: ENTRADA when the day has no events or its last event was a SALIDA,
// SALIDA otherwise.
func ExpectedNextType(last *Fichaje) Type {
	if last == nil || last.Type == TypeSalida {
		return TypeEntrada
	}
	return TypeSalida
}

// ValidateNext checks a submitted type against the sequencer-computed
// expected type and returns the validation error naming what the user must
// do instead.
func ValidateNext(last *Fichaje, submitted Type) error {
	expected := ExpectedNextType(last)
	if submitted == expected {
		return nil
	}
	if expected == TypeSalida {
		return ErrFicharSalidaPrimero
	}
	return ErrFicharEntradaPrimero
}

// HasActiveEntry reports whether the day currently has an open session.
func HasActiveEntry(last *Fichaje) bool {
	return last != nil && last.Type == TypeEntrada
}
