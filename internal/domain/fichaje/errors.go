package fichaje

import "errors"

// Fichaje domain errors. Sequencing messages are in the employee-facing
// language of the product.
var (
	ErrFicharSalidaPrimero  = errors.New("Debes fichar salida primero")
	ErrFicharEntradaPrimero = errors.New("Debes fichar entrada primero")

	ErrFichajeNotFound   = errors.New("fichaje not found")
	ErrMissingDepartment = errors.New("user has no department assigned")
)
