package fichaje

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func event(typ Type, hour, min int) *Fichaje {
	return &Fichaje{
		ID:        "f1",
		UserID:    "u1",
		Type:      typ,
		Timestamp: time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC),
	}
}

func TestExpectedNextType(t *testing.T) {
	assert.Equal(t, TypeEntrada, ExpectedNextType(nil), "empty day expects ENTRADA")
	assert.Equal(t, TypeSalida, ExpectedNextType(event(TypeEntrada, 9, 0)))
	assert.Equal(t, TypeEntrada, ExpectedNextType(event(TypeSalida, 14, 0)))
}

func TestValidateNext(t *testing.T) {
	tests := []struct {
		name      string
		last      *Fichaje
		submitted Type
		wantErr   error
	}{
		{"first entrada of day", nil, TypeEntrada, nil},
		{"salida without entrada", nil, TypeSalida, ErrFicharEntradaPrimero},
		{"salida after entrada", event(TypeEntrada, 9, 0), TypeSalida, nil},
		{"double entrada", event(TypeEntrada, 9, 0), TypeEntrada, ErrFicharSalidaPrimero},
		{"entrada after salida", event(TypeSalida, 14, 0), TypeEntrada, nil},
		{"double salida", event(TypeSalida, 14, 0), TypeSalida, ErrFicharEntradaPrimero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNext(tt.last, tt.submitted)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// The repository serializes submissions of one user with an advisory lock;
// under that serialization only the first of many simultaneous ENTRADA
// attempts may pass validation.
func TestValidateNext_OneWinnerUnderSerialization(t *testing.T) {
	var (
		mu   sync.Mutex
		last *Fichaje
		wins int
		wg   sync.WaitGroup
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			if err := ValidateNext(last, TypeEntrada); err == nil {
				last = event(TypeEntrada, 9, 0)
				wins++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestHasActiveEntry(t *testing.T) {
	assert.False(t, HasActiveEntry(nil))
	assert.True(t, HasActiveEntry(event(TypeEntrada, 9, 0)))
	assert.False(t, HasActiveEntry(event(TypeSalida, 14, 0)))
}
