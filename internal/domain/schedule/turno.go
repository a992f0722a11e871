package schedule

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type Turno string

const (
	TurnoManana   Turno = "MAÑANA"
	TurnoTarde    Turno = "TARDE"
	TurnoCompleta Turno = "COMPLETA"
	TurnoFlexible Turno = "FLEXIBLE"
)

var turnoLabels = map[Turno]string{
	TurnoManana:   "Turno de mañana",
	TurnoTarde:    "Turno de tarde",
	TurnoCompleta: "Jornada completa",
	TurnoFlexible: "Horario flexible",
}

// TurnoInfo is the classification of a clock timestamp within a resolved day.
type TurnoInfo struct {
	Turno         Turno  `json:"turno"`
	ExpectedEntry string `json:"expected_entry"`
	ExpectedExit  string `json:"expected_exit"`
	Label         string `json:"label"`
}

// MinutosDe converts a validated HH:mm string to minutes from midnight.
// Malformed input yields 0 rather than a panic; callers validate at write
// time so this never decides business outcomes.
func MinutosDe(hora string) int {
	parts := strings.SplitN(hora, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}

// DetectTurno classifies which portion of the working day ts belongs to.
// Pure and total over every reachable DaySchedule shape; a nil day (day off)
// yields nil.
//
// For a jornada partida the morning/afternoon boundary is the midpoint of the
// configured break window, not a fixed hour: an event strictly before the
// midpoint is MAÑANA, at or after it is TARDE.
func DetectTurno(day *DaySchedule, ts time.Time, loc *time.Location) *TurnoInfo {
	if day == nil {
		return nil
	}

	if day.FlexibleSchedule {
		return &TurnoInfo{
			Turno:         TurnoFlexible,
			ExpectedEntry: day.HoraEntrada,
			ExpectedExit:  day.HoraSalida,
			Label:         turnoLabels[TurnoFlexible],
		}
	}

	if day.IsSplit() {
		salidaManana := MinutosDe(*day.HoraSalidaManana)
		entradaTarde := MinutosDe(*day.HoraEntradaTarde)
		midpoint := int(math.Round(float64(salidaManana+entradaTarde) / 2))

		local := ts.In(loc)
		eventMinutes := local.Hour()*60 + local.Minute()

		if eventMinutes < midpoint {
			return &TurnoInfo{
				Turno:         TurnoManana,
				ExpectedEntry: day.HoraEntrada,
				ExpectedExit:  *day.HoraSalidaManana,
				Label:         turnoLabels[TurnoManana],
			}
		}
		return &TurnoInfo{
			Turno:         TurnoTarde,
			ExpectedEntry: *day.HoraEntradaTarde,
			ExpectedExit:  day.HoraSalida,
			Label:         turnoLabels[TurnoTarde],
		}
	}

	return &TurnoInfo{
		Turno:         TurnoCompleta,
		ExpectedEntry: day.HoraEntrada,
		ExpectedExit:  day.HoraSalida,
		Label:         turnoLabels[TurnoCompleta],
	}
}
