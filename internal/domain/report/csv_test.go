package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToCSV(t *testing.T) {
	rep := MonthlyReport{
		UserName: "Ana García",
		Month:    3,
		Year:     2026,
		Rows: []DayRow{
			{Date: "2026-03-02", Weekday: "Lunes", Status: StatusWorked, FirstEntry: "09:00", LastExit: "18:00", Hours: 8.5, Incidents: "Retraso"},
			{Date: "2026-03-03", Weekday: "Martes", Status: StatusAbsence},
		},
		DaysWorked:   1,
		VacationDays: 2,
		AbsentDays:   1,
		LateArrivals: 1,
		TotalHours:   8.5,
	}

	out, err := rep.ToCSV()
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}), "spreadsheet apps need the BOM")

	lines := strings.Split(strings.TrimRight(string(out[3:]), "\n"), "\n")
	assert.Equal(t, "Informe de asistencia — Ana García", lines[0])
	assert.Equal(t, "Marzo 2026", lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, "Fecha;Día;Estado;Entrada;Salida;Horas;Incidencias", lines[3])
	assert.Equal(t, "2026-03-02;Lunes;Trabajado;09:00;18:00;8.50;Retraso", lines[4])
	assert.Equal(t, "2026-03-03;Martes;Ausencia;;;;", lines[5], "hours stay blank on non-worked days")

	joined := string(out)
	assert.Contains(t, joined, "Días trabajados;1")
	assert.Contains(t, joined, "Vacaciones;2")
	assert.Contains(t, joined, "Ausencias;1")
	assert.Contains(t, joined, "Retrasos;1")
	assert.Contains(t, joined, "Horas acumuladas;8.50")
}

func TestFilename(t *testing.T) {
	rep := MonthlyReport{UserName: "Ana García", Month: 3, Year: 2026}
	assert.Equal(t, "asistencia_Ana_García_03_2026.csv", rep.Filename())

	rep.UserName = `Eva/;\ Ruiz`
	assert.Equal(t, "asistencia_Eva_Ruiz_03_2026.csv", rep.Filename())
}
