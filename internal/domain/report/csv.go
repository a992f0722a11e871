package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// utf8BOM keeps spreadsheet applications from misreading accented characters.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ToCSV renders the report as semicolon-delimited UTF-8 text with a leading
// byte-order mark.
func (r MonthlyReport) ToCSV() ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'

	header := [][]string{
		{fmt.Sprintf("Informe de asistencia — %s", r.UserName)},
		{fmt.Sprintf("%s %d", MonthName(r.Month), r.Year)},
		{},
		{"Fecha", "Día", "Estado", "Entrada", "Salida", "Horas", "Incidencias"},
	}
	if err := w.WriteAll(header); err != nil {
		return nil, err
	}

	for _, row := range r.Rows {
		hours := ""
		if row.Status == StatusWorked {
			hours = strconv.FormatFloat(row.Hours, 'f', 2, 64)
		}
		record := []string{row.Date, row.Weekday, row.Status, row.FirstEntry, row.LastExit, hours, row.Incidents}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	totals := [][]string{
		{},
		{"Días trabajados", strconv.Itoa(r.DaysWorked)},
		{"Vacaciones", strconv.Itoa(r.VacationDays)},
		{"Ausencias", strconv.Itoa(r.AbsentDays)},
		{"Retrasos", strconv.Itoa(r.LateArrivals)},
		{"Horas acumuladas", strconv.FormatFloat(r.TotalHours, 'f', 2, 64)},
	}
	if err := w.WriteAll(totals); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the download filename for the report.
func (r MonthlyReport) Filename() string {
	return fmt.Sprintf("asistencia_%s_%02d_%d.csv", sanitizeName(r.UserName), r.Month, r.Year)
}

func sanitizeName(name string) string {
	out := make([]rune, 0, len(name))
	for _, c := range name {
		switch {
		case c == ' ':
			out = append(out, '_')
		case c == '/' || c == '\\' || c == ';':
			// skip
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
