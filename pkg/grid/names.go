package grid

import (
	"fmt"
	"strings"
	"time"
)

var monthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

var dayHeaders = [7]string{"DOM", "LUN", "MAR", "MIÉ", "JUE", "VIE", "SÁB"}

var dayNames = [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}

// MonthName returns the display name of a 0-based month.
func MonthName(month int) string {
	_, month = ShiftMonth(0, month, 0)
	return monthNames[month]
}

// DayHeaders returns the seven column headers starting at the week start.
func DayHeaders(ws WeekStart) []string {
	out := make([]string, Columns)
	for i, h := range dayHeaders {
		out[ws.Rotate(time.Weekday(i))] = h
	}
	return out
}

// LongDate renders a date the way the reminder dialog titles it, for example
// "martes, 5 de marzo de 2024".
func LongDate(year, month, day int) string {
	wd := Weekday(year, month, day)
	return fmt.Sprintf("%s, %d de %s de %d", dayNames[wd], day, strings.ToLower(MonthName(month)), year)
}
