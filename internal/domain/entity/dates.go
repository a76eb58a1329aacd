package entity

import "time"

// StartOfDay trunca t a la medianoche de su zona horaria.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDay día calendario de t (año, mes y día leídos en su propia zona) como medianoche UTC.
// Las fechas guardadas son medianoches UTC y "hoy" llega en hora local: ambos lados se
// comparan siempre por esta forma.
func CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBetween indica si el día calendario de date cae en [from, to], ambos inclusivos.
func DayBetween(date, from, to time.Time) bool {
	day := CalendarDay(date)
	return !day.Before(CalendarDay(from)) && !day.After(CalendarDay(to))
}

// WithinDays indica si la fecha de date cae en [hoy, hoy+days], ambos extremos inclusivos.
func WithinDays(date, now time.Time, days int) bool {
	from := CalendarDay(now)
	return DayBetween(date, from, from.AddDate(0, 0, days))
}
