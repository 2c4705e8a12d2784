package adherence

import (
	"sort"
	"time"
)

// FilterAllReporters es el valor centinela "sin filtro por persona".
const FilterAllReporters = "all"

// LogsForDay selecciona los logs cuyo timestamp cae en el mismo día calendario
// que day, opcionalmente acotados a un reporter exacto, ordenados ascendente
// por timestamp. Empates conservan el orden del store (sort estable).
// Nunca devuelve error: sin matches, slice vacío.
func LogsForDay(logs []Log, day time.Time, reporterFilter string) []Log {
	out := make([]Log, 0)
	for _, l := range logs {
		if !SameDay(l.Timestamp, day) {
			continue
		}
		if reporterFilter != "" && reporterFilter != FilterAllReporters && l.Reporter != reporterFilter {
			continue
		}
		out = append(out, l)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Reporters devuelve las identidades distintas presentes en logs, orden lexicográfico.
func Reporters(logs []Log) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, l := range logs {
		if _, ok := seen[l.Reporter]; ok {
			continue
		}
		seen[l.Reporter] = struct{}{}
		out = append(out, l.Reporter)
	}
	sort.Strings(out)
	return out
}

// SameDay compara por día calendario (no intervalos de 24h).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func PreviousDay(day time.Time) time.Time {
	return day.AddDate(0, 0, -1)
}

// NextDay avanza un día pero nunca pasa de hoy: si day ya es hoy (o posterior),
// devuelve day sin cambios.
func NextDay(day, today time.Time) time.Time {
	if !startOfDay(day).Before(startOfDay(today)) {
		return day
	}
	return day.AddDate(0, 0, 1)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
