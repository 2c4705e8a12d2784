package schedule

import "pills-tracker/internal/domain/medications"

// Period agrupa un horario en franja gruesa del día.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// PeriodOrder es el orden fijo de presentación.
var PeriodOrder = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}

// DoseSlot es una instancia agendable: un medicamento en uno de sus horarios,
// para un día. Derivada, nunca se persiste.
type DoseSlot struct {
	Medication medications.Medication
	TimeSlot   string // "HH:MM" crudo del medicamento
	Period     Period
}

// Status es el estado tri-valuado de una toma. Tipo explícito a propósito:
// "sin log" no se confunde con "logueado como no tomada".
type Status string

const (
	StatusTaken    Status = "taken"
	StatusNotTaken Status = "not_taken"
	StatusUnlogged Status = "unlogged"
)
