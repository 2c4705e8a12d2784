package medications

import "time"

// Medication representa un medicamento recurrente con sus tomas diarias.
type Medication struct {
	ID string

	Name    string
	Dosage  string // texto libre, ej: "100mg"
	Notes   string

	// Frequency es la cantidad de tomas diarias previstas.
	// TimeSlots son los horarios "HH:MM" (24h); se espera len(TimeSlots) == Frequency,
	// pero el store no lo exige (invariante blanda, ver service).
	Frequency int
	TimeSlots []string

	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
