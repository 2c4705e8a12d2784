package adherence

import "time"

// Actor es la identidad que ejecuta la acción (ya autenticada).
type Actor struct {
	Identity string // email del usuario que reporta
	Admin    bool
}

// Log registra si una toma puntual (medicamento + horario) se tomó o no.
// MedicationName/MedicationDosage/Reporter se desnormalizan al escribir
// para que el historial sobreviva ediciones posteriores del medicamento.
type Log struct {
	ID           string
	MedicationID string

	// Timestamp se construye con el día calendario + hora:minuto del slot.
	// La clave efectiva de unicidad es (MedicationID, año/mes/día, hora, minuto);
	// el store no la exige, la garantiza la reconciliación de MarkDose.
	Timestamp time.Time
	Taken     bool

	MedicationName   string
	MedicationDosage string
	Reporter         string
}

// Scope limita qué logs devuelve el store. Con SelfOnly, solo los del Identity:
// así se aplica realmente la restricción de rol estándar (no en el filtro de lectura).
type Scope struct {
	SelfOnly bool
	Identity string
}

// ScopeFor deriva el scope de consulta del actor: admin ve todo, estándar solo lo suyo.
func ScopeFor(actor Actor) Scope {
	if actor.Admin {
		return Scope{}
	}
	return Scope{SelfOnly: true, Identity: actor.Identity}
}

// MatchesSlot aplica la regla de matching de la reconciliación:
// mismo medicamento y mismo año/mes/día/hora/minuto (segundos ignorados).
func MatchesSlot(l Log, medicationID string, target time.Time) bool {
	if l.MedicationID != medicationID {
		return false
	}
	ly, lm, ld := l.Timestamp.Date()
	ty, tm, td := target.Date()
	return ly == ty && lm == tm && ld == td &&
		l.Timestamp.Hour() == target.Hour() &&
		l.Timestamp.Minute() == target.Minute()
}
