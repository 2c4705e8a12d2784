package schedule

import (
	"strings"
	"time"

	"pills-tracker/internal/domain/adherence"
)

// ResolveStatus determina el estado de una instancia contra la colección de logs
// para el día forDay. Lectura pura: no deduplica; si el store llegara a tener
// más de un log para el mismo slot (no debería, ver MarkDose), gana el primer
// match en orden del store.
func ResolveStatus(instance DoseSlot, logs []adherence.Log, forDay time.Time) Status {
	slot, err := time.Parse("15:04", strings.TrimSpace(instance.TimeSlot))
	if err != nil {
		return StatusUnlogged
	}

	target := time.Date(forDay.Year(), forDay.Month(), forDay.Day(), slot.Hour(), slot.Minute(), 0, 0, forDay.Location())

	for _, l := range logs {
		if adherence.MatchesSlot(l, instance.Medication.ID, target) {
			if l.Taken {
				return StatusTaken
			}
			return StatusNotTaken
		}
	}
	return StatusUnlogged
}
