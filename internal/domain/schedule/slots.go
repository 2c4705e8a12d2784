package schedule

import (
	"strconv"
	"strings"

	"pills-tracker/internal/domain/medications"
)

// Categorize mapea un horario "HH:MM" a su franja mirando solo la hora:
// 5-11 morning, 12-16 afternoon, el resto (17-23 y 0-4) evening.
// Pura y total: entrada malformada cae en evening (hora 0).
func Categorize(timeSlot string) Period {
	hour := 0
	if i := strings.IndexByte(timeSlot, ':'); i > 0 {
		if h, err := strconv.Atoi(timeSlot[:i]); err == nil {
			hour = h
		}
	}

	switch {
	case hour >= 5 && hour < 12:
		return PeriodMorning
	case hour >= 12 && hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}

// Expand convierte cada medicamento en una instancia por horario, con su franja.
// Espera la lista ya filtrada por IsActive (el caller decide eso); acá no se
// opina sobre activación. Orden: medicamentos como vienen, slots en su orden
// original. Determinística, sin efectos.
func Expand(meds []medications.Medication) []DoseSlot {
	out := make([]DoseSlot, 0, len(meds))
	for _, m := range meds {
		for _, slot := range m.TimeSlots {
			out = append(out, DoseSlot{
				Medication: m,
				TimeSlot:   slot,
				Period:     Categorize(slot),
			})
		}
	}
	return out
}

// GroupByPeriod agrupa instancias ya expandidas, para render en orden
// morning→afternoon→evening. Franjas vacías quedan sin entrada en el mapa.
func GroupByPeriod(slots []DoseSlot) map[Period][]DoseSlot {
	out := make(map[Period][]DoseSlot)
	for _, s := range slots {
		out[s.Period] = append(out[s.Period], s)
	}
	return out
}
