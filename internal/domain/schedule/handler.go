package schedule

import (
	"encoding/json"
	"net/http"
	"strings"

	"pills-tracker/internal/domain/access"
	"pills-tracker/internal/domain/adherence"
	"pills-tracker/internal/domain/medications"
	"pills-tracker/internal/middleware"
	"pills-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, medsSvc *medications.Service, adhSvc *adherence.Service, roles auth.RoleResolver) {
	r.Get("/schedule", scheduleHandler(medsSvc, adhSvc, roles))
}

type doseResponse struct {
	MedicationID string `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Notes        string `json:"notes,omitempty"`
	TimeSlot     string `json:"time_slot"`
	Status       Status `json:"status"`
}

type periodResponse struct {
	Period Period         `json:"period"`
	Doses  []doseResponse `json:"doses"`
}

type scheduleResponse struct {
	Date    string           `json:"date"`
	Periods []periodResponse `json:"periods"`
}

// scheduleHandler godoc
// @Summary Agenda de hoy
// @Description Expande los medicamentos activos en tomas de hoy, agrupadas por franja (morning/afternoon/evening) con su estado taken/not_taken/unlogged. Filtro opcional ?period=. Cualquier rol autenticado.
// @Tags schedule
// @Produce json
// @Param period query string false "morning|afternoon|evening|all"
// @Success 200 {object} scheduleResponse
// @Failure 401 {string} string "unauthorized"
// @Router /schedule [get]
func scheduleHandler(medsSvc *medications.Service, adhSvc *adherence.Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		c, err := access.Resolve(r.Context(), claims, roles)
		if err != nil || !c.CanViewSchedule() {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		active, err := medsSvc.ListActive(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		actor := adherence.Actor{Identity: c.Identity, Admin: c.IsAdmin()}
		logs, err := adhSvc.ListFor(r.Context(), actor)
		if err != nil {
			http.Error(w, "store error", http.StatusBadGateway)
			return
		}

		today := adhSvc.Today()
		grouped := GroupByPeriod(Expand(active))

		// Filtro de franja de la UI; "all" (o vacío) muestra todas.
		selected := Period(strings.TrimSpace(r.URL.Query().Get("period")))

		periods := make([]periodResponse, 0, len(PeriodOrder))
		for _, p := range PeriodOrder {
			if selected != "" && selected != "all" && selected != p {
				continue
			}
			slots := grouped[p]
			if len(slots) == 0 {
				continue // franjas vacías no se listan
			}

			doses := make([]doseResponse, 0, len(slots))
			for _, s := range slots {
				doses = append(doses, doseResponse{
					MedicationID: s.Medication.ID,
					Name:         s.Medication.Name,
					Dosage:       s.Medication.Dosage,
					Notes:        s.Medication.Notes,
					TimeSlot:     s.TimeSlot,
					Status:       ResolveStatus(s, logs, today),
				})
			}
			periods = append(periods, periodResponse{Period: p, Doses: doses})
		}

		writeJSON(w, http.StatusOK, scheduleResponse{
			Date:    today.Format("2006-01-02"),
			Periods: periods,
		})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
