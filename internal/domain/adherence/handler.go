package adherence

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pills-tracker/internal/domain/access"
	"pills-tracker/internal/middleware"
	"pills-tracker/internal/platform/logger"
	"pills-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registra la vía de escritura (marcar tomas) y el historial.
// writeLimit (opcional) limita las escrituras por usuario.
func RegisterRoutes(r chi.Router, svc *Service, roles auth.RoleResolver, log logger.Logger, writeLimit func(http.Handler) http.Handler) {
	if writeLimit == nil {
		writeLimit = func(next http.Handler) http.Handler { return next }
	}

	r.Route("/logs", func(lr chi.Router) {
		lr.Get("/", listLogsHandler(svc, roles))
		lr.With(writeLimit).Post("/", markDoseHandler(svc, roles, log))
		lr.With(writeLimit).Delete("/", clearAllHandler(svc, roles, log))
		lr.With(writeLimit).Delete("/{logID}", deleteLogHandler(svc, roles, log))
	})

	r.Route("/history", func(hr chi.Router) {
		hr.Get("/", historyHandler(svc, roles))
		hr.Get("/reporters", reportersHandler(svc, roles))
	})
}

// markDoseRequest marca una toma de hoy como tomada o no tomada.
type markDoseRequest struct {
	MedicationID string `json:"medication_id"`
	TimeSlot     string `json:"time_slot"` // "HH:MM", debe ser un slot del medicamento
	Taken        bool   `json:"taken"`
}

type logResponse struct {
	ID               string    `json:"id"`
	MedicationID     string    `json:"medication_id"`
	Timestamp        time.Time `json:"timestamp"`
	Taken            bool      `json:"taken"`
	MedicationName   string    `json:"medication_name"`
	MedicationDosage string    `json:"medication_dosage"`
	Reporter         string    `json:"reporter"`
}

type historyResponse struct {
	Date        string        `json:"date"`
	IsToday     bool          `json:"is_today"`
	PreviousDay string        `json:"previous_day"`
	NextDay     string        `json:"next_day"` // igual a date cuando ya es hoy
	Logs        []logResponse `json:"logs"`
}

const dayLayout = "2006-01-02"

// caps resuelve capabilities del request; responde 401 si no hay sesión.
func caps(w http.ResponseWriter, r *http.Request, roles auth.RoleResolver) (access.Capabilities, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return access.Capabilities{}, false
	}

	c, err := access.Resolve(r.Context(), claims, roles)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return access.Capabilities{}, false
	}
	return c, true
}

// markDoseHandler godoc
// @Summary Marcar toma
// @Description Marca una toma de hoy como tomada o no tomada. Idempotente por (medicamento, día, horario): re-marcar actualiza el mismo log, nunca duplica. Cualquier rol.
// @Tags logs
// @Accept json
// @Produce json
// @Param payload body markDoseRequest true "Toma a marcar"
// @Success 200 {object} logResponse
// @Failure 400 {string} string "invalid json / time_slot inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "medication not found"
// @Failure 502 {string} string "store error"
// @Router /logs [post]
func markDoseHandler(svc *Service, roles auth.RoleResolver, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := caps(w, r, roles)
		if !ok {
			return
		}

		var req markDoseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		l, err := svc.MarkDose(r.Context(), actorFor(c), req.MedicationID, req.TimeSlot, req.Taken)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, toLogResponse(l))
		case errors.Is(err, ErrNotFound):
			http.Error(w, "medication not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "invalid input", http.StatusBadRequest)
		case errors.Is(err, ErrStore):
			// La acción no tocó estado; silencioso hacia el estado, ruidoso al log.
			log.Error("mark dose failed", map[string]any{
				"medication_id": req.MedicationID,
				"time_slot":     req.TimeSlot,
				"err":           err.Error(),
			})
			http.Error(w, "store error", http.StatusBadGateway)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// listLogsHandler devuelve la colección visible para el actor (la agenda la
// usa para pintar estados). Estándar => solo logs propios, lo decide el store.
func listLogsHandler(svc *Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := caps(w, r, roles)
		if !ok {
			return
		}

		logs, err := svc.ListFor(r.Context(), actorFor(c))
		if err != nil {
			http.Error(w, "store error", http.StatusBadGateway)
			return
		}

		out := make([]logResponse, 0, len(logs))
		for _, l := range logs {
			out = append(out, toLogResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// historyHandler godoc
// @Summary Historial por día
// @Description Logs de un día calendario, orden ascendente, con filtro opcional por persona y navegación prev/next (next clavado en hoy). Solo administradores.
// @Tags history
// @Produce json
// @Param date query string false "Día YYYY-MM-DD; por defecto hoy"
// @Param reporter query string false "Identidad exacta o 'all'"
// @Success 200 {object} historyResponse
// @Failure 400 {string} string "date inválida"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /history [get]
func historyHandler(svc *Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := caps(w, r, roles)
		if !ok {
			return
		}
		if !c.CanViewHistory() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		today := svc.Today()
		day := today
		if v := strings.TrimSpace(r.URL.Query().Get("date")); v != "" {
			parsed, err := time.ParseInLocation(dayLayout, v, today.Location())
			if err != nil {
				http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			day = parsed
		}

		reporter := strings.TrimSpace(r.URL.Query().Get("reporter"))
		if reporter == "" {
			reporter = FilterAllReporters
		}

		logs, err := svc.History(r.Context(), actorFor(c), day, reporter)
		if err != nil {
			http.Error(w, "store error", http.StatusBadGateway)
			return
		}

		out := make([]logResponse, 0, len(logs))
		for _, l := range logs {
			out = append(out, toLogResponse(l))
		}

		writeJSON(w, http.StatusOK, historyResponse{
			Date:        day.Format(dayLayout),
			IsToday:     SameDay(day, today),
			PreviousDay: PreviousDay(day).Format(dayLayout),
			NextDay:     NextDay(day, today).Format(dayLayout),
			Logs:        out,
		})
	}
}

// reportersHandler lista identidades para el filtro por persona (solo admin).
func reportersHandler(svc *Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := caps(w, r, roles)
		if !ok {
			return
		}
		if !c.CanViewHistory() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		reporters, err := svc.AvailableReporters(r.Context(), actorFor(c))
		if err != nil {
			http.Error(w, "store error", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, reporters)
	}
}

// deleteLogHandler borra un log puntual (acción de la página de historial).
func deleteLogHandler(svc *Service, roles auth.RoleResolver, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := caps(w, r, roles)
		if !ok {
			return
		}
		if !c.CanViewHistory() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		err := svc.DeleteLog(r.Context(), chi.URLParam(r, "logID"))
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "log not found", http.StatusNotFound)
		default:
			log.Error("delete log failed", map[string]any{"err": err.Error()})
			http.Error(w, "store error", http.StatusBadGateway)
		}
	}
}

// clearAllHandler borra todos los logs del propio actor, para cualquier rol.
func clearAllHandler(svc *Service, roles auth.RoleResolver, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, ok := caps(w, r, roles)
		if !ok {
			return
		}

		if err := svc.ClearAll(r.Context(), actorFor(c)); err != nil {
			log.Error("clear all logs failed", map[string]any{
				"reporter": c.Identity,
				"err":      err.Error(),
			})
			http.Error(w, "store error", http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// actorFor traduce capabilities al actor del motor. El scope de logs sale del
// actor: estándar queda clavado a sus propios logs, mande el filtro que mande.
func actorFor(c access.Capabilities) Actor {
	return Actor{Identity: c.Identity, Admin: c.IsAdmin()}
}

func toLogResponse(l Log) logResponse {
	return logResponse{
		ID:               l.ID,
		MedicationID:     l.MedicationID,
		Timestamp:        l.Timestamp,
		Taken:            l.Taken,
		MedicationName:   l.MedicationName,
		MedicationDosage: l.MedicationDosage,
		Reporter:         l.Reporter,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
