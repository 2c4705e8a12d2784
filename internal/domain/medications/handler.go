package medications

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pills-tracker/internal/domain/access"
	"pills-tracker/internal/middleware"
	"pills-tracker/internal/platform/logger"
	"pills-tracker/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, roles auth.RoleResolver, log logger.Logger) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc, roles))
		mr.Post("/", createMedicationHandler(svc, roles))
		mr.Patch("/{medicationID}", updateMedicationHandler(svc, roles))
		mr.Post("/{medicationID}/toggle", toggleMedicationHandler(svc, roles))
		mr.Delete("/{medicationID}", deleteMedicationHandler(svc, roles, log))
	})
}

// createMedicationRequest es el cuerpo para alta/edición de medicamentos.
type createMedicationRequest struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency int      `json:"frequency"`
	TimeSlots []string `json:"time_slots"` // opcional; vacío => horarios por defecto
	Notes     string   `json:"notes"`
}

type updateMedicationRequest struct {
	Name      *string  `json:"name"`
	Dosage    *string  `json:"dosage"`
	Frequency *int     `json:"frequency"`
	TimeSlots []string `json:"time_slots"`
	Notes     *string  `json:"notes"`
}

type medicationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency int       `json:"frequency"`
	TimeSlots []string  `json:"time_slots"`
	Notes     string    `json:"notes"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type deleteMedicationResponse struct {
	Deleted bool   `json:"deleted"`
	Warning string `json:"warning,omitempty"`
}

// adminCaps resuelve capabilities y exige rol administrador.
// Devuelve false si ya respondió (401/403).
func adminCaps(w http.ResponseWriter, r *http.Request, roles auth.RoleResolver) (access.Capabilities, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return access.Capabilities{}, false
	}

	caps, err := access.Resolve(r.Context(), claims, roles)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return access.Capabilities{}, false
	}
	if !caps.CanManageMedications() {
		http.Error(w, "forbidden", http.StatusForbidden)
		return access.Capabilities{}, false
	}
	return caps, true
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Description Lista todos los medicamentos (activos e inactivos) para la página de administración. Solo administradores.
// @Tags medications
// @Produce json
// @Success 200 {array} medicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /medications [get]
func listMedicationsHandler(svc *Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := adminCaps(w, r, roles); !ok {
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]medicationResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicationResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createMedicationHandler godoc
// @Summary Crear medicamento
// @Description Da de alta un medicamento activo. Sin time_slots se generan horarios equiespaciados según frequency. Solo administradores.
// @Tags medications
// @Accept json
// @Produce json
// @Param payload body createMedicationRequest true "Datos del medicamento"
// @Success 201 {object} medicationResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Router /medications [post]
func createMedicationHandler(svc *Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := adminCaps(w, r, roles); !ok {
			return
		}

		var req createMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
			TimeSlots: req.TimeSlots,
			Notes:     req.Notes,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toMedicationResponse(m))
	}
}

func updateMedicationHandler(svc *Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := adminCaps(w, r, roles); !ok {
			return
		}

		var req updateMedicationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "medicationID"), UpdateInput{
			Name:      req.Name,
			Dosage:    req.Dosage,
			Frequency: req.Frequency,
			TimeSlots: req.TimeSlots,
			Notes:     req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "medication not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

func toggleMedicationHandler(svc *Service, roles auth.RoleResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := adminCaps(w, r, roles); !ok {
			return
		}

		m, err := svc.Toggle(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				http.Error(w, "medication not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toMedicationResponse(m))
	}
}

// deleteMedicationHandler godoc
// @Summary Borrar medicamento
// @Description Borra el medicamento y en cascada sus logs. Si la limpieza de logs falla, el borrado queda y se devuelve warning. Solo administradores.
// @Tags medications
// @Produce json
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} deleteMedicationResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "medication not found"
// @Router /medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service, roles auth.RoleResolver, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := adminCaps(w, r, roles); !ok {
			return
		}

		id := chi.URLParam(r, "medicationID")
		err := svc.Delete(r.Context(), id)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, deleteMedicationResponse{Deleted: true})
		case errors.Is(err, ErrCascade):
			// El medicamento ya no existe; la inconsistencia se reporta, no se oculta.
			log.Warn("medication deleted but log cleanup failed", map[string]any{
				"medication_id": id,
				"err":           err.Error(),
			})
			writeJSON(w, http.StatusOK, deleteMedicationResponse{
				Deleted: true,
				Warning: "log cleanup failed; some orphan logs may remain",
			})
		case errors.Is(err, ErrNotFound):
			http.Error(w, "medication not found", http.StatusNotFound)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

func toMedicationResponse(m Medication) medicationResponse {
	return medicationResponse{
		ID:        m.ID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Frequency: m.Frequency,
		TimeSlots: m.TimeSlots,
		Notes:     m.Notes,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
