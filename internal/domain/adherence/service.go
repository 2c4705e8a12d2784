package adherence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pills-tracker/internal/domain/medications"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrStore envuelve cualquier fallo del store. La acción se aborta sin tocar
	// estado (no hay mutación especulativa) y no se reintenta.
	ErrStore = errors.New("store error")
)

// MedicationSource es lo que el reconciliador necesita del módulo de medicamentos.
// *medications.Service lo satisface directo.
type MedicationSource interface {
	GetByID(ctx context.Context, id string) (medications.Medication, error)
}

// Metrics desacopla los contadores (prometheus en prod, nop en tests).
type Metrics interface {
	MarkRecorded(taken bool)
	StoreFailure(op string)
}

type nopMetrics struct{}

func (nopMetrics) MarkRecorded(bool)  {}
func (nopMetrics) StoreFailure(string) {}

type Service struct {
	repo    Repository
	meds    MedicationSource
	metrics Metrics
	now     func() time.Time
}

func NewService(repo Repository, meds MedicationSource) *Service {
	return &Service{
		repo:    repo,
		meds:    meds,
		metrics: nopMetrics{},
		now:     time.Now,
	}
}

// WithMetrics inyecta el collector; nil lo deja en nop.
func (s *Service) WithMetrics(m Metrics) *Service {
	if m != nil {
		s.metrics = m
	}
	return s
}

// MarkDose es la vía de escritura: busca-y-actualiza o inserta, garantizando
// a lo sumo un log por (medicamento, día, slot). Siempre apunta al día de hoy
// según el reloj inyectado; no sirve para corregir días pasados.
// No existe "desmarcar": volver a Unlogged requiere borrar el log.
func (s *Service) MarkDose(ctx context.Context, actor Actor, medicationID, timeSlot string, taken bool) (Log, error) {
	medicationID = strings.TrimSpace(medicationID)
	if medicationID == "" || strings.TrimSpace(actor.Identity) == "" {
		return Log{}, ErrInvalidInput
	}

	med, err := s.meds.GetByID(ctx, medicationID)
	if err != nil || !med.IsActive {
		return Log{}, ErrNotFound
	}

	slot, err := time.Parse("15:04", strings.TrimSpace(timeSlot))
	if err != nil {
		return Log{}, ErrInvalidInput
	}

	now := s.now()
	target := time.Date(now.Year(), now.Month(), now.Day(), slot.Hour(), slot.Minute(), 0, 0, now.Location())

	// La búsqueda usa el scope del actor, igual que la vista que disparó la acción.
	logs, err := s.repo.List(ctx, ScopeFor(actor))
	if err != nil {
		s.metrics.StoreFailure("list")
		return Log{}, fmt.Errorf("%w: %v", ErrStore, err)
	}

	for _, l := range logs {
		if MatchesSlot(l, medicationID, target) {
			if err := s.repo.UpdateTaken(ctx, l.ID, taken); err != nil {
				s.metrics.StoreFailure("update")
				return Log{}, fmt.Errorf("%w: %v", ErrStore, err)
			}
			// Solo cambia taken; id, timestamp y reporter quedan como estaban.
			l.Taken = taken
			s.metrics.MarkRecorded(taken)
			return l, nil
		}
	}

	l := Log{
		ID:               uuid.NewString(),
		MedicationID:     medicationID,
		Timestamp:        target,
		Taken:            taken,
		MedicationName:   med.Name,
		MedicationDosage: med.Dosage,
		Reporter:         actor.Identity,
	}

	if err := s.repo.Insert(ctx, l); err != nil {
		s.metrics.StoreFailure("insert")
		return Log{}, fmt.Errorf("%w: %v", ErrStore, err)
	}
	s.metrics.MarkRecorded(taken)
	return l, nil
}

// ListFor devuelve la colección de logs visible para el actor (la que consume
// la vista de agenda para resolver estados).
func (s *Service) ListFor(ctx context.Context, actor Actor) ([]Log, error) {
	logs, err := s.repo.List(ctx, ScopeFor(actor))
	if err != nil {
		s.metrics.StoreFailure("list")
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}
	return logs, nil
}

// History devuelve los logs de un día, filtrados por reporter si corresponde,
// ordenados ascendente. El scope del actor se aplica antes del filtro: un
// actor estándar nunca ve logs ajenos por más filtro que mande.
func (s *Service) History(ctx context.Context, actor Actor, day time.Time, reporterFilter string) ([]Log, error) {
	logs, err := s.ListFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	return LogsForDay(logs, day, reporterFilter), nil
}

// AvailableReporters lista identidades distintas para el filtro por persona.
func (s *Service) AvailableReporters(ctx context.Context, actor Actor) ([]string, error) {
	logs, err := s.ListFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	return Reporters(logs), nil
}

func (s *Service) DeleteLog(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.metrics.StoreFailure("delete")
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

// ClearAll borra únicamente los logs del propio actor, para cualquier rol.
func (s *Service) ClearAll(ctx context.Context, actor Actor) error {
	if strings.TrimSpace(actor.Identity) == "" {
		return ErrInvalidInput
	}
	if err := s.repo.DeleteByReporter(ctx, actor.Identity); err != nil {
		s.metrics.StoreFailure("delete_all")
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return nil
}

// Today expone el "hoy" del reloj inyectado (medianoche local).
func (s *Service) Today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
