package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrCascade: el medicamento se borró pero la limpieza de sus logs falló.
	// El borrado NO se revierte; el caller decide cómo reportarlo.
	ErrCascade = errors.New("log cleanup failed")
)

// LogPurger borra los logs de adherencia asociados a un medicamento.
// Lo implementa el repo de adherence; se define acá para no acoplar paquetes.
type LogPurger interface {
	DeleteByMedication(ctx context.Context, medicationID string) error
}

type Service struct {
	repo Repository
	logs LogPurger
	now  func() time.Time
}

func NewService(repo Repository, logs LogPurger) *Service {
	return &Service{
		repo: repo,
		logs: logs,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Dosage    string
	Frequency int
	TimeSlots []string
	Notes     string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medication, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Medication{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Dosage) == "" {
		return Medication{}, ErrInvalidInput
	}
	if in.Frequency <= 0 {
		return Medication{}, ErrInvalidInput
	}

	slots := in.TimeSlots
	if len(slots) == 0 {
		slots = DefaultTimeSlots(in.Frequency)
	}

	now := s.now()
	m := Medication{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Dosage:    strings.TrimSpace(in.Dosage),
		Frequency: in.Frequency,
		TimeSlots: slots,
		Notes:     strings.TrimSpace(in.Notes),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

type UpdateInput struct {
	Name      *string
	Dosage    *string
	Frequency *int
	TimeSlots []string // si viene, se toma tal cual (sin revalidar contra Frequency)
	Notes     *string
}

// Update edita un medicamento. Si cambia Frequency y no vienen slots explícitos,
// se regeneran los horarios por defecto para mantener len(TimeSlots) == Frequency.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrInvalidInput
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Medication{}, ErrNotFound
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return Medication{}, ErrInvalidInput
		}
		m.Name = strings.TrimSpace(*in.Name)
	}
	if in.Dosage != nil {
		m.Dosage = strings.TrimSpace(*in.Dosage)
	}
	if in.Notes != nil {
		m.Notes = strings.TrimSpace(*in.Notes)
	}

	if in.Frequency != nil {
		if *in.Frequency <= 0 {
			return Medication{}, ErrInvalidInput
		}
		if *in.Frequency != m.Frequency && len(in.TimeSlots) == 0 {
			m.TimeSlots = DefaultTimeSlots(*in.Frequency)
		}
		m.Frequency = *in.Frequency
	}
	if len(in.TimeSlots) > 0 {
		m.TimeSlots = in.TimeSlots
	}

	m.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

// Toggle invierte IsActive.
func (s *Service) Toggle(ctx context.Context, id string) (Medication, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Medication{}, ErrNotFound
	}

	m.IsActive = !m.IsActive
	m.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Medication, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Medication, error) {
	return s.repo.List(ctx)
}

// ListActive filtra IsActive, preservando el orden del repo.
func (s *Service) ListActive(ctx context.Context) ([]Medication, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Medication, 0, len(all))
	for _, m := range all {
		if m.IsActive {
			out = append(out, m)
		}
	}
	return out, nil
}

// Delete borra el medicamento y en cascada todos sus logs.
// Si el medicamento ya no existe devuelve ErrNotFound.
// Si el borrado del medicamento funciona pero la limpieza de logs falla,
// devuelve ErrCascade envuelto: el medicamento queda borrado igual.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.logs.DeleteByMedication(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrCascade, err)
	}
	return nil
}

// DefaultTimeSlots genera horarios equiespaciados arrancando a las 08:00.
// El wrap con % 24 evita horas inválidas tipo "24:00" con frecuencias que no dividen 24.
func DefaultTimeSlots(frequency int) []string {
	if frequency <= 0 {
		return nil
	}
	out := make([]string, 0, frequency)
	for i := 0; i < frequency; i++ {
		hour := (8 + i*24/frequency) % 24
		out = append(out, fmt.Sprintf("%02d:00", hour))
	}
	return out
}
