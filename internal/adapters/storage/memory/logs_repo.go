package memory

import (
	"context"
	"errors"
	"sync"

	"pills-tracker/internal/domain/adherence"
)

type logsRepo struct {
	mu   sync.RWMutex
	logs []adherence.Log // orden de inserción = orden de retorno
}

func NewLogsRepo() adherence.Repository {
	return &logsRepo{}
}

func (r *logsRepo) Insert(ctx context.Context, l adherence.Log) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l.ID == "" {
		return errors.New("log id required")
	}
	for _, existing := range r.logs {
		if existing.ID == l.ID {
			return errors.New("log already exists")
		}
	}

	r.logs = append(r.logs, l)
	return nil
}

func (r *logsRepo) UpdateTaken(ctx context.Context, id string, taken bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.logs {
		if r.logs[i].ID == id {
			r.logs[i].Taken = taken
			return nil
		}
	}
	return adherence.ErrNotFound
}

func (r *logsRepo) List(ctx context.Context, scope adherence.Scope) ([]adherence.Log, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adherence.Log, 0, len(r.logs))
	for _, l := range r.logs {
		if scope.SelfOnly && l.Reporter != scope.Identity {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *logsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.logs {
		if r.logs[i].ID == id {
			r.logs = append(r.logs[:i], r.logs[i+1:]...)
			return nil
		}
	}
	return adherence.ErrNotFound
}

func (r *logsRepo) DeleteByReporter(ctx context.Context, identity string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.Reporter != identity {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}

func (r *logsRepo) DeleteByMedication(ctx context.Context, medicationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.logs[:0]
	for _, l := range r.logs {
		if l.MedicationID != medicationID {
			kept = append(kept, l)
		}
	}
	r.logs = kept
	return nil
}
