package adherence

import "context"

// Repository es el Adherence Store. UpdateTaken y Delete devuelven ErrNotFound
// si el log no existe; cualquier otro fallo es un error de store.
type Repository interface {
	Insert(ctx context.Context, l Log) error
	UpdateTaken(ctx context.Context, id string, taken bool) error

	// List devuelve logs según scope, en orden de inserción (el store no reordena).
	List(ctx context.Context, scope Scope) ([]Log, error)

	Delete(ctx context.Context, id string) error
	DeleteByReporter(ctx context.Context, identity string) error
	DeleteByMedication(ctx context.Context, medicationID string) error
}
