package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) error
	Update(ctx context.Context, m Medication) error
	GetByID(ctx context.Context, id string) (Medication, error)

	// List devuelve todos los medicamentos ordenados por fecha de creación ascendente.
	List(ctx context.Context) ([]Medication, error)

	Delete(ctx context.Context, id string) error
}
