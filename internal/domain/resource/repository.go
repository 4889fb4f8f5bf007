package resource

import "context"

// Repository es el contrato de storage del CRUD genérico.
// List aplica el orden (y join, si corresponde) de la Definition.
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	ListBy(ctx context.Context, value int64) ([]Record, error)
	GetByID(ctx context.Context, id int64) (Record, error)
	Insert(ctx context.Context, rec Record) (int64, error)
	Delete(ctx context.Context, id int64) error
}
