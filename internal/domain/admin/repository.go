package admin

import "context"

// Repository junta todos los agregados del panel admin.
// Las consultas son independientes (sin transacción compartida); una
// falla aborta el conjunto.
type Repository interface {
	Collect(ctx context.Context) (Stats, error)
}
