package memory

import (
	"context"

	"pet-registry/internal/domain/resource"
)

type resourceRepo struct {
	db  *DB
	def resource.Definition
}

func NewResourceRepo(db *DB, def resource.Definition) resource.Repository {
	return &resourceRepo{db: db, def: def}
}

func (r *resourceRepo) List(ctx context.Context) ([]resource.Record, error) {
	if r.def.Join != nil {
		return r.listJoined(), nil
	}

	out := r.db.snapshot(r.def.Table)
	sortRecords(out, r.def.Order)
	return out, nil
}

func (r *resourceRepo) ListBy(ctx context.Context, value int64) ([]resource.Record, error) {
	rows := r.db.snapshot(r.def.Table)

	out := make([]resource.Record, 0)
	for _, rec := range rows {
		if asInt64(rec[r.def.ListBy]) == value {
			out = append(out, rec)
		}
	}
	sortRecords(out, r.def.Order)
	return out, nil
}

func (r *resourceRepo) GetByID(ctx context.Context, id int64) (resource.Record, error) {
	rec, ok := r.db.getByID(r.def.Table, id)
	if !ok {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (r *resourceRepo) Insert(ctx context.Context, rec resource.Record) (int64, error) {
	return r.db.insert(r.def.Table, rec), nil
}

func (r *resourceRepo) Delete(ctx context.Context, id int64) error {
	r.db.delete(r.def.Table, id)
	return nil
}

// listJoined emula la proyección con INNER JOIN del adapter Postgres
// (caso trainers): columnas propias + columnas de la tabla relacionada
// bajo alias, ordenado por la columna relacionada y luego id propio.
func (r *resourceRepo) listJoined() []resource.Record {
	j := r.def.Join
	local := r.db.snapshot(r.def.Table)
	related := r.db.snapshot(j.Table)

	byID := make(map[int64]resource.Record, len(related))
	for _, rel := range related {
		byID[asInt64(rel["id"])] = rel
	}

	out := make([]resource.Record, 0, len(local))
	for _, rec := range local {
		rel, ok := byID[asInt64(rec[j.LocalKey])]
		if !ok {
			continue // INNER JOIN: sin relacionado no hay fila
		}

		row := make(resource.Record, len(j.LocalColumns)+len(j.Aliased))
		for _, lc := range j.LocalColumns {
			row[lc] = rec[lc]
		}
		for _, ac := range j.Aliased {
			row[ac.Alias] = rel[ac.Column]
		}
		// columna de orden del relacionado, transitoria para el sort
		row["__order"] = rel[j.OrderColumn]
		out = append(out, row)
	}

	sortRecords(out, []resource.Order{{Column: "__order"}, {Column: "id"}})
	for _, row := range out {
		delete(row, "__order")
	}
	return out
}
