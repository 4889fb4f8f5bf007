package postgres

import (
	"context"
	"strconv"
	"strings"

	"pet-registry/internal/domain/resource"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResourceRepo implementa resource.Repository para una Definition.
// El SQL se arma una vez en el constructor, siempre con placeholders
// (nunca se interpola input del usuario en el texto de la consulta).
type ResourceRepo struct {
	db  *pgxpool.Pool
	def resource.Definition

	listSQL   string
	listBySQL string
	getSQL    string
	insertSQL string
	deleteSQL string
}

func NewResourceRepo(db *pgxpool.Pool, def resource.Definition) *ResourceRepo {
	r := &ResourceRepo{db: db, def: def}

	if def.Join != nil {
		r.listSQL = buildJoinListSQL(def)
	} else {
		r.listSQL = "SELECT * FROM " + def.Table + orderClause(def.Order)
	}
	if def.ListBy != "" {
		r.listBySQL = "SELECT * FROM " + def.Table + " WHERE " + def.ListBy + " = $1" + orderClause(def.Order)
	}
	r.getSQL = "SELECT * FROM " + def.Table + " WHERE id = $1"
	r.insertSQL = buildInsertSQL(def)
	r.deleteSQL = "DELETE FROM " + def.Table + " WHERE id = $1"

	return r
}

func (r *ResourceRepo) List(ctx context.Context) ([]resource.Record, error) {
	rows, err := r.db.Query(ctx, r.listSQL)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (r *ResourceRepo) ListBy(ctx context.Context, value int64) ([]resource.Record, error) {
	rows, err := r.db.Query(ctx, r.listBySQL, value)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func (r *ResourceRepo) GetByID(ctx context.Context, id int64) (resource.Record, error) {
	rows, err := r.db.Query(ctx, r.getSQL, id)
	if err != nil {
		return nil, err
	}

	recs, err := collectRecords(rows)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNotFound
	}
	return recs[0], nil
}

func (r *ResourceRepo) Insert(ctx context.Context, rec resource.Record) (int64, error) {
	cols := r.def.Columns()
	args := make([]any, 0, len(cols))
	for _, c := range cols {
		args = append(args, rec[c])
	}

	var id int64
	if err := r.db.QueryRow(ctx, r.insertSQL, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete es incondicional: no chequea existencia ni filas afectadas.
func (r *ResourceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, r.deleteSQL, id)
	return err
}

func buildInsertSQL(def resource.Definition) string {
	cols := def.Columns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	return "INSERT INTO " + def.Table +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ") RETURNING id"
}

func buildJoinListSQL(def resource.Definition) string {
	j := def.Join

	cols := make([]string, 0, len(j.LocalColumns)+len(j.Aliased))
	for _, lc := range j.LocalColumns {
		cols = append(cols, "t."+lc)
	}
	for _, ac := range j.Aliased {
		cols = append(cols, "c."+ac.Column+" AS "+ac.Alias)
	}

	return "SELECT " + strings.Join(cols, ", ") +
		" FROM " + def.Table + " t JOIN " + j.Table + " c ON t." + j.LocalKey + " = c.id" +
		" ORDER BY c." + j.OrderColumn + " ASC, t.id ASC"
}

func orderClause(order []resource.Order) string {
	if len(order) == 0 {
		return ""
	}
	parts := make([]string, 0, len(order))
	for _, o := range order {
		p := o.Column
		if o.Desc {
			p += " DESC"
		}
		parts = append(parts, p)
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}

// collectRecords vuelca las filas a Records usando los field descriptions,
// así la misma implementación sirve para SELECT * y para proyecciones.
func collectRecords(rows pgx.Rows) ([]resource.Record, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := make([]resource.Record, 0)

	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, err
		}
		rec := make(resource.Record, len(fields))
		for i, fd := range fields {
			rec[fd.Name] = vals[i]
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}
