package postgres

import (
	"context"

	"pet-registry/internal/domain/admin"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// StatsRepo corre los agregados del panel admin en paralelo sobre el pool.
// Cada consulta es independiente; la primera falla aborta el grupo.
type StatsRepo struct {
	db *pgxpool.Pool
}

func NewStatsRepo(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{db: db}
}

func (r *StatsRepo) Collect(ctx context.Context) (admin.Stats, error) {
	var st admin.Stats

	g, ctx := errgroup.WithContext(ctx)

	count := func(table string, dst *int64) func() error {
		return func() error {
			return r.db.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(dst)
		}
	}

	g.Go(count("users", &st.Users))
	g.Go(count("pets", &st.Pets))
	g.Go(count("events", &st.Events))
	g.Go(count("training_centers", &st.Centers))
	g.Go(count("trainers", &st.Trainers))
	g.Go(count("leisure_places", &st.Leisure))
	g.Go(count("breeders", &st.Breeders))
	g.Go(count("exhibitions", &st.Exhibitions))
	g.Go(count("regulations", &st.Regulations))
	g.Go(count("animal_organizations", &st.Organizations))
	g.Go(count("news", &st.News))

	g.Go(func() error {
		rows, err := r.db.Query(ctx, `SELECT type, COUNT(*) AS c FROM pets GROUP BY type`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out := make([]admin.TypeCount, 0)
		for rows.Next() {
			var tc admin.TypeCount
			if err := rows.Scan(&tc.Type, &tc.Count); err != nil {
				return err
			}
			out = append(out, tc)
		}
		st.PetsByType = out
		return rows.Err()
	})

	g.Go(func() error {
		return r.db.QueryRow(ctx, `
			SELECT COUNT(DISTINCT clinic)
			FROM events
			WHERE clinic IS NOT NULL AND clinic <> ''
		`).Scan(&st.Clinics)
	})

	if err := g.Wait(); err != nil {
		return admin.Stats{}, err
	}
	return st, nil
}
