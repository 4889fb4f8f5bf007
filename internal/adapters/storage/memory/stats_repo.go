package memory

import (
	"context"
	"sort"

	"pet-registry/internal/domain/admin"
)

type statsRepo struct {
	db *DB
}

func NewStatsRepo(db *DB) admin.Repository {
	return &statsRepo{db: db}
}

func (r *statsRepo) Collect(ctx context.Context) (admin.Stats, error) {
	count := func(table string) int64 {
		return int64(len(r.db.snapshot(table)))
	}

	st := admin.Stats{
		Users:         count("users"),
		Pets:          count("pets"),
		Events:        count("events"),
		Centers:       count("training_centers"),
		Trainers:      count("trainers"),
		Leisure:       count("leisure_places"),
		Breeders:      count("breeders"),
		Exhibitions:   count("exhibitions"),
		Regulations:   count("regulations"),
		Organizations: count("animal_organizations"),
		News:          count("news"),
	}

	// GROUP BY type (NULL es un grupo más, como en SQL)
	groups := make(map[string]*admin.TypeCount)
	order := make([]string, 0)
	for _, pet := range r.db.snapshot("pets") {
		key := "\x00null"
		var typ *string
		if s, ok := pet["type"].(string); ok {
			key = s
			typ = &s
		}
		g, ok := groups[key]
		if !ok {
			g = &admin.TypeCount{Type: typ}
			groups[key] = g
			order = append(order, key)
		}
		g.Count++
	}
	sort.Strings(order)
	byType := make([]admin.TypeCount, 0, len(groups))
	for _, key := range order {
		byType = append(byType, *groups[key])
	}
	st.PetsByType = byType

	// COUNT(DISTINCT clinic) con clinic no vacío
	clinics := make(map[string]struct{})
	for _, ev := range r.db.snapshot("events") {
		if s, ok := ev["clinic"].(string); ok && s != "" {
			clinics[s] = struct{}{}
		}
	}
	st.Clinics = int64(len(clinics))

	return st, nil
}
