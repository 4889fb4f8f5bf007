package resource

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	nextID   int64
	inserted []Record
	stored   map[int64]Record
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[int64]Record{}}
}

func (f *fakeRepo) List(ctx context.Context) ([]Record, error)                { return nil, nil }
func (f *fakeRepo) ListBy(ctx context.Context, value int64) ([]Record, error) { return nil, nil }

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (Record, error) {
	return f.stored[id], nil
}

func (f *fakeRepo) Insert(ctx context.Context, rec Record) (int64, error) {
	f.nextID++
	f.inserted = append(f.inserted, rec)
	cp := make(Record, len(rec)+1)
	for k, v := range rec {
		cp[k] = v
	}
	cp["id"] = f.nextID
	f.stored[f.nextID] = cp
	return f.nextID, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error { return nil }

func eventsDef() Definition {
	return Definition{
		Name:     "Event",
		Path:     "events",
		Table:    "events",
		Required: []string{"pet_id", "event_type"},
		Optional: []string{"event_date", "description", "clinic", "location"},
	}
}

func TestCreate_MissingRequiredRejectsWithoutInsert(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(eventsDef(), repo)

	// ausente, null, vacío y 0 cuentan todos como faltante
	for _, body := range []map[string]any{
		{"event_type": "vaccine"},
		{"pet_id": nil, "event_type": "vaccine"},
		{"pet_id": float64(0), "event_type": "vaccine"},
		{"pet_id": float64(1), "event_type": ""},
	} {
		_, err := svc.Create(context.Background(), body)
		require.Error(t, err)

		var ve ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "Missing pet_id or event_type", ve.Error())
	}

	require.Empty(t, repo.inserted, "no insert may happen on validation failure")
}

func TestCreate_FillsOmittedOptionalsWithNull(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(eventsDef(), repo)

	created, err := svc.Create(context.Background(), map[string]any{
		"pet_id":     float64(3),
		"event_type": "vaccine",
		"clinic":     "VetCity",
	})
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	rec := repo.inserted[0]

	require.Equal(t, "VetCity", rec["clinic"])
	for _, f := range []string{"event_date", "description", "location"} {
		v, ok := rec[f]
		require.True(t, ok, "omitted optional %q must be present as null", f)
		require.Nil(t, v)
	}

	// la respuesta es la fila releída por id generado
	require.Equal(t, int64(1), created["id"])
}

func TestCreate_NormalizesIntegerNumbers(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(eventsDef(), repo)

	_, err := svc.Create(context.Background(), map[string]any{
		"pet_id":     float64(7),
		"event_type": "checkup",
	})
	require.NoError(t, err)
	require.Equal(t, int64(7), repo.inserted[0]["pet_id"])
}

func TestCreate_EmptyOptionalPassesThrough(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(eventsDef(), repo)

	// un opcional presente pero vacío se inserta tal cual, no como NULL
	_, err := svc.Create(context.Background(), map[string]any{
		"pet_id":     float64(1),
		"event_type": "checkup",
		"clinic":     "",
	})
	require.NoError(t, err)
	require.Equal(t, "", repo.inserted[0]["clinic"])
}

func TestDefinition_Messages(t *testing.T) {
	require.Equal(t, "Missing pet_id or event_type", eventsDef().MissingMessage())
	require.Equal(t, "Event deleted", eventsDef().DeletedMessage())

	pets := Definition{Name: "Pet", Required: []string{"name"}}
	require.Equal(t, "Missing name", pets.MissingMessage())
	require.Equal(t, "Pet deleted", pets.DeletedMessage())
}

func TestDefinitions_CatalogShape(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 10)

	seen := map[string]bool{}
	for _, d := range defs {
		require.NotEmpty(t, d.Table, "definition %q without table", d.Name)
		require.NotEmpty(t, d.Required, "definition %q without required fields", d.Name)
		require.False(t, seen[d.Path], "duplicate path %q", d.Path)
		seen[d.Path] = true
	}
}
