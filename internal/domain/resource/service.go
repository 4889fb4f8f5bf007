package resource

import (
	"context"
	"math"
)

// ValidationError es un rechazo 400 con mensaje literal del API.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

type Service struct {
	def  Definition
	repo Repository
}

func NewService(def Definition, repo Repository) *Service {
	return &Service{def: def, repo: repo}
}

func (s *Service) Definition() Definition { return s.def }

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBy(ctx context.Context, value int64) ([]Record, error) {
	return s.repo.ListBy(ctx, value)
}

// Create valida requeridos, arma la fila (NULL para opcionales omitidos),
// inserta y relee la fila por el id generado.
func (s *Service) Create(ctx context.Context, body map[string]any) (Record, error) {
	for _, f := range s.def.Required {
		if isMissing(body[f]) {
			return nil, ValidationError(s.def.MissingMessage())
		}
	}

	rec := Record{}
	for _, c := range s.def.Columns() {
		v, ok := body[c]
		if !ok {
			rec[c] = nil
			continue
		}
		rec[c] = normalize(v)
	}

	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Delete es incondicional: borrar un id inexistente es éxito no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// isMissing: además de ausente/null, cadena vacía y 0 cuentan como
// faltante (contrato del API, ver tests).
func isMissing(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	}
	return false
}

// normalize convierte números JSON enteros (float64) a int64 para que el
// driver los codifique limpio en columnas integer (pet_id, center_id, ...).
func normalize(v any) any {
	if f, ok := v.(float64); ok && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return int64(f)
	}
	return v
}
