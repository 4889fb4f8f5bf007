package resource

import "strings"

// Record es una fila plana tal como viaja por la API: columna -> valor.
// Los opcionales omitidos se materializan como nil (NULL en storage).
type Record map[string]any

// Order es una columna de ordenamiento del listado.
type Order struct {
	Column string
	Desc   bool
}

// Join describe la proyección de listado con tabla relacionada
// (caso trainers: INNER JOIN training_centers).
type Join struct {
	Table        string   // tabla relacionada
	LocalKey     string   // columna FK en la tabla del recurso
	LocalColumns []string // columnas propias que sobreviven en la proyección
	Aliased      []AliasedColumn
	OrderColumn  string // columna de la tabla relacionada para ordenar (luego id local ASC)
}

type AliasedColumn struct {
	Alias  string // nombre en la respuesta, ej. center_name
	Column string // columna en la tabla relacionada, ej. name
}

// Definition parametriza el CRUD genérico para un tipo de recurso:
// tabla, campos requeridos/opcionales, orden de listado y variantes
// (filtro por parámetro de path, proyección con join).
type Definition struct {
	Name     string // singular para mensajes, ej. "Pet"
	Path     string // segmento de ruta bajo /api, ej. "pets"
	Table    string
	Required []string
	Optional []string
	Order    []Order

	// ListBy: si no es vacío, el listado es GET /api/<path>/{<ListBy>}
	// filtrando por esa columna (caso events por pet_id).
	ListBy string

	// Join: si no es nil, el listado usa la proyección con join
	// en lugar de SELECT * (caso trainers).
	Join *Join
}

// Columns devuelve las columnas insertables en orden estable
// (requeridas primero, luego opcionales).
func (d Definition) Columns() []string {
	cols := make([]string, 0, len(d.Required)+len(d.Optional))
	cols = append(cols, d.Required...)
	cols = append(cols, d.Optional...)
	return cols
}

// MissingMessage replica el mensaje de validación del API:
// "Missing a" / "Missing a or b".
func (d Definition) MissingMessage() string {
	return "Missing " + strings.Join(d.Required, " or ")
}

// DeletedMessage es la confirmación fija del DELETE.
func (d Definition) DeletedMessage() string {
	return d.Name + " deleted"
}
