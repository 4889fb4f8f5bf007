package memory

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-registry/internal/domain/resource"
)

var ErrNotFound = errors.New("not found")

// DB es el storage in-memory compartido por todos los repos (modo dev y
// tests). Una tabla = slice de Records con id secuencial, igual que las
// tablas reales pero sin constraints salvo el UNIQUE de users.username.
type DB struct {
	mu     sync.RWMutex
	tables map[string][]resource.Record
	nextID map[string]int64
}

func NewDB() *DB {
	return &DB{
		tables: make(map[string][]resource.Record),
		nextID: make(map[string]int64),
	}
}

// insert asigna id y guarda una copia. Caller NO debe tener el lock.
func (db *DB) insert(table string, rec resource.Record) int64 {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.nextID[table]++
	id := db.nextID[table]

	cp := cloneRecord(rec)
	cp["id"] = id
	db.tables[table] = append(db.tables[table], cp)
	return id
}

// snapshot devuelve copias de las filas de la tabla.
func (db *DB) snapshot(table string) []resource.Record {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows := db.tables[table]
	out := make([]resource.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, cloneRecord(r))
	}
	return out
}

func (db *DB) getByID(table string, id int64) (resource.Record, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	for _, r := range db.tables[table] {
		if asInt64(r["id"]) == id {
			return cloneRecord(r), true
		}
	}
	return nil, false
}

// delete es no-op si el id no existe (mismo contrato que el DELETE real).
func (db *DB) delete(table string, id int64) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rows := db.tables[table]
	out := rows[:0]
	for _, r := range rows {
		if asInt64(r["id"]) != id {
			out = append(out, r)
		}
	}
	db.tables[table] = out
}

func cloneRecord(rec resource.Record) resource.Record {
	cp := make(resource.Record, len(rec))
	for k, v := range rec {
		cp[k] = v
	}
	return cp
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	}
	return 0
}

// sortRecords ordena in-place por las columnas pedidas.
func sortRecords(recs []resource.Record, order []resource.Order) {
	if len(order) == 0 {
		return
	}
	sort.SliceStable(recs, func(i, j int) bool {
		for _, o := range order {
			c := compareValues(recs[i][o.Column], recs[j][o.Column])
			if c == 0 {
				continue
			}
			if o.Desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compareValues compara valores heterogéneos: nil primero, números entre
// sí, strings lexicográfico (las fechas ISO ordenan bien así).
func compareValues(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	switch av := a.(type) {
	case int64, int, float64:
		an := asFloat(a)
		bn := asFloat(b)
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	case string:
		if bv, ok := b.(string); ok {
			return strings.Compare(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1
			case av.After(bv):
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func asFloat(v any) float64 {
	switch t := v.(type) {
	case int64:
		return float64(t)
	case int:
		return float64(t)
	case float64:
		return t
	}
	return 0
}
