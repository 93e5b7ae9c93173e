package sqldb

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	Postgres = "postgres"
	Sqlite   = "sqlite"
)

// Dialect cubre lo poco que cambia entre motores: placeholders y paginado sin tope.
type Dialect struct {
	Name   string
	driver string

	// prefijo de LIMIT cuando no hay tope; postgres acepta OFFSET solo
	unbounded string
}

func DialectFor(name string) (Dialect, error) {
	switch name {
	case Postgres:
		return Dialect{Name: Postgres, driver: "pgx"}, nil
	case Sqlite:
		return Dialect{Name: Sqlite, driver: "sqlite", unbounded: "LIMIT -1 "}, nil
	default:
		return Dialect{}, errors.Errorf("unsupported sql driver %q", name)
	}
}

// Rebind reescribe los "?" como $1..$n para postgres.
func (d Dialect) Rebind(query string) string {
	if d.Name != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Page agrega LIMIT/OFFSET a la query y devuelve los args extra.
func (d Dialect) Page(query string, limit *int, offset int) (string, []any) {
	if limit == nil {
		return query + " " + d.unbounded + "OFFSET ?", []any{offset}
	}
	return query + " LIMIT ? OFFSET ?", []any{*limit, offset}
}
