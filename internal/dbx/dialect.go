package dbx

import (
	"strconv"
	"strings"
)

// Dialect selects the SQL placeholder style of a backend.
type Dialect int

const (
	// SQLite uses "?" placeholders.
	SQLite Dialect = iota
	// Postgres uses "$1", "$2", ... placeholders.
	Postgres
)

func (d Dialect) String() string {
	switch d {
	case SQLite:
		return "sqlite"
	case Postgres:
		return "postgres"
	}
	return "unknown"
}

// Rebind rewrites the "?" placeholders of query into the dialect's style.
// Queries are written with "?" throughout the repositories.
func (d Dialect) Rebind(query string) string {
	if d != Postgres {
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
