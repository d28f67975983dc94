package database

import (
	"context"
	"database/sql"
	"strconv"
	"strings"

	"github.com/yasinhessnawi1/sharecloud/internal/constants"
)

// Querier is the subset of *sql.DB and *sql.Tx used by repositories, so the same
// query code runs inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Rebind rewrites "?" placeholders for the pool's driver. Queries are written
// with "?" and PostgreSQL gets numbered "$n" placeholders.
func (p *Pool) Rebind(query string) string {
	return Rebind(p.Driver, query)
}

// Rebind rewrites "?" placeholders into the style expected by driver.
// Placeholders inside single quoted literals are left alone.
func Rebind(driver, query string) string {
	if driver != constants.DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)

	n := 0
	inLiteral := false
	for _, r := range query {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
			b.WriteRune(r)
		case r == '?' && !inLiteral:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
