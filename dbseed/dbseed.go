// Package dbseed applies generated SQL scripts (the initial migration and
// the seed rows) to a live database. Scripts are split into statements and
// run inside one transaction, so a half-applied seed never survives.
package dbseed

import (
	"context"
	"database/sql"
	"strings"

	"github.com/cockroachdb/errors"

	// Drivers for the supported providers. SQL Server scripts can be applied
	// through an external tool; no pure-Go driver is wired here.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// DriverFor maps a generation database provider to its sql driver name.
// Returns "" for providers without a wired driver.
func DriverFor(provider string) string {
	switch provider {
	case "MySql":
		return "mysql"
	case "PostgreSql":
		return "postgres"
	case "Sqlite":
		return "sqlite"
	default:
		return ""
	}
}

// Open connects to the database for the given provider.
func Open(provider, dsn string) (*sql.DB, error) {
	driver := DriverFor(provider)
	if driver == "" {
		return nil, errors.Newf("no database driver for provider %q", provider)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", driver)
	}
	return db, nil
}

// Statements splits a script into executable statements: comment lines and
// blank lines are dropped, statements end at ";".
func Statements(script string) []string {
	var out []string
	var b strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			out = append(out, strings.TrimSpace(b.String()))
			b.Reset()
		}
	}
	if rest := strings.TrimSpace(b.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}

// Apply runs every statement of the script in a single transaction.
func Apply(ctx context.Context, db *sql.DB, script string) error {
	stmts := Statements(script)
	if len(stmts) == 0 {
		return nil
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	for _, stmt := range stmts {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "execute %q", firstLine(stmt))
		}
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

func firstLine(stmt string) string {
	if i := strings.IndexByte(stmt, '\n'); i >= 0 {
		return stmt[:i]
	}
	return stmt
}
