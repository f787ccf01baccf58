package dbseed

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScript = `-- Code generated by MyCodegent. DO NOT EDIT.

-- Customer
INSERT INTO customers (id, email) VALUES (1, 'a@example.test');
INSERT INTO customers (id, email) VALUES (2, 'b@example.test');

CREATE TABLE orders (
    id INT NOT NULL,
    PRIMARY KEY (id)
);
`

func TestStatements(t *testing.T) {
	stmts := Statements(sampleScript)

	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "VALUES (1, 'a@example.test');")
	assert.Contains(t, stmts[2], "CREATE TABLE orders")
	for _, s := range stmts {
		assert.NotContains(t, s, "--", "comment lines are stripped")
	}
}

func TestStatementsEmptyScript(t *testing.T) {
	assert.Empty(t, Statements("-- only comments\n\n"))
}

func TestApplyRunsInOneTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO customers .*VALUES \\(1.*").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO customers .*VALUES \\(2.*").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("CREATE TABLE orders.*").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, Apply(context.Background(), db, sampleScript))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO customers .*VALUES \\(1.*").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = Apply(context.Background(), db, sampleScript)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INSERT INTO customers")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEmptyScriptIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Apply(context.Background(), db, ""))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverFor(t *testing.T) {
	assert.Equal(t, "postgres", DriverFor("PostgreSql"))
	assert.Equal(t, "mysql", DriverFor("MySql"))
	assert.Equal(t, "sqlite", DriverFor("Sqlite"))
	assert.Equal(t, "", DriverFor("SqlServer"))
}
