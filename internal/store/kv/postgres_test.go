package kv

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	sqlxdb := sqlx.NewDb(db, "sqlmock")
	return sqlxdb, mock, func() {
		db.Close()
	}
}

func TestPostgresGet(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresWithDB(db)

	rows := sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`[{"id":"job-1"}]`))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM kv_collections WHERE key = $1")).
		WithArgs("jobs").
		WillReturnRows(rows)

	payload, ok, err := store.Get(context.Background(), "jobs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"job-1"}]`, string(payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetAbsent(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresWithDB(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM kv_collections WHERE key = $1")).
		WithArgs("skills").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	payload, ok, err := store.Get(context.Background(), "skills")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, payload)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSet(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	store := NewPostgresWithDB(db)

	mock.ExpectExec("INSERT INTO kv_collections").
		WithArgs("applications", []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.Set(context.Background(), "applications", []byte(`[]`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()

	_, ok, err := store.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(context.Background(), "users", []byte(`[]`)))

	payload, ok, err := store.Get(context.Background(), "users")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), payload)
}
