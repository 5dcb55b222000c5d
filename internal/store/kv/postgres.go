package kv

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/campushire/placement-api/pkg/config"
)

// Postgres persists collections in a single key/payload table, keeping the
// opaque-blob persistence contract while using a relational backing.
type Postgres struct {
	db *sqlx.DB
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS kv_collections (
	key TEXT PRIMARY KEY,
	payload BYTEA NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// NewPostgres opens a connection pool and ensures the backing table exists.
func NewPostgres(cfg config.DatabaseConfig) (*Postgres, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if _, err := db.Exec(createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure kv table: %w", err)
	}

	return &Postgres{db: db}, nil
}

// NewPostgresWithDB wraps an existing connection; used by tests.
func NewPostgresWithDB(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const query = `SELECT payload FROM kv_collections WHERE key = $1`
	var payload []byte
	if err := p.db.GetContext(ctx, &payload, query, key); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kv get %s: %w", key, err)
	}
	return payload, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, payload []byte) error {
	const query = `INSERT INTO kv_collections (key, payload, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`
	if _, err := p.db.ExecContext(ctx, query, key, payload); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}
