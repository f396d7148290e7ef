package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
)

var tableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Postgres stores each key as one row of a two-column table.
type Postgres struct {
	DB    *sql.DB
	table string
}

func NewPostgres(db *sql.DB, table string) (*Postgres, error) {
	if db == nil {
		return nil, errors.New("kvstore: db is nil")
	}
	if table == "" {
		table = "kv_entries"
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("kvstore: invalid table name %q", table)
	}
	return &Postgres{DB: db, table: table}, nil
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.DB.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, p.table))
	return err
}

func (p *Postgres) Get(ctx context.Context, key string) (string, error) {
	var v string
	err := p.DB.QueryRowContext(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, p.table), key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	_, err := p.DB.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, p.table), key, value)
	return err
}

func (p *Postgres) Remove(ctx context.Context, key string) error {
	_, err := p.DB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, p.table), key)
	return err
}

func (p *Postgres) Close() error { return p.DB.Close() }
