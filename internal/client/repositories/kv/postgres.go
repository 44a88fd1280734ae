package kv

import "database/sql"

var postgresQueries = queries{
	get: `SELECT value FROM kv_store WHERE key = $1`,
	set: `INSERT INTO kv_store (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
}

// NewPostgresRepository binds the kv_store repository to a pgx-backed *sql.DB.
func NewPostgresRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db, q: postgresQueries}
}
