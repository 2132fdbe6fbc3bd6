package app

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

// Store is the Postgres-backed persistence layer for memberships and
// monthly usage records. A nil *Store is valid and means "no database":
// the server degrades per the fail-open/fail-closed policy of each read.
type Store struct {
	db *sql.DB
}

// OpenDB connects to Postgres and verifies the connection.
func OpenDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	log.Println("Connected to Postgres")
	return db, nil
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}
