package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/donation-recon/internal/config"
)

type Storage struct {
	SQL *sql.DB
	DB  bob.DB
	// ReadDB serves read-only lookups; it is the primary unless a replica
	// is configured.
	ReadDB bob.DB

	replica *sql.DB
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("open primary: %w", err)
	}

	s := &Storage{
		SQL:    db,
		DB:     bob.NewDB(db),
		ReadDB: bob.NewDB(db),
	}

	if len(env.PostgresReplicaAddress) != 0 {
		replica, err := sql.Open("postgres", env.PostgresReplicaURL())
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("open replica: %w", err)
		}
		s.replica = replica
		s.ReadDB = bob.NewDB(replica)
	}

	return s, nil
}

// Read returns a reader outside of any transaction.
func (s *Storage) Read() *Reader {
	return NewReader(s.DB, s.ReadDB)
}

// Write opens a transaction and returns a writer bound to it. The caller
// must Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	writer := NewWriter(tx, s.ReadDB)
	return &writer, nil
}

func (s *Storage) Close() error {
	if s.replica != nil {
		_ = s.replica.Close()
	}
	return s.SQL.Close()
}
