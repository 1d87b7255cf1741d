package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Snapshot errors.
var (
	ErrUnknownField = errors.New("unknown group field")
	ErrClosed       = errors.New("snapshot is closed")
)

// Snapshot is an in-memory SQLite copy of a garment sequence.
type Snapshot struct {
	db *sql.DB
}

// Open creates an empty in-memory snapshot.
func Open(ctx context.Context) (*Snapshot, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every connection to :memory: gets its own database; pin to one.
	db.SetMaxOpenConns(1)

	for _, ddl := range []string{createGarments, createIndexes} {
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}
	return &Snapshot{db: db}, nil
}

// Close releases the database. Close is idempotent.
func (s *Snapshot) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Load replaces the snapshot contents with garments, keeping their order,
// and returns how many rows were written.
func (s *Snapshot) Load(ctx context.Context, garments iter.Seq[types.Garment]) (int, error) {
	if s.db == nil {
		return 0, ErrClosed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin load: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM garments"); err != nil {
		return 0, fmt.Errorf("clear snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO garments (position, name, season, type, color, size, feature) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	n := 0
	for g := range garments {
		if _, err := stmt.ExecContext(ctx, n, g.Name, g.Season, g.Type, g.Color, g.Size, g.Feature); err != nil {
			return 0, fmt.Errorf("insert garment %q: %w", g.Name, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit load: %w", err)
	}
	return n, nil
}

// Garments returns the snapshot rows in their original order.
func (s *Snapshot) Garments(ctx context.Context) ([]types.Garment, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT name, season, type, color, size, feature FROM garments ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("query garments: %w", err)
	}
	defer rows.Close()

	var out []types.Garment
	for rows.Next() {
		var g types.Garment
		if err := rows.Scan(&g.Name, &g.Season, &g.Type, &g.Color, &g.Size, &g.Feature); err != nil {
			return nil, fmt.Errorf("scan garment: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate garments: %w", err)
	}
	return out, nil
}
