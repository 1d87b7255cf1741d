package sqlite

import (
	"context"
	"fmt"
	"iter"

	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Count is the number of garments sharing one field value.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary holds garment totals grouped by each attribute dimension.
type Summary struct {
	Total    int     `json:"total"`
	BySeason []Count `json:"by_season"`
	ByType   []Count `json:"by_type"`
	ByColor  []Count `json:"by_color"`
	BySize   []Count `json:"by_size"`
}

// CountBy groups the snapshot by field and returns the counts, largest
// first and alphabetical among ties. field is one of the Field constants.
func (s *Snapshot) CountBy(ctx context.Context, field string) ([]Count, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	column, ok := groupColumns[field]
	if !ok {
		return nil, fmt.Errorf("%q: %w", field, ErrUnknownField)
	}

	query := fmt.Sprintf(
		"SELECT %[1]s, COUNT(*) AS n FROM garments GROUP BY %[1]s ORDER BY n DESC, %[1]s",
		column,
	)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count by %s: %w", field, err)
	}
	defer rows.Close()

	var out []Count
	for rows.Next() {
		var c Count
		if err := rows.Scan(&c.Value, &c.Count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return out, nil
}

// Summary computes the total and every per-field grouping.
func (s *Snapshot) Summary(ctx context.Context) (*Summary, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	var sum Summary
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM garments").Scan(&sum.Total); err != nil {
		return nil, fmt.Errorf("count garments: %w", err)
	}

	groups := []struct {
		field string
		dst   *[]Count
	}{
		{FieldSeason, &sum.BySeason},
		{FieldType, &sum.ByType},
		{FieldColor, &sum.ByColor},
		{FieldSize, &sum.BySize},
	}
	for _, g := range groups {
		counts, err := s.CountBy(ctx, g.field)
		if err != nil {
			return nil, err
		}
		*g.dst = counts
	}
	return &sum, nil
}

// Summarize loads garments into a throwaway snapshot and returns its
// Summary.
func Summarize(ctx context.Context, garments iter.Seq[types.Garment]) (*Summary, error) {
	snap, err := Open(ctx)
	if err != nil {
		return nil, err
	}
	defer snap.Close()

	if _, err := snap.Load(ctx, garments); err != nil {
		return nil, err
	}
	return snap.Summary(ctx)
}
