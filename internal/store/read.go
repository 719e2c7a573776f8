package store

import (
	"context"
	"encoding/json"
	"fmt"
)

const recordColumns = "id, content_hash, source, node_count, edge_count, source_types, target_types, dot, created_at"

// ListCompilations returns history rows, newest first. A limit of 0
// means no limit. Ordering includes the id tiebreaker so results are
// deterministic even for identical timestamps.
func (s *Store) ListCompilations(ctx context.Context, limit int) ([]Record, error) {
	query := "SELECT " + recordColumns + " FROM compilations ORDER BY created_at DESC, id DESC"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("list compilations: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list compilations: %w", err)
	}
	return records, nil
}

// GetCompilation returns one history row by id. Returns sql.ErrNoRows
// wrapped if the id is unknown.
func (s *Store) GetCompilation(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM compilations WHERE id = ?", id)
	rec, err := scanRecord(row)
	if err != nil {
		return Record{}, fmt.Errorf("get compilation %s: %w", id, err)
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (Record, error) {
	var rec Record
	var sourceTypes, targetTypes string
	err := row.Scan(
		&rec.ID,
		&rec.ContentHash,
		&rec.Source,
		&rec.NodeCount,
		&rec.EdgeCount,
		&sourceTypes,
		&targetTypes,
		&rec.DOT,
		&rec.CreatedAt,
	)
	if err != nil {
		return Record{}, err
	}
	if err := json.Unmarshal([]byte(sourceTypes), &rec.SourceTypes); err != nil {
		return Record{}, fmt.Errorf("source_types: %w", err)
	}
	if err := json.Unmarshal([]byte(targetTypes), &rec.TargetTypes); err != nil {
		return Record{}, fmt.Errorf("target_types: %w", err)
	}
	return rec, nil
}
