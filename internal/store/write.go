package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hexlang/hexc/internal/compiler"
	"github.com/hexlang/hexc/internal/sig"
)

// Record is one row of compilation history.
type Record struct {
	ID          string   `json:"id"`
	ContentHash string   `json:"content_hash"`
	Source      string   `json:"source"`
	NodeCount   int      `json:"node_count"`
	EdgeCount   int      `json:"edge_count"`
	SourceTypes []string `json:"source_types"`
	TargetTypes []string `json:"target_types"`
	DOT         string   `json:"dot"`
	CreatedAt   string   `json:"created_at"`
}

// NewRecord builds a Record for a compiled diagram. The row id is a
// uuid v7 (time-ordered); the content hash covers the source and the
// signature table the diagram was compiled against.
func NewRecord(d *compiler.Diagram, table *sig.Table, dotText string) Record {
	return Record{
		ID:          uuid.Must(uuid.NewV7()).String(),
		ContentHash: CompilationHash(d.Source, table),
		Source:      d.Source,
		NodeCount:   len(d.Nodes),
		EdgeCount:   len(d.Edges),
		SourceTypes: d.SourceTypes(),
		TargetTypes: d.TargetTypes(),
		DOT:         dotText,
	}
}

// WriteCompilation inserts a compilation record. Re-recording the same
// source+signatures is a silent no-op via ON CONFLICT(content_hash) DO
// NOTHING; other constraint violations still return errors.
func (s *Store) WriteCompilation(ctx context.Context, rec Record) error {
	sourceTypes, err := json.Marshal(rec.SourceTypes)
	if err != nil {
		return fmt.Errorf("write compilation: %w", err)
	}
	targetTypes, err := json.Marshal(rec.TargetTypes)
	if err != nil {
		return fmt.Errorf("write compilation: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO compilations
		(id, content_hash, source, node_count, edge_count, source_types, target_types, dot)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(content_hash) DO NOTHING
	`,
		rec.ID,
		rec.ContentHash,
		rec.Source,
		rec.NodeCount,
		rec.EdgeCount,
		string(sourceTypes),
		string(targetTypes),
		rec.DOT,
	)
	if err != nil {
		return fmt.Errorf("write compilation: %w", err)
	}
	return nil
}
