package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// recordColumns is the column list shared by the SQL stores, in scan order.
const recordColumns = `run_id, strategy, solved, cost, depth, nodes_visited, expanded,
	relinks, duration_ns, head, steps, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// recordArgs returns the insert arguments for rec in recordColumns order.
func recordArgs(rec Record) ([]any, error) {
	steps := rec.Steps
	if steps == nil {
		steps = []Step{}
	}
	stepsJSON, err := json.Marshal(steps)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal steps: %w", err)
	}
	return []any{
		rec.RunID,
		rec.Strategy,
		rec.Solved,
		rec.Cost,
		rec.Depth,
		rec.NodesVisited,
		rec.Expanded,
		rec.Relinks,
		int64(rec.Duration),
		rec.Head,
		string(stepsJSON),
		rec.CreatedAt.UnixNano(),
	}, nil
}

func scanRecord(row rowScanner) (Record, error) {
	var (
		rec        Record
		durationNS int64
		stepsJSON  string
		createdAt  int64
	)
	err := row.Scan(
		&rec.RunID,
		&rec.Strategy,
		&rec.Solved,
		&rec.Cost,
		&rec.Depth,
		&rec.NodesVisited,
		&rec.Expanded,
		&rec.Relinks,
		&durationNS,
		&rec.Head,
		&stepsJSON,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to scan record: %w", err)
	}

	if err := json.Unmarshal([]byte(stepsJSON), &rec.Steps); err != nil {
		return Record{}, fmt.Errorf("failed to unmarshal steps: %w", err)
	}
	rec.Duration = time.Duration(durationNS)
	rec.CreatedAt = time.Unix(0, createdAt).UTC()
	return rec, nil
}

func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	result := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return result, nil
}

func stampCreatedAt(rec *Record) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
}
