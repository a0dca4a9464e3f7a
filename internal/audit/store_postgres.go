package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"trastienda/internal/diff"
)

// PostgresStore persists audit records in the audit_records table. Diffs are
// stored as JSONB so operators can query individual field changes.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Append(ctx context.Context, record Record) error {
	diffs, err := json.Marshal(record.Diffs)
	if err != nil {
		return fmt.Errorf("marshal diffs: %w", err)
	}

	var actorID, actorName sql.NullString
	if record.Actor != nil {
		actorID = sql.NullString{String: record.Actor.ID, Valid: true}
		actorName = sql.NullString{String: record.Actor.DisplayName, Valid: true}
	}

	query := `
		INSERT INTO audit_records (
			id, entity_type, entity_id, action, diffs,
			actor_id, actor_name, ip_address, user_agent, occurred_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.EntityType,
		record.EntityID,
		string(record.Action),
		diffs,
		actorID,
		actorName,
		record.Client.IPAddress,
		record.Client.UserAgent,
		record.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListByEntity(ctx context.Context, entityType string, entityID int64) ([]Record, error) {
	query := `
		SELECT id, entity_type, entity_id, action, diffs,
			   actor_id, actor_name, ip_address, user_agent, occurred_at
		FROM audit_records
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY occurred_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("query audit records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record    Record
			id        uuid.UUID
			action    string
			diffs     []byte
			actorID   sql.NullString
			actorName sql.NullString
		)
		err := rows.Scan(
			&id,
			&record.EntityType,
			&record.EntityID,
			&action,
			&diffs,
			&actorID,
			&actorName,
			&record.Client.IPAddress,
			&record.Client.UserAgent,
			&record.OccurredAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan audit record: %w", err)
		}

		record.ID = id
		record.Action = Action(action)
		if len(diffs) > 0 {
			if err := json.Unmarshal(diffs, &record.Diffs); err != nil {
				return nil, fmt.Errorf("unmarshal diffs: %w", err)
			}
		} else {
			record.Diffs = []diff.Entry{}
		}
		if actorID.Valid {
			record.Actor = &Actor{ID: actorID.String, DisplayName: actorName.String}
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit records: %w", err)
	}
	return records, nil
}
