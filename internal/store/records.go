package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dotcommander/prefixid/internal/models"
)

// recordColumns maps the field names the prefixid library resolves to the
// columns they may touch. Queries are built only from this allowlist, never
// from caller input.
var recordColumns = map[string]string{
	"public_id": "public_id",
	"uuid":      "uuid",
	"name":      "name",
}

func columnFor(field string) (string, error) {
	col, ok := recordColumns[field]
	if !ok {
		return "", fmt.Errorf("unknown record field %q", field)
	}
	return col, nil
}

// InsertRecord persists a record, assigning its internal row uuid. A collision
// on the public id unique index is surfaced as a UniqueViolationError so
// callers can regenerate rather than replay the insert.
func InsertRecord(db *sql.DB, kind, publicID, name string) (*models.Record, error) {
	var record *models.Record

	err := Transact(db, func(tx *sql.Tx) error {
		rowUUID := uuid.NewString()
		_, err := tx.Exec(`
			INSERT INTO records (uuid, kind, public_id, name, created_at)
			VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		`, rowUUID, kind, publicID, name)
		if err != nil {
			if IsUniqueViolation(err) {
				return &UniqueViolationError{Kind: kind, PublicID: publicID}
			}
			return fmt.Errorf("failed to insert record: %w", err)
		}

		var rec models.Record
		err = tx.QueryRow(`
			SELECT uuid, kind, public_id, name, created_at
			FROM records WHERE uuid = ?
		`, rowUUID).Scan(&rec.UUID, &rec.Kind, &rec.PublicID, &rec.Name, &rec.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to fetch created record: %w", err)
		}
		record = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

// RecordExists reports whether any record of kind holds value in field.
func RecordExists(db *sql.DB, kind, field, value string) (bool, error) {
	col, err := columnFor(field)
	if err != nil {
		return false, err
	}

	var one int
	err = db.QueryRow(
		`SELECT 1 FROM records WHERE kind = ? AND `+col+` = ? LIMIT 1`,
		kind, value,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check record existence: %w", err)
	}
	return true, nil
}

// FindRecord fetches the record of kind whose field equals value exactly.
// Absence is (nil, false, nil).
func FindRecord(db *sql.DB, kind, field, value string) (*models.Record, bool, error) {
	col, err := columnFor(field)
	if err != nil {
		return nil, false, err
	}

	var rec models.Record
	err = db.QueryRow(
		`SELECT uuid, kind, public_id, name, created_at FROM records WHERE kind = ? AND `+col+` = ?`,
		kind, value,
	).Scan(&rec.UUID, &rec.Kind, &rec.PublicID, &rec.Name, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to fetch record: %w", err)
	}
	return &rec, true, nil
}

// ListRecords returns records of kind, newest first, capped at limit
// (0 means no cap).
func ListRecords(db *sql.DB, kind string, limit int) ([]models.Record, error) {
	query := `SELECT uuid, kind, public_id, name, created_at FROM records WHERE kind = ? ORDER BY created_at DESC, uuid`
	args := []any{kind}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Record
	for rows.Next() {
		var rec models.Record
		if err := rows.Scan(&rec.UUID, &rec.Kind, &rec.PublicID, &rec.Name, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
