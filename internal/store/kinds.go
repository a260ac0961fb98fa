package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dotcommander/prefixid/internal/models"
)

// UpsertKind inserts or replaces a kind definition and returns the stored row.
// Callers are expected to have validated the definition through prefixid.New
// before persisting it.
func UpsertKind(db *sql.DB, kind models.Kind) (*models.Kind, error) {
	var stored *models.Kind

	err := Transact(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO kinds (name, prefix, alphabet, length, max_retries, field, created_at)
			VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(name) DO UPDATE SET
				prefix      = excluded.prefix,
				alphabet    = excluded.alphabet,
				length      = excluded.length,
				max_retries = excluded.max_retries,
				field       = excluded.field,
				updated_at  = CURRENT_TIMESTAMP
		`, kind.Name, kind.Prefix, kind.Alphabet, kind.Length, kind.MaxRetries, kind.Field)
		if err != nil {
			return fmt.Errorf("failed to upsert kind: %w", err)
		}

		fetched, err := getKindQ(tx, kind.Name)
		if err != nil {
			return err
		}
		stored = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}

	return stored, nil
}

// GetKind fetches a kind definition by name.
func GetKind(db *sql.DB, name string) (*models.Kind, error) {
	return getKindQ(db, name)
}

func getKindQ(q Querier, name string) (*models.Kind, error) {
	var k models.Kind
	var prefix sql.NullString
	var maxRetries sql.NullInt64
	var updatedAt sql.NullTime

	err := q.QueryRow(`
		SELECT name, prefix, alphabet, length, max_retries, field, created_at, updated_at
		FROM kinds WHERE name = ?
	`, name).Scan(&k.Name, &prefix, &k.Alphabet, &k.Length, &maxRetries, &k.Field, &k.CreatedAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &KindNotFoundError{Kind: name}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kind %q: %w", name, err)
	}

	if prefix.Valid {
		k.Prefix = &prefix.String
	}
	if maxRetries.Valid {
		n := int(maxRetries.Int64)
		k.MaxRetries = &n
	}
	if updatedAt.Valid {
		k.UpdatedAt = &updatedAt.Time
	}
	return &k, nil
}

// ListKinds returns all kind definitions ordered by name.
func ListKinds(db *sql.DB) ([]models.Kind, error) {
	rows, err := db.Query(`
		SELECT name, prefix, alphabet, length, max_retries, field, created_at, updated_at
		FROM kinds ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list kinds: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Kind
	for rows.Next() {
		var k models.Kind
		var prefix sql.NullString
		var maxRetries sql.NullInt64
		var updatedAt sql.NullTime
		if err := rows.Scan(&k.Name, &prefix, &k.Alphabet, &k.Length, &maxRetries, &k.Field, &k.CreatedAt, &updatedAt); err != nil {
			return nil, err
		}
		if prefix.Valid {
			k.Prefix = &prefix.String
		}
		if maxRetries.Valid {
			n := int(maxRetries.Int64)
			k.MaxRetries = &n
		}
		if updatedAt.Valid {
			k.UpdatedAt = &updatedAt.Time
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

// DeleteKind removes a kind definition. Records of that kind are left in
// place; their ids remain valid strings, they just stop reverse-resolving.
func DeleteKind(db *sql.DB, name string) error {
	return Transact(db, func(tx *sql.Tx) error {
		res, err := tx.Exec(`DELETE FROM kinds WHERE name = ?`, name)
		if err != nil {
			return fmt.Errorf("failed to delete kind: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return &KindNotFoundError{Kind: name}
		}
		return nil
	})
}
