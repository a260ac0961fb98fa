package store

import (
	"database/sql"
	"fmt"

	"github.com/dotcommander/prefixid/internal/models"
	"github.com/dotcommander/prefixid/pkg/prefixid"
)

// Handle binds one kind to the database and satisfies prefixid.Handle, so
// the library can run existence checks and reverse lookups without knowing
// anything about SQL. Record instances are *models.Record.
type Handle struct {
	db   *sql.DB
	kind string
}

// NewHandle returns a store-backed handle for kind.
func NewHandle(db *sql.DB, kind string) *Handle {
	return &Handle{db: db, kind: kind}
}

// KindName implements prefixid.Handle.
func (h *Handle) KindName() string { return h.kind }

// PrimaryField implements prefixid.Handle. The public id column is the
// record's identity field; the row uuid is internal.
func (h *Handle) PrimaryField() string { return "public_id" }

// Exists implements prefixid.Handle.
func (h *Handle) Exists(field, value string) (bool, error) {
	return RecordExists(h.db, h.kind, field, value)
}

// FindOne implements prefixid.Handle.
func (h *Handle) FindOne(field, value string) (any, bool, error) {
	rec, found, err := FindRecord(h.db, h.kind, field, value)
	if err != nil || !found {
		return nil, false, err
	}
	return rec, true, nil
}

// GetField implements prefixid.Handle for *models.Record instances.
func (h *Handle) GetField(rec any, field string) (string, error) {
	r, ok := rec.(*models.Record)
	if !ok {
		return "", fmt.Errorf("expected *models.Record, got %T", rec)
	}
	switch field {
	case "public_id":
		return r.PublicID, nil
	case "uuid":
		return r.UUID, nil
	case "name":
		return r.Name, nil
	default:
		return "", fmt.Errorf("unknown record field %q", field)
	}
}

// SetField implements prefixid.Handle for *models.Record instances.
func (h *Handle) SetField(rec any, field, value string) error {
	r, ok := rec.(*models.Record)
	if !ok {
		return fmt.Errorf("expected *models.Record, got %T", rec)
	}
	switch field {
	case "public_id":
		r.PublicID = value
	case "uuid":
		r.UUID = value
	case "name":
		r.Name = value
	default:
		return fmt.Errorf("unknown record field %q", field)
	}
	return nil
}

// ConfigForKind turns a persisted kind row into a validated generation
// config bound to a store handle.
func ConfigForKind(db *sql.DB, kind models.Kind) (*prefixid.Config, error) {
	return prefixid.New(NewHandle(db, kind.Name), prefixid.Options{
		Prefix:     kind.Prefix,
		Alphabet:   kind.Alphabet,
		Length:     kind.Length,
		MaxRetries: kind.MaxRetries,
		Field:      kind.Field,
	})
}

// BuildRegistry loads every persisted kind into a fresh registry.
// Prefix-less kinds generate fine but cannot be reverse-looked-up, so they
// are skipped here rather than rejected.
func BuildRegistry(db *sql.DB) (*prefixid.Registry, error) {
	kinds, err := ListKinds(db)
	if err != nil {
		return nil, err
	}

	reg := prefixid.NewRegistry()
	for _, k := range kinds {
		if k.Prefix == nil {
			continue
		}
		cfg, err := ConfigForKind(db, k)
		if err != nil {
			return nil, fmt.Errorf("kind %q: %w", k.Name, err)
		}
		if err := reg.Register(cfg); err != nil {
			return nil, fmt.Errorf("kind %q: %w", k.Name, err)
		}
	}
	return reg, nil
}
