package store

import (
	"errors"
	"fmt"
)

// ErrKindNotFound matches lookups of kinds that were never added.
var ErrKindNotFound = errors.New("kind not found")

// KindNotFoundError reports an operation against an unregistered kind.
type KindNotFoundError struct {
	Kind string
}

func (e *KindNotFoundError) Error() string {
	return fmt.Sprintf("kind %q is not defined", e.Kind)
}
func (e *KindNotFoundError) ErrorCode() string { return "KIND_NOT_FOUND" }
func (e *KindNotFoundError) Context() map[string]string {
	return map[string]string{"kind": e.Kind}
}
func (e *KindNotFoundError) SuggestedAction() string {
	return fmt.Sprintf("define it first: prefixid kind add %s --prefix <prefix>", e.Kind)
}
func (e *KindNotFoundError) Is(target error) bool { return target == ErrKindNotFound }

// ErrUniqueViolation matches inserts that lost the race on the public id
// unique index.
var ErrUniqueViolation = errors.New("public id already taken")

// UniqueViolationError reports an insert whose public id collided with an
// existing row. Expected under skip-existence-check bulk inserts and in the
// rare check/insert race; the remedy is to regenerate, not to retry the
// same insert.
type UniqueViolationError struct {
	Kind     string
	PublicID string
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("public id %q already exists", e.PublicID)
}
func (e *UniqueViolationError) ErrorCode() string { return "UNIQUE_VIOLATION" }
func (e *UniqueViolationError) Context() map[string]string {
	return map[string]string{"kind": e.Kind, "public_id": e.PublicID}
}
func (e *UniqueViolationError) SuggestedAction() string {
	return "generate a fresh id and retry the insert"
}
func (e *UniqueViolationError) Is(target error) bool { return target == ErrUniqueViolation }
