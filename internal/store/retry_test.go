package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"database locked", errors.New("database is locked (5) (SQLITE_BUSY)"), true},
		{"sqlite busy", errors.New("SQLITE_BUSY: database table is locked"), true},
		{"unique constraint", errors.New("constraint failed: UNIQUE constraint failed: records.public_id"), false},
		{"foreign key constraint", errors.New("FOREIGN KEY constraint failed"), false},
		{"unrelated", errors.New("no such table: records"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.want {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if IsUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
	if !IsUniqueViolation(errors.New("UNIQUE constraint failed: records.public_id")) {
		t.Error("Expected unique violation to be detected")
	}
	wrapped := fmt.Errorf("insert: %w", errors.New("UNIQUE constraint failed: records.public_id"))
	if !IsUniqueViolation(wrapped) {
		t.Error("Expected wrapped unique violation to be detected")
	}
}

func TestRetryWithBackoff_PermanentErrorNotRetried(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(func() error {
		calls++
		return errors.New("UNIQUE constraint failed: records.public_id")
	})
	if err == nil {
		t.Fatal("Expected error to propagate")
	}
	if calls != 1 {
		t.Errorf("Expected exactly one attempt for a permanent error, got %d", calls)
	}
}

func TestRetryWithBackoff_TransientErrorRetried(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(func() error {
		calls++
		if calls < 3 {
			return errors.New("database is locked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Expected eventual success, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected 3 attempts, got %d", calls)
	}
}
