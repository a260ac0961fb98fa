package prefixid

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for errors.Is matching. The structured types below carry
// the actual context; these exist so callers can branch on the failure kind
// without unpacking a concrete type.
var (
	// ErrInvalidConfiguration matches any construction-time validation failure.
	ErrInvalidConfiguration = errors.New("invalid prefixid configuration")

	// ErrMaxRetriesExceeded matches generation giving up after exhausting
	// its collision-retry budget.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded generating id")

	// ErrUnconfigured matches instantiating a kind that requires a registered
	// configuration but has none.
	ErrUnconfigured = errors.New("kind has no prefixid configuration")
)

// InvalidPrefixError reports a prefix that was explicitly provided but empty
// or whitespace-only. An absent prefix is legal and means "bare token".
type InvalidPrefixError struct {
	Prefix string
	Reason string
}

func (e *InvalidPrefixError) Error() string {
	return fmt.Sprintf("invalid prefix %q: %s", e.Prefix, e.Reason)
}
func (e *InvalidPrefixError) ErrorCode() string { return "INVALID_PREFIX" }
func (e *InvalidPrefixError) Context() map[string]string {
	return map[string]string{"prefix": e.Prefix, "reason": e.Reason}
}
func (e *InvalidPrefixError) SuggestedAction() string {
	return "provide a non-blank prefix, or omit it entirely for bare-token ids"
}
func (e *InvalidPrefixError) Is(target error) bool { return target == ErrInvalidConfiguration }

// InvalidAlphabetError reports an alphabet that contains the separator in
// effect at construction time, which would make parsing ambiguous.
type InvalidAlphabetError struct {
	Alphabet  string
	Separator string
}

func (e *InvalidAlphabetError) Error() string {
	return fmt.Sprintf("alphabet %q contains separator %q", e.Alphabet, e.Separator)
}
func (e *InvalidAlphabetError) ErrorCode() string { return "INVALID_ALPHABET" }
func (e *InvalidAlphabetError) Context() map[string]string {
	return map[string]string{"alphabet": e.Alphabet, "separator": e.Separator}
}
func (e *InvalidAlphabetError) SuggestedAction() string {
	return "remove the separator character from the alphabet, or change the separator"
}
func (e *InvalidAlphabetError) Is(target error) bool { return target == ErrInvalidConfiguration }

// MaxRetriesError reports that every attempt in the retry budget collided
// with an existing id. Usually a sign of store saturation for the configured
// alphabet and length.
type MaxRetriesError struct {
	Kind   string
	Budget int
}

func (e *MaxRetriesError) Error() string {
	return fmt.Sprintf("failed to generate unique id for %s after %d retries", e.Kind, e.Budget)
}
func (e *MaxRetriesError) ErrorCode() string { return "MAX_RETRIES_EXCEEDED" }
func (e *MaxRetriesError) Context() map[string]string {
	return map[string]string{"kind": e.Kind, "budget": strconv.Itoa(e.Budget)}
}
func (e *MaxRetriesError) SuggestedAction() string {
	return "raise MaxRetries, lengthen the id, or widen the alphabet for this kind"
}
func (e *MaxRetriesError) Is(target error) bool { return target == ErrMaxRetriesExceeded }

// UnconfiguredError reports an instantiation of a kind that requires a
// prefixid configuration but never registered one.
type UnconfiguredError struct {
	Kind            string
	SuggestedPrefix string
}

func (e *UnconfiguredError) Error() string {
	return fmt.Sprintf("kind %s requires a prefixid configuration but none is registered", e.Kind)
}
func (e *UnconfiguredError) ErrorCode() string { return "UNCONFIGURED_KIND" }
func (e *UnconfiguredError) Context() map[string]string {
	return map[string]string{"kind": e.Kind, "suggested_prefix": e.SuggestedPrefix}
}
func (e *UnconfiguredError) SuggestedAction() string {
	return fmt.Sprintf("register one with prefixid.New (e.g. prefix %q), or opt out with Skip(%q)",
		e.SuggestedPrefix, e.Kind)
}
func (e *UnconfiguredError) Is(target error) bool { return target == ErrUnconfigured }
