package prefixid

import (
	"strings"
	"sync"
	"unicode"
)

// Handle is the reflection-free contract a record kind satisfies so this
// package can check ids for existence, fetch records by field, and read or
// write a named field on an instance. The backing store provides the
// concrete implementation.
type Handle interface {
	// KindName identifies the record kind, used in errors and enforcement.
	KindName() string
	// PrimaryField names the kind's intrinsic identity field.
	PrimaryField() string
	// Exists reports whether any record of this kind holds value in field.
	Exists(field, value string) (bool, error)
	// FindOne fetches the record of this kind whose field equals value.
	// Absence is (nil, false, nil), not an error.
	FindOne(field, value string) (any, bool, error)
	// GetField reads the named field from a record instance.
	GetField(rec any, field string) (string, error)
	// SetField writes the named field on a record instance.
	SetField(rec any, field, value string) error
}

// AssignID populates rec's designated id field before first persistence.
// A pre-existing, caller-supplied value is never overwritten; the value in
// the field after the call is returned either way.
func AssignID(rec any, cfg *Config) (string, error) {
	return AssignIDWith(rec, cfg, GenerateOptions{})
}

// AssignIDWith is AssignID with explicit generation options. The settings
// snapshot taken here is the one generation uses, so a concurrent Configure
// cannot split field resolution from composition.
func AssignIDWith(rec any, cfg *Config, opts GenerateOptions) (string, error) {
	set := effective(opts.Settings)
	opts.Settings = &set

	field := cfg.resolveField(set)
	current, err := cfg.owner.GetField(rec, field)
	if err != nil {
		return "", err
	}
	if current != "" {
		return current, nil
	}

	id, err := GenerateWith(cfg, opts)
	if err != nil {
		return "", err
	}
	if err := cfg.owner.SetField(rec, field, id); err != nil {
		return "", err
	}
	return id, nil
}

// Enforcement tracks which kinds must have a registered configuration
// before instances may be created. Requirements propagate to descendant
// kinds by default; a descendant may opt out, and a further descendant may
// opt back in.
type Enforcement struct {
	mu         sync.RWMutex
	policy     map[string]bool
	configured map[string]bool
}

// NewEnforcement returns an empty tracker. A process-wide default backs the
// package-level functions.
func NewEnforcement() *Enforcement {
	return &Enforcement{
		policy:     make(map[string]bool),
		configured: make(map[string]bool),
	}
}

// RequireForDescendants marks kind, and by default every kind that names it
// as an ancestor, as requiring a registered configuration.
func (e *Enforcement) RequireForDescendants(kind string) {
	e.mu.Lock()
	e.policy[kind] = true
	e.mu.Unlock()
}

// Skip opts kind (and its subtree, unless re-enabled below) out of
// enforcement.
func (e *Enforcement) Skip(kind string) {
	e.mu.Lock()
	e.policy[kind] = false
	e.mu.Unlock()
}

// MarkConfigured records that kind has a registered configuration.
func (e *Enforcement) MarkConfigured(kind string) {
	e.mu.Lock()
	e.configured[kind] = true
	e.mu.Unlock()
}

// CheckConfigured fails with an UnconfiguredError when h's kind is subject
// to enforcement but has no registered configuration. ancestors lists the
// kind's ancestry nearest-first; the nearest explicit Require/Skip wins.
// Call it from the host's post-instantiation path.
func (e *Enforcement) CheckConfigured(h Handle, ancestors ...string) error {
	kind := h.KindName()

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.configured[kind] {
		return nil
	}

	required := false
	for _, k := range append([]string{kind}, ancestors...) {
		if v, ok := e.policy[k]; ok {
			required = v
			break
		}
	}
	if !required {
		return nil
	}
	return &UnconfiguredError{Kind: kind, SuggestedPrefix: SuggestPrefix(kind)}
}

// SuggestPrefix derives a plausible prefix from a kind name: its lowercase
// letters and digits, truncated to four characters. "User" -> "user",
// "LineItem" -> "line".
func SuggestPrefix(kind string) string {
	var b strings.Builder
	for _, r := range kind {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
		if b.Len() >= 4 {
			break
		}
	}
	if b.Len() == 0 {
		return "rec"
	}
	return b.String()
}

//nolint:gochecknoglobals // process-wide default, mirrors Settings/Registry
var defaultEnforcement = NewEnforcement()

// DefaultEnforcement returns the tracker behind the package-level
// enforcement functions.
func DefaultEnforcement() *Enforcement { return defaultEnforcement }

// RequireForDescendants marks kind as enforcement-required on the
// process-wide tracker.
func RequireForDescendants(kind string) { defaultEnforcement.RequireForDescendants(kind) }

// Skip opts kind out of enforcement on the process-wide tracker.
func Skip(kind string) { defaultEnforcement.Skip(kind) }

// CheckConfigured runs the process-wide enforcement check for h.
func CheckConfigured(h Handle, ancestors ...string) error {
	return defaultEnforcement.CheckConfigured(h, ancestors...)
}
