package prefixid

import "sync"

// Documented built-in defaults. ResetToDefaults restores exactly these.
const (
	DefaultSeparator  = "_"
	DefaultAlphabet   = "0123456789abcdefghijklmnopqrstuvwxyz"
	DefaultLength     = 12
	DefaultMaxRetries = 1000
)

// Settings holds the process-wide generation parameters. A Config may
// override Alphabet, Length and MaxRetries per kind; Separator and
// DefaultField always come from Settings.
type Settings struct {
	// Separator sits between the prefix and the random token.
	Separator string
	// Alphabet is the symbol set the random token is drawn from.
	Alphabet string
	// Length is the number of symbols in the random token.
	Length int
	// MaxRetries bounds how many collisions generation tolerates before
	// giving up. The total attempt count is MaxRetries + 1.
	MaxRetries int
	// DefaultField, when set, names the record field ids are stored in for
	// kinds that don't pick their own. Empty means "the kind's primary
	// identity field".
	DefaultField string
}

// DefaultSettings returns the documented built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Separator:  DefaultSeparator,
		Alphabet:   DefaultAlphabet,
		Length:     DefaultLength,
		MaxRetries: DefaultMaxRetries,
	}
}

// The process-wide default settings instance. Core operations accept an
// explicit *Settings precisely so concurrent callers can avoid this shared
// state; the mutex only makes mutation well-defined, it does not serialize
// a settings change against an in-flight generation.
//
//nolint:gochecknoglobals // intentional process-wide default, see package doc
var (
	globalMu sync.RWMutex
	global   = DefaultSettings()
)

// Global returns a snapshot of the process-wide settings.
func Global() Settings {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global
}

// Configure applies a batch of settings mutations. The mutator sees the
// current values and edits them in place; the whole batch becomes visible
// atomically to subsequent Global snapshots. No validation is performed.
func Configure(fn func(*Settings)) {
	globalMu.Lock()
	defer globalMu.Unlock()
	fn(&global)
}

// ResetToDefaults restores the documented built-in defaults. Idempotent;
// primarily used to undo test-time or request-time overrides.
func ResetToDefaults() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = DefaultSettings()
}

// SetSeparator updates the process-wide separator.
func SetSeparator(s string) { Configure(func(g *Settings) { g.Separator = s }) }

// SetAlphabet updates the process-wide alphabet.
func SetAlphabet(a string) { Configure(func(g *Settings) { g.Alphabet = a }) }

// SetLength updates the process-wide token length.
func SetLength(n int) { Configure(func(g *Settings) { g.Length = n }) }

// SetMaxRetries updates the process-wide retry budget.
func SetMaxRetries(n int) { Configure(func(g *Settings) { g.MaxRetries = n }) }

// SetDefaultField updates the process-wide default id field.
func SetDefaultField(f string) { Configure(func(g *Settings) { g.DefaultField = f }) }

// effective resolves an explicit override to a concrete snapshot: nil means
// the process-wide defaults as of this call.
func effective(s *Settings) Settings {
	if s != nil {
		return *s
	}
	return Global()
}
