package prefixid

import (
	"fmt"
	"strings"
)

// Options carries the optional, named generation parameters for one kind.
// Zero values mean "defer to Settings"; Prefix and MaxRetries use pointers
// because nil and zero are meaningfully different for them.
type Options struct {
	// Prefix tags ids of this kind. nil means bare-token ids (which cannot
	// be reverse-looked-up through a Registry). An explicitly provided
	// empty or whitespace-only prefix is rejected.
	Prefix *string
	// Alphabet overrides Settings.Alphabet when non-empty.
	Alphabet string
	// Length overrides Settings.Length when > 0.
	Length int
	// MaxRetries overrides Settings.MaxRetries when non-nil. Zero is legal
	// and means a single attempt.
	MaxRetries *int
	// Field names the record field the id is stored in. Empty defers to
	// Settings.DefaultField, then the handle's primary identity field.
	Field string
}

// Config is the validated, immutable generation configuration for one kind.
type Config struct {
	owner      Handle
	prefix     string
	hasPrefix  bool
	alphabet   string
	length     int
	maxRetries int
	hasRetries bool
	field      string
}

// New validates opts against the process-wide settings and returns an
// immutable Config for owner. See NewWith for an explicit settings override.
func New(owner Handle, opts Options) (*Config, error) {
	return NewWith(owner, opts, nil)
}

// NewWith is New with an explicit settings snapshot. The alphabet/separator
// check uses the separator live at this moment and is never re-run.
func NewWith(owner Handle, opts Options, settings *Settings) (*Config, error) {
	if owner == nil {
		return nil, fmt.Errorf("%w: owner handle is required", ErrInvalidConfiguration)
	}
	set := effective(settings)

	cfg := &Config{owner: owner, field: opts.Field}

	if opts.Prefix != nil {
		p := *opts.Prefix
		if strings.TrimSpace(p) == "" {
			return nil, &InvalidPrefixError{Prefix: p, Reason: "must not be empty or whitespace-only"}
		}
		cfg.prefix = p
		cfg.hasPrefix = true
	}

	if opts.Alphabet != "" {
		if set.Separator != "" && strings.Contains(opts.Alphabet, set.Separator) {
			return nil, &InvalidAlphabetError{Alphabet: opts.Alphabet, Separator: set.Separator}
		}
		cfg.alphabet = opts.Alphabet
	}

	if opts.Length < 0 {
		return nil, fmt.Errorf("%w: length must not be negative, got %d", ErrInvalidConfiguration, opts.Length)
	}
	cfg.length = opts.Length

	if opts.MaxRetries != nil {
		if *opts.MaxRetries < 0 {
			return nil, fmt.Errorf("%w: max retries must not be negative, got %d", ErrInvalidConfiguration, *opts.MaxRetries)
		}
		cfg.maxRetries = *opts.MaxRetries
		cfg.hasRetries = true
	}

	return cfg, nil
}

// Owner returns the handle this configuration generates ids for.
func (c *Config) Owner() Handle { return c.owner }

// Prefix returns the configured prefix and whether one is set.
func (c *Config) Prefix() (string, bool) { return c.prefix, c.hasPrefix }

// Alphabet returns the per-kind alphabet override, or "" when deferring to
// Settings.
func (c *Config) Alphabet() string { return c.alphabet }

// Length returns the per-kind length override, or 0 when deferring to
// Settings.
func (c *Config) Length() int { return c.length }

// MaxRetries returns the per-kind retry budget and whether one is set.
func (c *Config) MaxRetries() (int, bool) { return c.maxRetries, c.hasRetries }

// Field returns the per-kind id field override, or "" when deferring.
func (c *Config) Field() string { return c.field }

func (c *Config) effectiveAlphabet(set Settings) string {
	if c.alphabet != "" {
		return c.alphabet
	}
	return set.Alphabet
}

func (c *Config) effectiveLength(set Settings) int {
	if c.length > 0 {
		return c.length
	}
	return set.Length
}

func (c *Config) effectiveMaxRetries(set Settings) int {
	if c.hasRetries {
		return c.maxRetries
	}
	return set.MaxRetries
}

// resolveField picks the record field ids live in: the kind's own choice,
// else the settings default, else the handle's primary identity field.
func (c *Config) resolveField(set Settings) string {
	if c.field != "" {
		return c.field
	}
	if set.DefaultField != "" {
		return set.DefaultField
	}
	return c.owner.PrimaryField()
}

// compose joins prefix, separator and token into a full id. A prefix-less
// config yields the bare token with no separator.
func (c *Config) compose(token, separator string) string {
	if !c.hasPrefix {
		return token
	}
	return c.prefix + separator + token
}
