package prefixid

import "fmt"

// GenerateOptions tune a single generation call. The zero value means:
// process-wide settings, default token source, existence checks on.
type GenerateOptions struct {
	// Settings overrides the process-wide defaults when non-nil.
	Settings *Settings
	// Tokens overrides DefaultTokenSource when non-nil.
	Tokens TokenSource
	// SkipExistenceCheck returns the first generated id without consulting
	// the store. Only safe when the caller enforces uniqueness by other
	// means, e.g. a unique index surfaced as an insert-time violation;
	// typical for pre-generating bulk batches.
	SkipExistenceCheck bool
}

// Generate produces a unique id for cfg using the process-wide settings,
// consulting the owner's store to avoid collisions.
func Generate(cfg *Config) (string, error) {
	return GenerateWith(cfg, GenerateOptions{})
}

// GenerateWith produces a unique id for cfg. It makes up to maxRetries + 1
// attempts; each attempt draws a fresh token and, unless skipped, asks the
// owner whether a record already holds that id in the resolved field. The
// call performs no writes. A clean existence check does not fully guarantee
// uniqueness at insert time (the check and the insert are separate steps);
// the backing store's unique index is the real arbiter, and an insert-time
// violation should simply prompt another Generate.
func GenerateWith(cfg *Config, opts GenerateOptions) (string, error) {
	if cfg == nil {
		return "", fmt.Errorf("%w: nil config", ErrInvalidConfiguration)
	}
	set := effective(opts.Settings)
	tokens := opts.Tokens
	if tokens == nil {
		tokens = DefaultTokenSource
	}

	alphabet := cfg.effectiveAlphabet(set)
	length := cfg.effectiveLength(set)
	maxRetries := cfg.effectiveMaxRetries(set)
	field := cfg.resolveField(set)

	for attempt := 0; attempt <= maxRetries; attempt++ {
		token, err := tokens.Token(alphabet, length)
		if err != nil {
			return "", fmt.Errorf("generate token for %s: %w", cfg.owner.KindName(), err)
		}
		fullID := cfg.compose(token, set.Separator)

		if opts.SkipExistenceCheck {
			return fullID, nil
		}

		taken, err := cfg.owner.Exists(field, fullID)
		if err != nil {
			return "", fmt.Errorf("existence check for %s.%s: %w", cfg.owner.KindName(), field, err)
		}
		if !taken {
			return fullID, nil
		}
	}

	return "", &MaxRetriesError{Kind: cfg.owner.KindName(), Budget: maxRetries}
}
