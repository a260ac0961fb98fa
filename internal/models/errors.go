package models

// RecoverableError is implemented by enriched errors that carry structured
// context and remediation hints. The store, commands and output packages all
// consume this interface to avoid import cycles; the prefixid library errors
// satisfy it structurally.
type RecoverableError interface {
	error
	ErrorCode() string
	Context() map[string]string
	SuggestedAction() string
}
