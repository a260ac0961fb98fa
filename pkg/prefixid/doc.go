// Package prefixid generates short, human-legible record identifiers of the
// form {prefix}{separator}{token} (e.g. usr_vktd1b5v84lr), checks them for
// uniqueness against a backing store, and resolves any such identifier back
// to the record and kind that produced it.
//
// The package is a passive library: it owns no goroutines and performs no
// writes. Generation consults the store through a Handle to avoid collisions
// and retries up to a bounded budget; the eventual insert is the caller's
// responsibility. Because the existence check and the insert are not atomic,
// two concurrent generations can race on the same token. True uniqueness
// therefore depends on a unique index in the backing store; this generator
// only minimizes collision probability and bounds retry work.
//
// Settings overrides: every operation accepts an explicit *Settings. Passing
// nil snapshots the process-wide defaults at call entry, so a concurrent
// Configure call cannot tear a single generation. A Config's alphabet is
// validated against the separator once, at construction time; changing the
// separator afterwards does not re-validate existing Configs.
package prefixid
