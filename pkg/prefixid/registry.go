package prefixid

import (
	"sort"
	"strings"
	"sync"
)

// ParsedID is the structured form of a full identifier: the registered
// prefix, the random key after the separator, the owning handle and the
// record field the id lives in. Constructed on demand, never persisted.
type ParsedID struct {
	Key    string
	Prefix string
	FullID string
	Owner  Handle
	Field  string
}

// Registry maps prefixes to their owning configurations and reverses a full
// id back to its record. At most one config per prefix; the last
// registration for a prefix silently wins. Entries are never removed.
type Registry struct {
	mu       sync.RWMutex
	byPrefix map[string]*Config
}

// NewRegistry returns an empty registry. Most callers use the process-wide
// default via the package-level Register/Parse/Locate.
func NewRegistry() *Registry {
	return &Registry{byPrefix: make(map[string]*Config)}
}

// Register adds cfg under its prefix, replacing any previous owner of that
// prefix. Prefix-less configs are rejected: their bare-token ids carry no
// prefix to reverse-lookup by.
func (r *Registry) Register(cfg *Config) error {
	prefix, ok := cfg.Prefix()
	if !ok {
		return &InvalidPrefixError{Reason: "prefix-less configs cannot be registered for reverse lookup"}
	}
	r.mu.Lock()
	r.byPrefix[prefix] = cfg
	r.mu.Unlock()
	return nil
}

// Lookup returns the config registered for prefix, if any.
func (r *Registry) Lookup(prefix string) (*Config, bool) {
	r.mu.RLock()
	cfg, ok := r.byPrefix[prefix]
	r.mu.RUnlock()
	return cfg, ok
}

// Prefixes returns the registered prefixes in sorted order, for diagnostics.
func (r *Registry) Prefixes() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.byPrefix))
	for p := range r.byPrefix {
		out = append(out, p)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Parse splits fullID on the first separator and resolves the prefix
// against the registry. A missing separator or unregistered prefix yields
// (nil, false) — a normal outcome for foreign ids, not an error.
func (r *Registry) Parse(fullID string) (*ParsedID, bool) {
	return r.ParseWith(fullID, nil)
}

// ParseWith is Parse with an explicit settings snapshot for the separator
// and default-field resolution.
func (r *Registry) ParseWith(fullID string, settings *Settings) (*ParsedID, bool) {
	set := effective(settings)
	if set.Separator == "" {
		return nil, false
	}
	idx := strings.Index(fullID, set.Separator)
	if idx <= 0 {
		return nil, false
	}
	prefix := fullID[:idx]
	key := fullID[idx+len(set.Separator):]

	cfg, ok := r.Lookup(prefix)
	if !ok {
		return nil, false
	}
	return &ParsedID{
		Key:    key,
		Prefix: prefix,
		FullID: fullID,
		Owner:  cfg.Owner(),
		Field:  cfg.resolveField(set),
	}, true
}

// Locate parses fullID and fetches the matching record from the owner's
// store. The lookup matches the resolved field against the full id string,
// prefix included. (nil, false, nil) covers both an unknown prefix and a
// registered prefix with no stored record.
func (r *Registry) Locate(fullID string) (any, bool, error) {
	return r.LocateWith(fullID, nil)
}

// LocateWith is Locate with an explicit settings snapshot.
func (r *Registry) LocateWith(fullID string, settings *Settings) (any, bool, error) {
	parsed, ok := r.ParseWith(fullID, settings)
	if !ok {
		return nil, false, nil
	}
	return parsed.Owner.FindOne(parsed.Field, parsed.FullID)
}

//nolint:gochecknoglobals // process-wide default registry, mirrors Settings
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the package
// level Register, Parse and Locate.
func DefaultRegistry() *Registry { return defaultRegistry }

// Register adds cfg to the process-wide registry and marks its kind
// configured for enforcement purposes.
func Register(cfg *Config) error {
	if err := defaultRegistry.Register(cfg); err != nil {
		return err
	}
	defaultEnforcement.MarkConfigured(cfg.Owner().KindName())
	return nil
}

// Parse resolves fullID against the process-wide registry.
func Parse(fullID string) (*ParsedID, bool) { return defaultRegistry.Parse(fullID) }

// Locate fetches the record behind fullID via the process-wide registry.
func Locate(fullID string) (any, bool, error) { return defaultRegistry.Locate(fullID) }
