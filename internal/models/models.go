package models

import "time"

// Kind is a persisted id-generation configuration for one record kind.
// Nil Prefix means bare-token ids; zero Length/MaxRetries defer to the
// process-wide settings. MaxRetries uses a pointer because an explicit zero
// (single attempt) differs from "unset".
type Kind struct {
	Name       string     `json:"name"`
	Prefix     *string    `json:"prefix,omitempty"`
	Alphabet   string     `json:"alphabet,omitempty"`
	Length     int        `json:"length,omitempty"`
	MaxRetries *int       `json:"max_retries,omitempty"`
	Field      string     `json:"field,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// Record is a stored record row. UUID is the internal row identity;
// PublicID is the generated prefixed identifier and carries the unique
// index that makes generation race-safe.
type Record struct {
	UUID      string    `json:"uuid"`
	Kind      string    `json:"kind"`
	PublicID  string    `json:"public_id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
