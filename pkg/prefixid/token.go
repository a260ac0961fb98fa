package prefixid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// TokenSource produces the random segment of an identifier: length symbols
// drawn uniformly from alphabet. Uniformity matters for collision
// resistance; secrecy does not.
type TokenSource interface {
	Token(alphabet string, length int) (string, error)
}

// nanoidSource is the default TokenSource, backed by go-nanoid's
// crypto/rand-based uniform generator over arbitrary alphabets.
type nanoidSource struct{}

func (nanoidSource) Token(alphabet string, length int) (string, error) {
	return gonanoid.Generate(alphabet, length)
}

// DefaultTokenSource is used whenever GenerateOptions.Tokens is nil.
//
//nolint:gochecknoglobals // stateless default implementation
var DefaultTokenSource TokenSource = nanoidSource{}
