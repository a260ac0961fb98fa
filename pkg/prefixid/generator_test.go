package prefixid

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_PatternAndAlphabet(t *testing.T) {
	owner := newFakeHandle("user")
	cfg, err := New(owner, Options{Prefix: strptr("usr")})
	require.NoError(t, err)

	id, err := Generate(cfg)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^usr_[0-9a-z]{12}$`), id)
}

func TestGenerateWith_ConfigOverridesSettings(t *testing.T) {
	owner := newFakeHandle("user")
	cfg, err := New(owner, Options{Prefix: strptr("usr"), Alphabet: "abcdef", Length: 20})
	require.NoError(t, err)

	id, err := Generate(cfg)
	require.NoError(t, err)

	token := strings.TrimPrefix(id, "usr_")
	require.Len(t, token, 20)
	for _, r := range token {
		assert.Contains(t, "abcdef", string(r))
	}
}

func TestGenerateWith_BareTokenWhenNoPrefix(t *testing.T) {
	owner := newFakeHandle("session")
	cfg, err := New(owner, Options{})
	require.NoError(t, err)

	id, err := Generate(cfg)
	require.NoError(t, err)
	assert.NotContains(t, id, "_")
	assert.Len(t, id, 12)
}

func TestGenerateWith_RetriesOnCollision(t *testing.T) {
	owner := newFakeHandle("user")
	owner.taken["id=usr_aaaa"] = true
	owner.taken["id=usr_bbbb"] = true

	cfg, err := New(owner, Options{Prefix: strptr("usr")})
	require.NoError(t, err)

	tokens := &seqTokens{tokens: []string{"aaaa", "bbbb", "cccc"}}
	id, err := GenerateWith(cfg, GenerateOptions{Tokens: tokens})
	require.NoError(t, err)
	assert.Equal(t, "usr_cccc", id)
	assert.Equal(t, 3, owner.existsCalls)
}

func TestGenerateWith_MaxRetriesExceeded(t *testing.T) {
	owner := newFakeHandle("user")
	owner.taken["id=usr_aaaa"] = true

	cfg, err := New(owner, Options{Prefix: strptr("usr"), MaxRetries: intptr(4)})
	require.NoError(t, err)

	tokens := &seqTokens{tokens: []string{"aaaa"}}
	_, err = GenerateWith(cfg, GenerateOptions{Tokens: tokens})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxRetriesExceeded)

	var maxErr *MaxRetriesError
	require.ErrorAs(t, err, &maxErr)
	assert.Equal(t, 4, maxErr.Budget)
	assert.Equal(t, "user", maxErr.Kind)
	// Budget of 4 retries means 5 attempts total.
	assert.Equal(t, 5, owner.existsCalls)
}

func TestGenerateWith_SkipExistenceCheckNeverQueriesStore(t *testing.T) {
	owner := newFakeHandle("user")
	owner.taken["id=usr_aaaa"] = true // would collide if checked

	cfg, err := New(owner, Options{Prefix: strptr("usr"), MaxRetries: intptr(0)})
	require.NoError(t, err)

	tokens := &seqTokens{tokens: []string{"aaaa"}}
	id, err := GenerateWith(cfg, GenerateOptions{Tokens: tokens, SkipExistenceCheck: true})
	require.NoError(t, err)
	assert.Equal(t, "usr_aaaa", id)
	assert.Equal(t, 0, owner.existsCalls)
	assert.Equal(t, 1, tokens.calls)
}

func TestGenerateWith_StoreErrorPropagates(t *testing.T) {
	owner := newFakeHandle("user")
	owner.existsErr = errors.New("store down")

	cfg, err := New(owner, Options{Prefix: strptr("usr")})
	require.NoError(t, err)

	_, err = Generate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store down")
}

func TestGenerateWith_ExplicitSettingsOverride(t *testing.T) {
	owner := newFakeHandle("user")
	cfg, err := New(owner, Options{Prefix: strptr("usr")})
	require.NoError(t, err)

	set := DefaultSettings()
	set.Separator = "-"
	set.Length = 4
	set.Alphabet = "xyz"

	id, err := GenerateWith(cfg, GenerateOptions{Settings: &set})
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^usr-[xyz]{4}$`), id)
}

func TestGenerateWith_NilConfig(t *testing.T) {
	_, err := GenerateWith(nil, GenerateOptions{})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
