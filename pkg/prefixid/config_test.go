package prefixid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PrefixPolicy(t *testing.T) {
	owner := newFakeHandle("user")

	tests := []struct {
		name    string
		prefix  *string
		wantErr bool
	}{
		{"absent prefix means bare token", nil, false},
		{"normal prefix", strptr("usr"), false},
		{"empty prefix rejected", strptr(""), true},
		{"whitespace-only prefix rejected", strptr("   "), true},
		{"tab-only prefix rejected", strptr("\t"), true},
		{"prefix with inner space allowed", strptr("us r"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(owner, Options{Prefix: tt.prefix})
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			p, ok := cfg.Prefix()
			if tt.prefix == nil {
				assert.False(t, ok)
			} else {
				assert.True(t, ok)
				assert.Equal(t, *tt.prefix, p)
			}
		})
	}
}

func TestNew_AlphabetSeparatorConflict(t *testing.T) {
	owner := newFakeHandle("user")

	_, err := New(owner, Options{Prefix: strptr("usr"), Alphabet: "abc_def"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	var alphaErr *InvalidAlphabetError
	require.ErrorAs(t, err, &alphaErr)
	assert.Equal(t, "_", alphaErr.Separator)
}

func TestNewWith_ValidatesAgainstExplicitSeparator(t *testing.T) {
	owner := newFakeHandle("user")
	set := DefaultSettings()
	set.Separator = "-"

	// "_" is fine under a "-" separator...
	_, err := New(owner, Options{Prefix: strptr("usr"), Alphabet: "abc_def"})
	require.Error(t, err, "sanity: rejected under default separator")

	cfg, err := NewWith(owner, Options{Prefix: strptr("usr"), Alphabet: "abc_def"}, &set)
	require.NoError(t, err)
	assert.Equal(t, "abc_def", cfg.Alphabet())

	// ...and "-" is not.
	_, err = NewWith(owner, Options{Prefix: strptr("usr"), Alphabet: "abc-def"}, &set)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestNew_NumericBounds(t *testing.T) {
	owner := newFakeHandle("user")

	_, err := New(owner, Options{Length: -1})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = New(owner, Options{MaxRetries: intptr(-1)})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// Zero retries is a legal budget: exactly one attempt.
	cfg, err := New(owner, Options{MaxRetries: intptr(0)})
	require.NoError(t, err)
	n, ok := cfg.MaxRetries()
	assert.True(t, ok)
	assert.Equal(t, 0, n)
}

func TestNew_RequiresOwner(t *testing.T) {
	_, err := New(nil, Options{Prefix: strptr("usr")})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestConfig_FieldResolution(t *testing.T) {
	owner := newFakeHandle("user")

	tests := []struct {
		name         string
		field        string
		defaultField string
		want         string
	}{
		{"config field wins", "public_id", "ext_id", "public_id"},
		{"settings default next", "", "ext_id", "ext_id"},
		{"primary field last", "", "", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New(owner, Options{Prefix: strptr("usr"), Field: tt.field})
			require.NoError(t, err)

			set := DefaultSettings()
			set.DefaultField = tt.defaultField
			assert.Equal(t, tt.want, cfg.resolveField(set))
		})
	}
}
