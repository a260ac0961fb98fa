package prefixid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSettings(t *testing.T) {
	set := DefaultSettings()
	assert.Equal(t, "_", set.Separator)
	assert.Equal(t, "0123456789abcdefghijklmnopqrstuvwxyz", set.Alphabet)
	assert.Equal(t, 12, set.Length)
	assert.Equal(t, 1000, set.MaxRetries)
	assert.Equal(t, "", set.DefaultField)
}

func TestResetToDefaults_RestoresEverything(t *testing.T) {
	t.Cleanup(ResetToDefaults)

	SetSeparator("-")
	SetAlphabet("abcdef")
	SetLength(6)
	SetMaxRetries(3)
	SetDefaultField("ext_id")

	got := Global()
	assert.Equal(t, "-", got.Separator)
	assert.Equal(t, "abcdef", got.Alphabet)
	assert.Equal(t, 6, got.Length)
	assert.Equal(t, 3, got.MaxRetries)
	assert.Equal(t, "ext_id", got.DefaultField)

	ResetToDefaults()
	assert.Equal(t, DefaultSettings(), Global())

	// Idempotent.
	ResetToDefaults()
	assert.Equal(t, DefaultSettings(), Global())
}

func TestConfigure_BatchUpdate(t *testing.T) {
	t.Cleanup(ResetToDefaults)

	Configure(func(s *Settings) {
		s.Separator = "."
		s.Length = 8
	})

	got := Global()
	assert.Equal(t, ".", got.Separator)
	assert.Equal(t, 8, got.Length)
	// Untouched fields keep their values.
	assert.Equal(t, DefaultAlphabet, got.Alphabet)
	assert.Equal(t, DefaultMaxRetries, got.MaxRetries)
}

func TestGlobal_ReturnsSnapshot(t *testing.T) {
	t.Cleanup(ResetToDefaults)

	snap := Global()
	SetLength(99)
	assert.Equal(t, DefaultLength, snap.Length, "snapshot must not see later mutation")
}
