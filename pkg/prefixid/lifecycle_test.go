package prefixid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignID_PopulatesEmptyField(t *testing.T) {
	owner := newFakeHandle("user")
	cfg, err := New(owner, Options{Prefix: strptr("usr")})
	require.NoError(t, err)

	rec := newFakeRecord()
	id, err := AssignID(rec, cfg)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^usr_[0-9a-z]{12}$`), id)
	assert.Equal(t, id, rec.fields["id"])
}

func TestAssignID_NeverOverwritesCallerValue(t *testing.T) {
	owner := newFakeHandle("user")
	cfg, err := New(owner, Options{Prefix: strptr("usr")})
	require.NoError(t, err)

	rec := newFakeRecord()
	rec.fields["id"] = "usr_callersupplied"

	id, err := AssignID(rec, cfg)
	require.NoError(t, err)
	assert.Equal(t, "usr_callersupplied", id)
	assert.Equal(t, "usr_callersupplied", rec.fields["id"])
	assert.Equal(t, 0, owner.existsCalls, "no generation when the field is already set")
}

func TestAssignIDWith_UsesConfiguredField(t *testing.T) {
	owner := newFakeHandle("user")
	cfg, err := New(owner, Options{Prefix: strptr("usr"), Field: "public_id"})
	require.NoError(t, err)

	rec := newFakeRecord()
	id, err := AssignID(rec, cfg)
	require.NoError(t, err)
	assert.Equal(t, id, rec.fields["public_id"])
	assert.Empty(t, rec.fields["id"])
}

func TestEnforcement_RequiredAndUnconfigured(t *testing.T) {
	e := NewEnforcement()
	users := newFakeHandle("User")
	e.RequireForDescendants("User")

	err := e.CheckConfigured(users)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnconfigured)

	var uncfg *UnconfiguredError
	require.ErrorAs(t, err, &uncfg)
	assert.Equal(t, "User", uncfg.Kind)
	assert.Equal(t, "user", uncfg.SuggestedPrefix)
	assert.Contains(t, uncfg.SuggestedAction(), "prefixid.New")
	assert.Contains(t, uncfg.SuggestedAction(), "Skip")

	e.MarkConfigured("User")
	assert.NoError(t, e.CheckConfigured(users))
}

func TestEnforcement_DescendantPropagationAndOptOut(t *testing.T) {
	e := NewEnforcement()
	e.RequireForDescendants("Record")

	// Descendant inherits the requirement through its ancestry chain.
	invoices := newFakeHandle("Invoice")
	assert.Error(t, e.CheckConfigured(invoices, "Record"))

	// Opt-out is inherited by the subtree below it.
	e.Skip("Invoice")
	assert.NoError(t, e.CheckConfigured(invoices, "Record"))
	drafts := newFakeHandle("DraftInvoice")
	assert.NoError(t, e.CheckConfigured(drafts, "Invoice", "Record"))

	// A further descendant may re-enable enforcement.
	e.RequireForDescendants("DraftInvoice")
	assert.Error(t, e.CheckConfigured(drafts, "Invoice", "Record"))

	// Kinds outside the subtree are untouched.
	free := newFakeHandle("Widget")
	assert.NoError(t, e.CheckConfigured(free))
}

func TestSuggestPrefix(t *testing.T) {
	tests := []struct {
		kind string
		want string
	}{
		{"User", "user"},
		{"LineItem", "line"},
		{"org", "org"},
		{"A-B_C!", "abc"},
		{"", "rec"},
		{"!!", "rec"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SuggestPrefix(tt.kind), "kind %q", tt.kind)
	}
}

func TestPackageLevelRegisterMarksConfigured(t *testing.T) {
	owner := newFakeHandle("Gadget")
	RequireForDescendants("Gadget")

	err := CheckConfigured(owner)
	require.ErrorIs(t, err, ErrUnconfigured)

	cfg, err := New(owner, Options{Prefix: strptr("gdgt")})
	require.NoError(t, err)
	require.NoError(t, Register(cfg))

	assert.NoError(t, CheckConfigured(owner))
}
