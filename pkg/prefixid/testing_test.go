package prefixid

import "fmt"

// fakeRecord is a minimal record instance with string fields.
type fakeRecord struct {
	fields map[string]string
}

func newFakeRecord() *fakeRecord {
	return &fakeRecord{fields: make(map[string]string)}
}

// fakeHandle is an in-memory Handle. "taken" values answer Exists; "records"
// answer FindOne. existsCalls counts store round-trips so tests can assert
// that SkipExistenceCheck never touches the store.
type fakeHandle struct {
	kind        string
	primary     string
	taken       map[string]bool
	records     map[string]any
	existsCalls int
	existsErr   error
}

func newFakeHandle(kind string) *fakeHandle {
	return &fakeHandle{
		kind:    kind,
		primary: "id",
		taken:   make(map[string]bool),
		records: make(map[string]any),
	}
}

func (h *fakeHandle) KindName() string     { return h.kind }
func (h *fakeHandle) PrimaryField() string { return h.primary }

func (h *fakeHandle) Exists(field, value string) (bool, error) {
	h.existsCalls++
	if h.existsErr != nil {
		return false, h.existsErr
	}
	return h.taken[field+"="+value], nil
}

func (h *fakeHandle) FindOne(field, value string) (any, bool, error) {
	rec, ok := h.records[field+"="+value]
	return rec, ok, nil
}

func (h *fakeHandle) GetField(rec any, field string) (string, error) {
	fr, ok := rec.(*fakeRecord)
	if !ok {
		return "", fmt.Errorf("unexpected record type %T", rec)
	}
	return fr.fields[field], nil
}

func (h *fakeHandle) SetField(rec any, field, value string) error {
	fr, ok := rec.(*fakeRecord)
	if !ok {
		return fmt.Errorf("unexpected record type %T", rec)
	}
	fr.fields[field] = value
	return nil
}

// put stores a record under field=value for both Exists and FindOne.
func (h *fakeHandle) put(field, value string, rec any) {
	h.taken[field+"="+value] = true
	h.records[field+"="+value] = rec
}

// seqTokens replays a scripted token sequence, then repeats the last entry.
type seqTokens struct {
	tokens []string
	calls  int
}

func (s *seqTokens) Token(alphabet string, length int) (string, error) {
	i := s.calls
	s.calls++
	if i >= len(s.tokens) {
		i = len(s.tokens) - 1
	}
	return s.tokens[i], nil
}

func strptr(s string) *string { return &s }
func intptr(n int) *int       { return &n }
