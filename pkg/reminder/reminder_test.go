package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

type memoryKV struct {
	values   map[string][]byte
	writes   int
	writeErr error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{values: make(map[string][]byte)}
}

func (m *memoryKV) Read(key string) ([]byte, error) {
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *memoryKV) Write(key string, val []byte) error {
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.values[key] = append([]byte(nil), val...)
	return nil
}

func (m *memoryKV) persisted(t *testing.T, key string) map[string]string {
	t.Helper()
	out := map[string]string{}
	if v, ok := m.values[key]; ok {
		if err := json.Unmarshal(v, &out); err != nil {
			t.Fatalf("persisted value is not a flat object: %v", err)
		}
	}
	return out
}

func TestToKey(t *testing.T) {
	tests := []struct {
		name string
		date Date
		want Key
	}{
		{"plain", Date{Year: 2024, Month: 2, Day: 5}, "2024-03-05"},
		{"arithmetic", NewDate(2024, 1, 34), "2024-03-05"},
		{"month overflow", NewDate(2023, 14, 5), "2024-03-05"},
		{"small year", Date{Year: 987, Month: 0, Day: 1}, "0987-01-01"},
		{"december", Date{Year: 2023, Month: 11, Day: 31}, "2023-12-31"},
		{"five digit year", Date{Year: 12345, Month: 2, Day: 5}, "12345-03-05"},
		{"negative year", Date{Year: -1, Month: 2, Day: 5}, "-0001-03-05"},
		{"year zero", Date{Year: 0, Month: 0, Day: 1}, "0000-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToKey(tt.date); got != tt.want {
				t.Fatalf("ToKey(%+v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestToKeySameDayFromTimes(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	a := DateOf(time.Date(2024, time.March, 5, 0, 0, 0, 0, loc))
	b := DateOf(time.Date(2024, time.February, 29, 23, 59, 0, 0, loc).Add(5 * 24 * time.Hour).Add(-23 * time.Hour))
	c := DateOf(time.Date(2024, time.March, 1, 9, 30, 0, 0, loc).AddDate(0, 0, 4))
	for _, d := range []Date{a, b, c} {
		if got := ToKey(d); got != "2024-03-05" {
			t.Fatalf("expected 2024-03-05, got %q", got)
		}
	}
}

func TestParseKey(t *testing.T) {
	d, err := ParseKey("2024-03-05")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if d != (Date{Year: 2024, Month: 2, Day: 5}) {
		t.Fatalf("unexpected date %+v", d)
	}
	for _, bad := range []string{
		"2024-3-5", "2024-02-30", "hello", "",
		"-0000-01-01", "02024-01-01", "+2024-01-01", "2024-+1-05", "--0001-01-01", "-001-01-01",
	} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) expected error", bad)
		}
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, d := range []Date{
		{Year: 2024, Month: 2, Day: 5},
		{Year: 12345, Month: 2, Day: 5},
		{Year: -1, Month: 2, Day: 5},
		{Year: -12345, Month: 11, Day: 31},
		{Year: 0, Month: 1, Day: 29},
		{Year: 987, Month: 0, Day: 1},
	} {
		got, err := ParseKey(string(ToKey(d)))
		if err != nil {
			t.Errorf("ParseKey(ToKey(%+v)): %v", d, err)
			continue
		}
		if got != d {
			t.Errorf("ParseKey(ToKey(%+v)) = %+v", d, got)
		}
	}
}

func TestMapKeysOrderAcrossYears(t *testing.T) {
	m := EmptyMap().
		With(NewDate(12345, 0, 1), "e").
		With(NewDate(2024, 2, 5), "c").
		With(NewDate(-1, 2, 5), "a").
		With(NewDate(987, 0, 1), "b").
		With(NewDate(9999, 11, 31), "d")
	got := m.Keys()
	want := []Key{"-0001-03-05", "0987-01-01", "2024-03-05", "9999-12-31", "12345-01-01"}
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

func TestMapIsImmutable(t *testing.T) {
	d := NewDate(2024, 2, 5)
	empty := EmptyMap()
	one := empty.With(d, "Buy flowers")
	if empty.Has(d) {
		t.Fatal("With mutated the receiver")
	}
	two := one.With(d, "Call mom")
	if text, _ := one.Get(d); text != "Buy flowers" {
		t.Fatalf("overwrite leaked into previous map: %q", text)
	}
	gone := two.Without(d)
	if !two.Has(d) || gone.Has(d) {
		t.Fatal("Without should only affect the returned map")
	}
	if blank := one.With(d, "   "); blank.Has(d) {
		t.Fatal("blank text must remove the entry")
	}
}

func TestMapInMonth(t *testing.T) {
	m := EmptyMap().
		With(NewDate(2024, 2, 5), "a").
		With(NewDate(2024, 2, 31), "b").
		With(NewDate(2024, 3, 1), "c").
		With(NewDate(2023, 2, 5), "d")
	days := m.InMonth(2024, 2)
	if len(days) != 2 || !days[5] || !days[31] {
		t.Fatalf("unexpected days %v", days)
	}
}

func TestStoreSetGetDelete(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := NewStore(kv)
	d := NewDate(2024, 2, 5)

	m, err := s.Set(ctx, s.Load(ctx), d, "Buy flowers")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if text, ok := s.Get(m, d); !ok || text != "Buy flowers" {
		t.Fatalf("get after set = %q, %v", text, ok)
	}
	if got := kv.persisted(t, DefaultNamespace); got["2024-03-05"] != "Buy flowers" || len(got) != 1 {
		t.Fatalf("persisted after set = %v", got)
	}

	m, err = s.Delete(ctx, m, d)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := s.Get(m, d); ok {
		t.Fatal("reminder still present after delete")
	}
	if got := kv.persisted(t, DefaultNamespace); len(got) != 0 {
		t.Fatalf("persisted after delete = %v", got)
	}
}

func TestStoreSetRejectsBlank(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := NewStore(kv)
	d := NewDate(2024, 2, 5)
	before := EmptyMap().With(NewDate(2024, 2, 6), "keep")

	after, err := s.Set(ctx, before, d, "  \t\n")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if after.Len() != 1 || after.Has(d) {
		t.Fatalf("map changed on validation failure: %v", after.Entries())
	}
	if kv.writes != 0 {
		t.Fatalf("expected no writes, got %d", kv.writes)
	}
}

func TestStoreDeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewStore(newMemoryKV())
	m := EmptyMap().With(NewDate(2024, 2, 6), "keep")
	next, err := s.Delete(ctx, m, NewDate(2024, 2, 5))
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if next.Len() != 1 {
		t.Fatalf("unexpected map %v", next.Entries())
	}
}

func TestStoreLoadCorrupt(t *testing.T) {
	ctx := context.Background()
	for _, raw := range []string{"not json", "42", "null", `["a"]`, `{"2024-03-05": 1}`, `"text"`} {
		kv := newMemoryKV()
		kv.values[DefaultNamespace] = []byte(raw)
		if m := NewStore(kv).Load(ctx); m.Len() != 0 {
			t.Errorf("Load(%q) = %v, want empty", raw, m.Entries())
		}
	}
}

func TestStoreLoadMissing(t *testing.T) {
	if m := NewStore(newMemoryKV()).Load(context.Background()); m.Len() != 0 {
		t.Fatalf("expected empty map, got %v", m.Entries())
	}
}

func TestStoreExtremeYears(t *testing.T) {
	tests := []struct {
		name string
		date Date
		key  string
	}{
		{"five digit year", NewDate(12345, 2, 5), "12345-03-05"},
		{"negative year", NewDate(-1, 2, 5), "-0001-03-05"},
		{"ordinary year", NewDate(2024, 2, 5), "2024-03-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := newMemoryKV()
			s := NewStore(kv)
			if _, err := s.Set(ctx, s.Load(ctx), tt.date, "Buy flowers"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if got := kv.persisted(t, DefaultNamespace); got[tt.key] != "Buy flowers" {
				t.Fatalf("persisted = %v, want key %q", got, tt.key)
			}

			reloaded := s.Load(ctx)
			if reloaded.Foreign() != 0 {
				t.Fatalf("key %q was not recognised on reload", tt.key)
			}
			if text, ok := s.Get(reloaded, tt.date); !ok || text != "Buy flowers" {
				t.Fatalf("get after reload = %q, %v", text, ok)
			}
			if days := reloaded.InMonth(tt.date.Year, tt.date.Month); len(days) != 1 || !days[5] {
				t.Fatalf("InMonth(%d, %d) = %v", tt.date.Year, tt.date.Month, days)
			}
		})
	}
}

func TestStoreLoadKeepsUnrecognisedEntries(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	kv.values[DefaultNamespace] = []byte(`{"2024-03-05":"Buy flowers","garbage":"x","2024-03-06":"  "}`)
	s := NewStore(kv)
	m := s.Load(ctx)
	if m.Len() != 1 {
		t.Fatalf("expected one valid entry, got %v", m.Entries())
	}
	if m.Foreign() != 1 {
		t.Fatalf("expected one unrecognised entry kept, got %d", m.Foreign())
	}

	if _, err := s.Set(ctx, m, NewDate(2024, 2, 7), "Call mom"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got := kv.persisted(t, DefaultNamespace)
	if got["garbage"] != "x" {
		t.Fatalf("unrecognised entry lost on write: %v", got)
	}
	if _, ok := got["2024-03-06"]; ok {
		t.Fatalf("blank entry should not be written back: %v", got)
	}
	if got["2024-03-05"] != "Buy flowers" || got["2024-03-07"] != "Call mom" || len(got) != 3 {
		t.Fatalf("unexpected persisted value %v", got)
	}
}

func TestStoreWriteFailureKeepsChange(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	kv.writeErr = errors.New("quota exceeded")
	s := NewStore(kv)
	d := NewDate(2024, 2, 5)

	m, err := s.Set(ctx, EmptyMap(), d, "Buy flowers")
	if !IsWarning(err) {
		t.Fatalf("expected persist warning, got %v", err)
	}
	if !m.Has(d) {
		t.Fatal("in-memory map should reflect the change despite the failed write")
	}
}

type erasingKV struct {
	*memoryKV
	erased   []string
	eraseErr error
}

func (e *erasingKV) Erase(key string) error {
	if e.eraseErr != nil {
		return e.eraseErr
	}
	e.erased = append(e.erased, key)
	delete(e.values, key)
	return nil
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	seed := func(kv *memoryKV) {
		kv.values[DefaultNamespace] = []byte(`{"2024-03-05":"Buy flowers","garbage":"x"}`)
	}

	t.Run("erases the key", func(t *testing.T) {
		kv := &erasingKV{memoryKV: newMemoryKV()}
		seed(kv.memoryKV)
		m, err := NewStore(kv).Reset(ctx)
		if err != nil {
			t.Fatalf("reset: %v", err)
		}
		if m.Len() != 0 || m.Foreign() != 0 {
			t.Fatalf("expected empty map, got %v", m.Entries())
		}
		if len(kv.erased) != 1 || kv.erased[0] != DefaultNamespace {
			t.Fatalf("erased %v", kv.erased)
		}
		if _, ok := kv.values[DefaultNamespace]; ok {
			t.Fatal("value still stored after reset")
		}
		if kv.writes != 0 {
			t.Fatalf("expected no writes, got %d", kv.writes)
		}
	})

	t.Run("writes an empty object without Erase", func(t *testing.T) {
		kv := newMemoryKV()
		seed(kv)
		if _, err := NewStore(kv).Reset(ctx); err != nil {
			t.Fatalf("reset: %v", err)
		}
		if got := kv.persisted(t, DefaultNamespace); len(got) != 0 {
			t.Fatalf("persisted after reset = %v", got)
		}
	})

	t.Run("erase failure is a warning", func(t *testing.T) {
		kv := &erasingKV{memoryKV: newMemoryKV(), eraseErr: errors.New("read-only")}
		seed(kv.memoryKV)
		m, err := NewStore(kv).Reset(ctx)
		if !IsWarning(err) {
			t.Fatalf("expected persist warning, got %v", err)
		}
		if m.Len() != 0 {
			t.Fatalf("expected empty map, got %v", m.Entries())
		}
	})
}

func TestStoreNamespace(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryKV()
	s := &Store{KV: kv, Namespace: "other"}
	if _, err := s.Set(ctx, EmptyMap(), NewDate(2024, 0, 1), "hi"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := kv.values["other"]; !ok {
		t.Fatal("expected value under custom namespace")
	}
	if m := NewStore(kv).Load(ctx); m.Len() != 0 {
		t.Fatal("default namespace should be empty")
	}
}
