package reminder

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
)

// Map is an immutable mapping from DateKey to reminder text. With and Without
// return updated copies; a Map value is never changed after construction, so
// it is safe to hold on to old versions.
type Map struct {
	entries map[Key]string
	// foreign holds persisted entries whose key is not a DateKey. They are
	// invisible to readers and written back untouched.
	foreign map[string]string
}

// Entry is a single day's reminder.
type Entry struct {
	Key  Key    `json:"date"`
	Text string `json:"reminder"`
}

// EmptyMap returns a map with no reminders.
func EmptyMap() Map {
	return Map{}
}

// MapOf builds a Map from raw key/text pairs. Blank texts are dropped. Keys
// that are not DateKeys are kept aside and survive MarshalJSON. Both are
// reported through the returned error; the map still holds every valid entry.
func MapOf(raw map[string]string) (Map, error) {
	entries := make(map[Key]string, len(raw))
	var foreign map[string]string
	var errs []error
	for k, v := range raw {
		if _, err := ParseKey(k); err != nil {
			if foreign == nil {
				foreign = make(map[string]string)
			}
			foreign[k] = v
			errs = append(errs, err)
			continue
		}
		if isBlank(v) {
			errs = append(errs, errors.New("reminder: blank reminder for "+k))
			continue
		}
		entries[Key(k)] = v
	}
	return Map{entries: entries, foreign: foreign}, errors.Join(errs...)
}

// Len is the number of days holding a reminder.
func (m Map) Len() int {
	return len(m.entries)
}

// Get returns the reminder for d, if any.
func (m Map) Get(d Date) (string, bool) {
	text, ok := m.entries[ToKey(d)]
	return text, ok
}

// Has reports whether d holds a reminder.
func (m Map) Has(d Date) bool {
	_, ok := m.Get(d)
	return ok
}

// With returns a copy of m with text stored for d. Blank text removes the
// entry instead, so the map never holds whitespace-only reminders.
func (m Map) With(d Date, text string) Map {
	if isBlank(text) {
		return m.Without(d)
	}
	next := m.clone(1)
	next.entries[ToKey(d)] = text
	return next
}

// Without returns a copy of m with the reminder for d removed. When d has no
// reminder m itself is returned.
func (m Map) Without(d Date) Map {
	key := ToKey(d)
	if _, ok := m.entries[key]; !ok {
		return m
	}
	next := m.clone(0)
	delete(next.entries, key)
	return next
}

// Keys returns the keys in ascending date order.
func (m Map) Keys() []Key {
	keys := make([]Key, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, _ := ParseKey(string(keys[i]))
		b, _ := ParseKey(string(keys[j]))
		return a.Before(b)
	})
	return keys
}

// Entries returns every reminder sorted by date.
func (m Map) Entries() []Entry {
	keys := m.Keys()
	out := make([]Entry, len(keys))
	for i, k := range keys {
		out[i] = Entry{Key: k, Text: m.entries[k]}
	}
	return out
}

// InMonth returns the days of the 0-based month that hold a reminder.
func (m Map) InMonth(year, month int) map[int]bool {
	first := NewDate(year, month, 1)
	days := make(map[int]bool)
	for k := range m.entries {
		d, err := ParseKey(string(k))
		if err != nil || d.Year != first.Year || d.Month != first.Month {
			continue
		}
		days[d.Day] = true
	}
	return days
}

// MarshalJSON encodes the map as a flat object of DateKey to text.
func (m Map) MarshalJSON() ([]byte, error) {
	raw := make(map[string]string, len(m.entries)+len(m.foreign))
	for k, v := range m.foreign {
		raw[k] = v
	}
	for k, v := range m.entries {
		raw[string(k)] = v
	}
	return json.Marshal(raw)
}

// UnmarshalJSON accepts only a flat JSON object of string values. Entries with
// blank text are dropped; unrecognised keys are kept aside.
func (m *Map) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("reminder: persisted value is not an object")
	}
	parsed, _ := MapOf(raw)
	*m = parsed
	return nil
}

func (m Map) clone(extra int) Map {
	entries := make(map[Key]string, len(m.entries)+extra)
	for k, v := range m.entries {
		entries[k] = v
	}
	return Map{entries: entries, foreign: m.foreign}
}

// Foreign returns how many persisted entries were kept without being
// recognised as reminders.
func (m Map) Foreign() int {
	return len(m.foreign)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
