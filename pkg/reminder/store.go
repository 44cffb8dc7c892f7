// Package reminder maps calendar days to free-text reminders and persists them
// through a key-value collaborator.
package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
)

// DefaultNamespace is the key the reminder map is stored under.
const DefaultNamespace = "kawaii-reminders"

// KV is the durable key-value storage the store writes through to.
type KV interface {
	// Read returns the value for key, or ErrNotFound.
	Read(key string) ([]byte, error)
	// Write replaces the value for key.
	Write(key string, val []byte) error
}

// Eraser is implemented by KVs that can remove a key outright.
type Eraser interface {
	Erase(key string) error
}

// Store reads and writes the reminder map. Every mutation is flushed to the KV
// before the call returns.
type Store struct {
	KV        KV
	Namespace string
	Logger    *slog.Logger
}

// NewStore returns a Store persisting into kv under the default namespace.
func NewStore(kv KV) *Store {
	return &Store{KV: kv, Namespace: DefaultNamespace}
}

// Load reads the persisted map. Missing or malformed data yields an empty map;
// the problem is logged, never returned.
func (s *Store) Load(ctx context.Context) Map {
	if s.KV == nil {
		return EmptyMap()
	}
	data, err := s.KV.Read(s.StorageKey())
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger().WarnContext(ctx, "reading reminders failed, starting empty", "namespace", s.StorageKey(), "error", err)
		}
		return EmptyMap()
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		s.logger().WarnContext(ctx, "persisted reminders are malformed, starting empty", "namespace", s.StorageKey(), "error", err)
		return EmptyMap()
	}
	m, err := MapOf(raw)
	if err != nil {
		s.logger().WarnContext(ctx, "ignoring unrecognised reminder entries", "namespace", s.StorageKey(), "kept", m.Foreign(), "error", err)
	}
	return m
}

// Get returns the reminder for d.
func (s *Store) Get(m Map, d Date) (string, bool) {
	return m.Get(d)
}

// Set stores text for d and persists the full map. Whitespace-only text fails
// with a *ValidationError and leaves m untouched. A failed write is reported
// as a *PersistError next to the updated map.
func (s *Store) Set(ctx context.Context, m Map, d Date, text string) (Map, error) {
	if isBlank(text) {
		return m, &ValidationError{Date: NewDate(d.Year, d.Month, d.Day), Reason: "text is empty"}
	}
	next := m.With(d, text)
	return next, s.flush(ctx, next)
}

// Delete removes the reminder for d, if any, and persists the result.
func (s *Store) Delete(ctx context.Context, m Map, d Date) (Map, error) {
	next := m.Without(d)
	return next, s.flush(ctx, next)
}

// Reset forgets every reminder in the namespace, unrecognised entries
// included. KVs implementing Eraser have the key removed; others get an empty
// object written.
func (s *Store) Reset(ctx context.Context) (Map, error) {
	eraser, ok := s.KV.(Eraser)
	if !ok {
		return EmptyMap(), s.flush(ctx, EmptyMap())
	}
	if err := eraser.Erase(s.StorageKey()); err != nil {
		s.logger().WarnContext(ctx, "erasing reminders failed", "namespace", s.StorageKey(), "error", err)
		return EmptyMap(), &PersistError{Namespace: s.StorageKey(), Err: err}
	}
	return EmptyMap(), nil
}

func (s *Store) flush(ctx context.Context, m Map) error {
	if s.KV == nil {
		return &PersistError{Namespace: s.StorageKey(), Err: errors.New("no storage configured")}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return &PersistError{Namespace: s.StorageKey(), Err: err}
	}
	if err := s.KV.Write(s.StorageKey(), data); err != nil {
		s.logger().WarnContext(ctx, "persisting reminders failed, keeping in-memory copy", "namespace", s.StorageKey(), "error", err)
		return &PersistError{Namespace: s.StorageKey(), Err: err}
	}
	return nil
}

// StorageKey is the KV key the map is stored under.
func (s *Store) StorageKey() string {
	if s.Namespace == "" {
		return DefaultNamespace
	}
	return s.Namespace
}

func (s *Store) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}
