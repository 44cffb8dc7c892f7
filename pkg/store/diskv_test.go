package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/calabacita/pkg/reminder"
)

func TestPersistenceReadWrite(t *testing.T) {
	p, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := p.Read("kawaii-reminders"); !errors.Is(err, reminder.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := p.Write("kawaii-reminders", []byte(`{}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := p.Read("kawaii-reminders")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != `{}` {
		t.Fatalf("read back %q", got)
	}
	if keys := p.Keys(context.Background()); !reflect.DeepEqual(keys, []string{"kawaii-reminders"}) {
		t.Fatalf("keys = %v", keys)
	}
	if err := p.Erase("kawaii-reminders"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase("kawaii-reminders"); err != nil {
		t.Fatalf("erase missing: %v", err)
	}
}

func TestPersistenceRejectsBadKeys(t *testing.T) {
	p, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, key := range []string{"", "a/b", "..", `a\b`} {
		if err := p.Write(key, []byte("x")); err == nil {
			t.Errorf("Write(%q) expected error", key)
		}
	}
}

func TestStoreRoundTripThroughDisk(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	p, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := reminder.NewStore(p)
	d := reminder.NewDate(2024, 2, 5)
	if _, err := s.Set(ctx, s.Load(ctx), d, "Buy flowers"); err != nil {
		t.Fatalf("set: %v", err)
	}

	reopened, err := Load(StaticConfig{Path: base})
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	m := reminder.NewStore(reopened).Load(ctx)
	if text, ok := m.Get(d); !ok || text != "Buy flowers" {
		t.Fatalf("after reload got %q, %v", text, ok)
	}
}

func TestStoreResetErasesFromDisk(t *testing.T) {
	ctx := context.Background()
	p, err := Load(StaticConfig{Path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	s := reminder.NewStore(p)
	if _, err := s.Set(ctx, s.Load(ctx), reminder.NewDate(2024, 2, 5), "Buy flowers"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := s.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if keys := p.Keys(ctx); len(keys) != 0 {
		t.Fatalf("keys after reset = %v", keys)
	}
	if _, err := p.Read(s.StorageKey()); !errors.Is(err, reminder.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after reset, got %v", err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(ConfigPathEnv, t.TempDir())
	t.Setenv("CALABACITA_PATH", "/tmp/calabacita-test.db")
	t.Setenv("CALABACITA_WEEK_START", "monday")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BasePath() != "/tmp/calabacita-test.db" {
		t.Fatalf("path = %q", cfg.BasePath())
	}
	if cfg.Namespace() != reminder.DefaultNamespace {
		t.Fatalf("namespace = %q", cfg.Namespace())
	}
	if cfg.WeekStart().String() != "monday" {
		t.Fatalf("week start = %v", cfg.WeekStart())
	}
}
