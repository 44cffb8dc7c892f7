// Package store provides the on-disk key-value storage reminders persist to.
package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/calabacita/pkg/reminder"
)

const tempDir = ".tmp"

// Persistence is a reminder.KV backed by a diskv directory. Each key is one
// file directly under the base path.
type Persistence struct {
	d        *diskv.Diskv
	basePath string
}

var (
	_ reminder.KV     = (*Persistence)(nil)
	_ reminder.Eraser = (*Persistence)(nil)
)

// Load creates a Persistence backed by diskv using the provided config. A nil
// config is loaded with LoadConfig.
func Load(cfg Config) (*Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &Persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath is the directory values are stored in.
func (p *Persistence) BasePath() string {
	return p.basePath
}

// Read returns the stored value or reminder.ErrNotFound.
func (p *Persistence) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, reminder.ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, nil
}

// Write stores val under key. diskv writes through a temp file so readers never
// see a half-written value.
func (p *Persistence) Write(key string, val []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if err := p.d.Write(key, val); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// Erase removes key. Erasing a missing key is not an error.
func (p *Persistence) Erase(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys in order.
func (p *Persistence) Keys(ctx context.Context) []string {
	var keys []string
	for key := range p.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, ".") || strings.Contains(key, "/") {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func validKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("store: key required")
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
