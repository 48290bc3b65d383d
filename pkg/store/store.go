package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// Well-known collection keys. These match the storage keys the app has
// always used, so existing data hydrates unchanged.
const (
	ChatCollection    = "numa-chat-history"
	MoodCollection    = "numa-mood-history"
	JournalCollection = "numa-journal-entries"

	// InstallDismissed is a standalone flag, not a collection. It gates
	// the one-time install hint and must not collide with the keys above.
	InstallDismissed = "numa-pwa-dismissed"
)

// Persistence is the storage contract for named collections. Each
// collection is a JSON array written whole on every mutation; callers
// read-modify-write under a single-writer assumption.
type Persistence interface {
	// Load decodes the named collection into the provided slice pointer.
	// A missing collection leaves it untouched and returns nil. Corrupt
	// stored data returns an error; callers should fall back to an empty
	// collection rather than fail.
	Load(name string, into any) error
	// Save replaces the named collection with the JSON encoding of v.
	Save(name string, v any) error
	// Flag reports whether the named boolean flag has been set.
	Flag(name string) bool
	// SetFlag records the named boolean flag.
	SetFlag(name string, set bool) error
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    func(string) []string { return nil },
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) Load(name string, into any) error {
	if !p.d.Has(name) {
		return nil
	}
	data, err := p.d.Read(name)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, into); err != nil {
		return fmt.Errorf("store: decode %s: %w", name, err)
	}
	return nil
}

func (p *persistence) Save(name string, v any) error {
	if name == "" {
		return errors.New("store: collection name required")
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", name, err)
	}
	if err := p.d.Write(name, data); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}

func (p *persistence) Flag(name string) bool {
	if !p.d.Has(name) {
		return false
	}
	data, err := p.d.Read(name)
	if err != nil {
		return false
	}
	return string(data) == "true"
}

func (p *persistence) SetFlag(name string, set bool) error {
	if name == "" {
		return errors.New("store: flag name required")
	}
	val := "false"
	if set {
		val = "true"
	}
	if err := p.d.Write(name, []byte(val)); err != nil {
		return fmt.Errorf("store: write %s: %w", name, err)
	}
	return nil
}
