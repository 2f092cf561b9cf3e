package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"toolcheck/internal/config"
)

// Record is the last answer the registry gave for one tool. Records are
// replaced whole on refresh, never patched in place.
type Record struct {
	LastCheck uint64 `json:"last_check"`
	Latest    string `json:"latest"`
}

// Cache maps tool names to their most recent registry answer. It is persisted
// as a single JSON object and fully rewritten on every save; concurrent
// writers race with last-writer-wins, which is fine for an optimization.
type Cache map[string]Record

// Path returns the cache file location under the toolcheck config dir.
func Path() (string, error) {
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tool-versions.json"), nil
}

// Load reads the cache from disk. A missing, unreadable or corrupt file
// yields an empty cache; loading never fails.
func Load() Cache {
	p, err := Path()
	if err != nil {
		return Cache{}
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return Cache{}
	}
	var c Cache
	if err := json.Unmarshal(b, &c); err != nil || c == nil {
		return Cache{}
	}
	return c
}

// Save writes the cache to disk, creating the directory if needed.
// Persistence is best-effort: every failure is swallowed so that a read-only
// or homeless environment never disturbs the caller.
func Save(c Cache) {
	p, err := Path()
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(p, b, 0o644)
}

// Clear removes the cache file. A missing file is not an error.
func Clear() error {
	p, err := Path()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Names returns the cached tool names in sorted order.
func Names(c Cache) []string {
	out := make([]string, 0, len(c))
	for name := range c {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
