package update

import (
	"context"
	"io"
	"os"
	"time"

	"toolcheck/internal/cache"
	"toolcheck/internal/registry"
	"toolcheck/internal/system"
)

// cacheValiditySeconds is how long a registry answer is served from disk
// before the network is consulted again.
const cacheValiditySeconds = 86400

// Environment hooks honored by OptionsFromEnv.
const (
	// EnvDisable disables update checks entirely when set to "0".
	EnvDisable = "TOOLCHECK_UPDATE_CHECK"
	// EnvFakeLatest supplies a fake "latest" version for deterministic
	// testing, bypassing both cache and network.
	EnvFakeLatest = "TOOLCHECK_FAKE_LATEST"
)

// Options carries everything the check would otherwise pull from the process
// environment, so tests and host tools can drive it without mutating globals.
// The zero value is not useful; start from DefaultOptions or OptionsFromEnv.
type Options struct {
	// Probe queries the remote registry. Defaults to crates.io.
	Probe registry.Probe
	// Disabled suppresses the background check altogether.
	Disabled bool
	// FakeLatest, when non-empty, is answered directly via IsNewer without
	// touching cache or network.
	FakeLatest string
	// EvictStale drops a cached "latest" once it is detected as behind the
	// running tool (e.g. after a local upgrade), forcing the next cycle to
	// refresh earlier.
	EvictStale bool
	// InstallHint is the remediation command printed under the advisory.
	// Empty means "go install <tool>@latest".
	InstallHint string
	// Output receives the advisory lines. Defaults to stderr.
	Output io.Writer

	// now overrides the clock in tests.
	now func() uint64
}

// DefaultOptions returns the production configuration.
func DefaultOptions() Options {
	return Options{
		Probe:      registry.NewCratesIO(),
		EvictStale: true,
		Output:     os.Stderr,
	}
}

// OptionsFromEnv is DefaultOptions plus the environment hooks. This is the
// only place the update core reads the process environment.
func OptionsFromEnv() Options {
	o := DefaultOptions()
	if os.Getenv(EnvDisable) == "0" {
		o.Disabled = true
	}
	if fake := os.Getenv(EnvFakeLatest); fake != "" {
		o.FakeLatest = fake
	}
	return o
}

func (o Options) timestamp() uint64 {
	if o.now != nil {
		return o.now()
	}
	return uint64(time.Now().Unix())
}

// resolve decides whether a newer version of tool exists, consulting the
// disk cache first and the registry only when the cached answer has aged
// out. It runs on the background goroutine and never returns an error:
// every failure degrades to ("", false).
func resolve(tool, current string, o Options) (string, bool) {
	if o.FakeLatest != "" {
		if IsNewer(current, o.FakeLatest) {
			return o.FakeLatest, true
		}
		return "", false
	}

	c := cache.Load()
	now := o.timestamp()

	if rec, ok := c[tool]; ok {
		// Saturate on clock skew so a last_check in the future still
		// counts as fresh instead of underflowing.
		var elapsed uint64
		if now > rec.LastCheck {
			elapsed = now - rec.LastCheck
		}
		if elapsed < cacheValiditySeconds {
			if IsNewer(current, rec.Latest) {
				return rec.Latest, true
			}
			if o.EvictStale && IsNewer(rec.Latest, current) {
				delete(c, tool)
				cache.Save(c)
			}
			return "", false
		}
	}

	if o.Probe == nil {
		return "", false
	}
	ctx, cancel := context.WithTimeout(context.Background(), registry.FetchTimeout)
	defer cancel()
	latest, err := o.Probe.Latest(ctx, tool)
	if err != nil || latest == "" {
		// No negative caching: leave the stale record for the next attempt.
		system.Logger.Debug("version probe failed", "tool", tool, "err", err)
		return "", false
	}

	c[tool] = cache.Record{LastCheck: now, Latest: latest}
	cache.Save(c)

	if IsNewer(current, latest) {
		return latest, true
	}
	return "", false
}
