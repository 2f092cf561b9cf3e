package update

import (
	"fmt"
	"sync"
	"time"
)

// Report wait bounds. The short one suits a tool's normal exit path; the
// long one suits callers willing to wait out a full probe.
const (
	ShortWait = 500 * time.Millisecond
	SyncWait  = 6 * time.Second
)

// Checker coordinates one background version probe with a later, bounded
// read on the foreground path. Construct with New, arm with CheckAsync, and
// collect with PrintWarning or PrintWarningSync; an uncollected result costs
// nothing beyond the finishing goroutine.
type Checker struct {
	tool    string
	current string
	opts    Options

	mu sync.Mutex
	ch chan string // buffered(1); empty string means "no update"
}

// New builds a Checker for the named tool at its current version.
func New(tool, current string, opts Options) *Checker {
	if opts.Probe == nil {
		opts.Probe = DefaultOptions().Probe
	}
	if opts.Output == nil {
		opts.Output = DefaultOptions().Output
	}
	return &Checker{tool: tool, current: current, opts: opts}
}

// CheckAsync spawns the background check and returns immediately; it never
// touches the network or filesystem on the calling goroutine. Re-arming
// while a check is pending replaces the handle: the superseded goroutine
// still finishes into its own buffered channel and its result is discarded.
// A disabled checker arms nothing, so later reports are immediate no-ops.
func (c *Checker) CheckAsync() {
	if c.opts.Disabled {
		return
	}
	ch := make(chan string, 1)
	c.mu.Lock()
	c.ch = ch
	c.mu.Unlock()

	tool, current, opts := c.tool, c.current, c.opts
	go func() {
		latest, ok := resolve(tool, current, opts)
		if !ok {
			latest = ""
		}
		ch <- latest
	}()
}

// Update waits up to timeout for the pending result. Consuming a result
// disarms the channel so a second call reports nothing; timing out leaves it
// armed so a later call can still observe the eventual answer.
func (c *Checker) Update(timeout time.Duration) (string, bool) {
	c.mu.Lock()
	ch := c.ch
	c.mu.Unlock()
	if ch == nil {
		return "", false
	}
	select {
	case latest := <-ch:
		c.mu.Lock()
		if c.ch == ch {
			c.ch = nil
		}
		c.mu.Unlock()
		if latest == "" {
			return "", false
		}
		return latest, true
	case <-time.After(timeout):
		return "", false
	}
}

// PrintWarning reports with a sub-second wait, for a tool's fast exit path.
func (c *Checker) PrintWarning() {
	if latest, ok := c.Update(ShortWait); ok {
		c.printAdvisory(latest)
	}
}

// PrintWarningSync waits long enough for a full probe before reporting.
func (c *Checker) PrintWarningSync() {
	if latest, ok := c.Update(SyncWait); ok {
		c.printAdvisory(latest)
	}
}

// InstallHint is the remediation command suggested under the advisory.
func (c *Checker) InstallHint() string {
	if c.opts.InstallHint != "" {
		return c.opts.InstallHint
	}
	return "go install " + c.tool + "@latest"
}

func (c *Checker) printAdvisory(latest string) {
	fmt.Fprintf(c.opts.Output, "Note: A newer version of %s is available (current: %s, latest: %s)\n",
		c.tool, c.current, latest)
	fmt.Fprintf(c.opts.Output, "      Run: %s\n", c.InstallHint())
}
