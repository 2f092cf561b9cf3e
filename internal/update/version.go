package update

import (
	"strconv"
	"strings"
)

// IsNewer reports whether candidate is a newer release than current.
// Segments are compared left-to-right; when the compared segments are all
// equal the longer version wins, so "1.2" < "1.2.1".
func IsNewer(current, candidate string) bool {
	cur := parseVersion(current)
	cand := parseVersion(candidate)
	for i := 0; i < len(cur) && i < len(cand); i++ {
		if cand[i] > cur[i] {
			return true
		}
		if cand[i] < cur[i] {
			return false
		}
	}
	return len(cand) > len(cur)
}

// parseVersion splits a dotted version into numeric segments. A leading "v"
// is stripped and segments that fail to parse are dropped, not zeroed, so
// malformed input degrades to a shorter sequence instead of an error.
func parseVersion(s string) []uint64 {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")
	parts := strings.Split(s, ".")
	out := make([]uint64, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
