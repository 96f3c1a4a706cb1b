package resolver

import "strings"

// PatternMatch is the outcome of the best-match scan: which key won and
// the substring captured by its "*".
type PatternMatch struct {
	Key     string
	Capture string
}

// BestPatternMatch implements C3 PatternMatcher: scan every key containing
// exactly one "*", find every key that matches q, and return the one with
// the greatest prefix length (ties broken by greatest full key length).
// Literal (non-"*") keys are the caller's responsibility — this function
// only considers pattern keys.
//
// The scan is intentionally exhaustive (no early exit) so that the
// "greatest prefix, then greatest key length" tie-break is applied
// correctly regardless of map iteration order.
func BestPatternMatch(keys []string, q string) (PatternMatch, bool) {
	var best PatternMatch
	found := false
	bestPrefixLen := -1
	bestKeyLen := -1

	for _, key := range keys {
		star := strings.IndexByte(key, '*')
		if star < 0 || strings.IndexByte(key[star+1:], '*') >= 0 {
			continue
		}

		prefix := key[:star]
		suffix := key[star+1:]

		if !strings.HasPrefix(q, prefix) || !strings.HasSuffix(q, suffix) || len(q) < len(key) {
			continue
		}

		better := len(prefix) > bestPrefixLen ||
			(len(prefix) == bestPrefixLen && len(key) > bestKeyLen)
		if !better {
			continue
		}

		bestPrefixLen = len(prefix)
		bestKeyLen = len(key)
		best = PatternMatch{
			Key:     key,
			Capture: q[len(prefix) : len(q)-len(suffix)],
		}
		found = true
	}

	return best, found
}
