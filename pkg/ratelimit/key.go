package ratelimit

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
)

// maxKeyLength bounds stored key length so adversarial callers cannot bloat
// the store with arbitrarily long identities.
const maxKeyLength = 64

// KeyFunc extracts a client key from the request.
type KeyFunc func(r *http.Request) string

// Composite combines multiple key functions into one, joining the non-empty
// parts with ":". Keys longer than 64 characters are hashed with FNV-1a.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}
		if len(parts) == 1 && len(parts[0]) <= maxKeyLength {
			return parts[0]
		}

		combined := strings.Join(parts, ":")
		if len(combined) > maxKeyLength {
			h := fnv.New64a()
			h.Write([]byte(combined))
			// Base36 keeps the hashed form compact (~13 chars).
			return strconv.FormatUint(h.Sum64(), 36)
		}
		return combined
	}
}
