package util

import (
	"crypto/rand"
	"math/big"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateShareSlug returns a random 10-character base36 slug for shareable
// result URLs. Uniqueness is enforced by the storage layer; callers retry on
// collision.
func GenerateShareSlug() string {
	return randomSlug(10)
}

func randomSlug(length int) string {
	max := big.NewInt(int64(len(slugAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand should never fail; fall back to a fixed char
			// rather than panic in a request path.
			out[i] = slugAlphabet[0]
			continue
		}
		out[i] = slugAlphabet[n.Int64()]
	}
	return string(out)
}
