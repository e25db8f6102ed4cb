package utils

import (
	"encoding/hex"
	"math/rand"

	"github.com/google/uuid"
)

// NewID mints a UUIDv4 string from r. Identifiers come from the run's
// seeded source so replays reproduce them.
func NewID(r *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(r)).String()
}

// HexToken returns n random bytes from r, hex encoded (2n characters).
// Used for file-name and link suffixes. A rand.Rand Read never fails.
func HexToken(r *rand.Rand, n int) string {
	buf := make([]byte, n)
	r.Read(buf)
	return hex.EncodeToString(buf)
}
