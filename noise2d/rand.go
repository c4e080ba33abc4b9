package noise2d

import (
	"encoding/binary"
	"math/rand/v2"
)

// NewOffsetRand returns a ChaCha8 backed generator fully determined by seed.
// Two generators created with the same seed yield identical sequences.
func NewOffsetRand(seed int64) *rand.Rand {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	// Spread the seed over the key so nearby seeds do not share most key bytes.
	binary.LittleEndian.PutUint64(key[8:16], uint64(seed)*0x9e3779b97f4a7c15)
	binary.LittleEndian.PutUint64(key[16:24], ^uint64(seed))
	binary.LittleEndian.PutUint64(key[24:], uint64(seed)^0xbf58476d1ce4e5b9)
	return rand.New(rand.NewChaCha8(key))
}
