package pack

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource is the generator a single pack draw consumes.
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

// NewSeededRNG returns a reproducible generator: equal seeds yield equal sequences.
func NewSeededRNG(seed int64) RandomSource {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// randomSeed picks a seed for callers that did not supply one.
func randomSeed() int64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Int64()
	}
	return int64(binary.BigEndian.Uint64(buf[:]))
}
