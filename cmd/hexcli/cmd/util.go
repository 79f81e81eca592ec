package cmd

import "math/rand"

func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
