package assembler

import "math/rand"

// Shuffle permutes paths in place so that every ordering is equally likely.
// Ordering is intentionally not reproducible; no seed is exposed.
func Shuffle(paths []string) {
	rand.Shuffle(len(paths), func(i, j int) {
		paths[i], paths[j] = paths[j], paths[i]
	})
}
