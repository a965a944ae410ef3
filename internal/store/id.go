package store

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateID builds identifiers like "APT-k3f9qz-lx2m0a1": prefix, a short
// random base-36 fragment, and the current time in base 36. Practical
// uniqueness only; collisions are possible in theory and not handled.
func GenerateID(prefix string) string {
	frag := make([]byte, 6)
	for i := range frag {
		frag[i] = base36[rand.IntN(len(base36))]
	}
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	return prefix + "-" + string(frag) + "-" + ts
}
