package skiplist

import (
	"math/bits"
	randv2 "math/rand/v2"
)

// Source supplies the uniform random bits consumed by level draws. It
// is satisfied by math/rand/v2 sources; tests inject deterministic
// implementations to pin exact heights.
type Source interface {
	Uint64() uint64
}

const float64Unit = 1.0 / (1 << 53)

func newDefaultSource() Source {
	return randv2.NewPCG(randv2.Uint64(), randv2.Uint64())
}

// randomLevel draws a height in [1, maxLevel] with
// P(height >= k) = p^(k-1): one successful coin flip per extra level.
func randomLevel(src Source, p float64, maxLevel int) int {
	lvl := 1
	if maxLevel <= 1 {
		return lvl
	}

	if p == 0.5 {
		// Each trailing zero bit is one successful flip.
		lvl += bits.TrailingZeros64(src.Uint64())
		if lvl > maxLevel {
			lvl = maxLevel
		}
		return lvl
	}

	for lvl < maxLevel {
		randFloat := float64(src.Uint64()>>11) * float64Unit
		if randFloat >= p {
			break
		}
		lvl++
	}

	return lvl
}
