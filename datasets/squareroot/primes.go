package squareroot

import (
	"math"

	"github.com/jbarham/primegen"
)

// Primes returns up to count primes starting at from. Primes are never
// perfect squares, so their floor square root is always strictly below.
func Primes(from uint32, count int) (ret []Sample) {
	var pg = primegen.New()
	pg.SkipTo(uint64(from))
	for i := 0; i < count; i++ {
		var p = pg.Next()
		if p > math.MaxUint32 {
			break
		}
		ret = append(ret, Sample(p))
	}
	return
}
