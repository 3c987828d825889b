package units

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// TestConcurrentUse exercises composition, conversion, and arithmetic from
// many goroutines over shared descriptors. Everything here is immutable, so
// the test passes under -race without any synchronization in the package.
func TestConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t)

	shared := kilogram.Mul(meter).Div(second.Pow(Whole(2)))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int64) {
			defer wg.Done()
			for j := int64(0); j < 100; j++ {
				u := Compose(shared, meter.Pow(Whole(j%3)))
				assert.False(t, u.Dims().IsDimensionless())

				a := q(n+j, meter)
				b := q(100*(n+j+1), centimeter)
				sum, err := a.Add(b)
				assert.NoError(t, err)
				assert.True(t, sum.Unit().Equal(meter))

				_, err = Convert(kilometer, sum)
				assert.NoError(t, err)
			}
		}(int64(i))
	}
	wg.Wait()

	// The shared descriptor is untouched.
	assert.True(t, shared.Equal(kilogram.Mul(meter).Div(second.Pow(Whole(2)))))
}
