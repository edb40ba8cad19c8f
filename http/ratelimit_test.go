package http_test

import (
	"testing"
	"time"

	falehttp "github.com/fwojciec/fale/http"
	"github.com/stretchr/testify/assert"
)

func TestClientLimiter_Allow(t *testing.T) {
	t.Parallel()

	t.Run("limits each client separately", func(t *testing.T) {
		t.Parallel()

		l := falehttp.NewClientLimiter(0.001, 1)

		assert.True(t, l.Allow("10.0.0.1"))
		assert.False(t, l.Allow("10.0.0.1"))
		assert.True(t, l.Allow("10.0.0.2"))
	})

	t.Run("allows a burst", func(t *testing.T) {
		t.Parallel()

		l := falehttp.NewClientLimiter(0.001, 3)

		for i := 0; i < 3; i++ {
			assert.True(t, l.Allow("client"))
		}
		assert.False(t, l.Allow("client"))
	})

	t.Run("raises burst below one", func(t *testing.T) {
		t.Parallel()

		l := falehttp.NewClientLimiter(0.001, 0)

		assert.True(t, l.Allow("client"))
	})

	t.Run("drops idle clients", func(t *testing.T) {
		t.Parallel()

		l := falehttp.NewClientLimiter(0.001, 1)
		l.IdleTimeout = 20 * time.Millisecond

		for _, key := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
			assert.True(t, l.Allow(key))
		}
		assert.Equal(t, 3, l.Len())

		time.Sleep(50 * time.Millisecond)

		assert.True(t, l.Allow("10.0.0.4"))
		assert.Equal(t, 1, l.Len())
	})

	t.Run("keeps active clients", func(t *testing.T) {
		t.Parallel()

		l := falehttp.NewClientLimiter(0.001, 1)
		l.IdleTimeout = time.Hour

		assert.True(t, l.Allow("10.0.0.1"))
		assert.True(t, l.Allow("10.0.0.2"))
		assert.False(t, l.Allow("10.0.0.1"))
		assert.Equal(t, 2, l.Len())
	})
}
