package window

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_PrincenBradley(t *testing.T) {
	// w[i]^2 + w[n-1-i]^2 == 1 is what makes overlap-add unity-gain;
	// all three shapes must satisfy it.
	for _, shape := range []Shape{Sine, KBD, Vorbis} {
		for _, n := range []int{18, 128, 1024} {
			w := Table(shape, n)
			require.Len(t, w, n)
			for i := 0; i < n; i++ {
				sum := float64(w[i])*float64(w[i]) + float64(w[n-1-i])*float64(w[n-1-i])
				require.InDelta(t, 1.0, sum, 1e-5, "shape %d n %d i %d", shape, n, i)
			}
		}
	}
}

func TestTable_RisesMonotonically(t *testing.T) {
	for _, shape := range []Shape{Sine, KBD, Vorbis} {
		w := Table(shape, 256)
		require.Greater(t, w[0], float32(0))
		for i := 1; i < len(w); i++ {
			require.GreaterOrEqual(t, w[i], w[i-1], "shape %d i %d", shape, i)
		}
		require.Less(t, w[len(w)-1], float32(1.0001))
	}
}

func TestTable_Cached(t *testing.T) {
	a := Table(KBD, 1024)
	b := Table(KBD, 1024)
	require.Equal(t, &a[0], &b[0], "same size must return the shared table")

	c := Table(KBD, 128)
	require.NotEqual(t, &a[0], &c[0])
}

func TestTable_KBDAlphaSwitch(t *testing.T) {
	// Short blocks use alpha 6, long blocks alpha 4.
	require.Equal(t, kbd(128, 6.0), Table(KBD, 128))
	require.Equal(t, kbd(1024, 4.0), Table(KBD, 1024))
	require.NotEqual(t, kbd(128, 4.0), Table(KBD, 128))
}
