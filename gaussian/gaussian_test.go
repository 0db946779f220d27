package gaussian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var grid = []float64{-6, -3, -1.5, -0.5, 0, 0.5, 1.5, 3, 6}

func TestPdf(t *testing.T) {
	t.Run("peak at zero", func(t *testing.T) {
		require.InDelta(t, 1.0/math.Sqrt(2.0*math.Pi), Pdf(0), 1e-12,
			"Should equal 1/sqrt(2*pi) at the mode")
	})

	t.Run("symmetric", func(t *testing.T) {
		for _, x := range grid {
			require.InDelta(t, Pdf(x), Pdf(-x), 1e-15,
				"Density should be even in x")
		}
	})
}

func TestCdf(t *testing.T) {
	t.Run("median at zero", func(t *testing.T) {
		require.InDelta(t, 0.5, Cdf(0), 1e-12, "Should be 0.5 at zero")
	})

	t.Run("complement symmetry", func(t *testing.T) {
		for _, x := range grid {
			require.InDelta(t, 1.0, Cdf(x)+Cdf(-x), 1e-12,
				"Cdf(x)+Cdf(-x) should sum to 1")
		}
	})

	t.Run("monotone increasing", func(t *testing.T) {
		for i := 1; i < len(grid); i++ {
			require.Greater(t, Cdf(grid[i]), Cdf(grid[i-1]),
				"Cdf should strictly increase over the grid")
		}
	})
}

func TestVWin(t *testing.T) {
	t.Run("matches pdf over cdf in the well-conditioned region", func(t *testing.T) {
		for _, x := range grid {
			require.InDelta(t, Pdf(x)/Cdf(x), VWin(x), 1e-12,
				"Should equal pdf(t)/cdf(t) away from the tail")
		}
	})

	t.Run("falls back to -t deep in the lower tail", func(t *testing.T) {
		require.Equal(t, 40.0, VWin(-40),
			"Should return -t when the cdf denominator vanishes")
	})

	t.Run("stays above -t", func(t *testing.T) {
		for _, x := range grid {
			require.Greater(t, VWin(x), -x-1e-9,
				"v(t) should stay above its asymptote -t")
		}
	})

	t.Run("decreases with t", func(t *testing.T) {
		for i := 1; i < len(grid); i++ {
			require.Less(t, VWin(grid[i]), VWin(grid[i-1]),
				"A larger lead should need a smaller correction")
		}
	})
}

func TestWWin(t *testing.T) {
	t.Run("bounded between 0 and 1", func(t *testing.T) {
		for _, x := range grid {
			w := WWin(x)
			require.Greater(t, w, 0.0, "w(t) should be positive")
			require.LessOrEqual(t, w, 1.0, "w(t) should not exceed 1")
		}
	})

	t.Run("consistent with v", func(t *testing.T) {
		for _, x := range grid {
			v := VWin(x)
			require.InDelta(t, v*(v+x), WWin(x), 1e-12,
				"w(t) should equal v(t)*(v(t)+t)")
		}
	})
}

func TestVDraw(t *testing.T) {
	t.Run("zero at a balanced pairing", func(t *testing.T) {
		require.InDelta(t, 0.0, VDraw(0, 0.5), 1e-12,
			"No mean shift when the difference is centered")
	})

	t.Run("antisymmetric in t", func(t *testing.T) {
		for _, x := range []float64{0.25, 0.5, 1, 2} {
			require.InDelta(t, -VDraw(x, 0.5), VDraw(-x, 0.5), 1e-12,
				"v_draw should be odd in t")
		}
	})

	t.Run("pulls back toward the margin", func(t *testing.T) {
		require.Negative(t, VDraw(1.5, 0.5),
			"A leader who drew should be pulled down")
		require.Positive(t, VDraw(-1.5, 0.5),
			"A trailer who drew should be pulled up")
	})

	t.Run("guards a vanished interval", func(t *testing.T) {
		require.Equal(t, 0.0, VDraw(40, 0.5),
			"Should return 0 when the interval mass vanishes")
	})
}

func TestWDraw(t *testing.T) {
	t.Run("positive near the center", func(t *testing.T) {
		for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
			require.Positive(t, WDraw(x, 0.5),
				"A draw within range should carry variance reduction")
		}
	})

	t.Run("bounded by 1", func(t *testing.T) {
		for _, x := range []float64{-2, -1, 0, 1, 2} {
			require.LessOrEqual(t, WDraw(x, 0.5), 1.0,
				"w_draw should not exceed 1")
		}
	})

	t.Run("guards a vanished interval", func(t *testing.T) {
		require.Equal(t, 0.0, WDraw(40, 0.5),
			"Should return 0 when the interval mass vanishes")
	})
}
