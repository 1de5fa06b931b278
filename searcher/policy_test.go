package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2.0*math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + sqrt(c^2*ln(N)/n)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("unvisited children weigh nothing", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		require.Zero(t, policy.weight(5.0, 0))
		require.Equal(t, policy.evaluate(5.0, 10), policy.weight(5.0, 10))
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		rewards := 5.0

		score1 := policy.evaluate(rewards, 10)
		score2 := policy.evaluate(rewards, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})
}

func TestNormalize(t *testing.T) {
	t.Run("rewards span zero to one", func(t *testing.T) {
		require.Equal(t, 1.0, normalize(-10))
		require.Equal(t, 0.0, normalize(36))
		require.InDelta(t, 36.0/46, normalize(0), 1e-12)
	})

	t.Run("lower scores earn more", func(t *testing.T) {
		require.Greater(t, normalize(3), normalize(13))
	})
}
