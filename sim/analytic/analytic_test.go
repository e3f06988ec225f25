package analytic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonum.org/v1/gonum/floats"
)

func TestCompute_MM11(t *testing.T) {
	// One server, no waiting room, lambda = mu: half the arrivals find the
	// server busy and are lost.
	m, err := Compute(1.0, 1.0, 1, 1)
	require.NoError(t, err)

	require.Len(t, m.StateProbs, 2)
	assert.InDelta(t, 0.5, m.StateProbs[0], 1e-12)
	assert.InDelta(t, 0.5, m.StateProbs[1], 1e-12)
	assert.InDelta(t, 0.5, m.BlockingProb, 1e-12)
	assert.InDelta(t, 0.0, m.MeanQueueLen, 1e-12)
	assert.InDelta(t, 0.5, m.MeanSystemLen, 1e-12)
	assert.InDelta(t, 0.5, m.Utilization, 1e-12)
}

func TestCompute_MM12(t *testing.T) {
	// rho exactly 1 exercises the degenerate geometric-tail branch; all
	// three states are equally likely.
	m, err := Compute(1.0, 1.0, 1, 2)
	require.NoError(t, err)

	third := 1.0 / 3.0
	require.Len(t, m.StateProbs, 3)
	for n, p := range m.StateProbs {
		assert.InDelta(t, third, p, 1e-12, "P(%d)", n)
	}
	assert.InDelta(t, third, m.BlockingProb, 1e-12)
	assert.InDelta(t, third, m.MeanQueueLen, 1e-12)
	assert.InDelta(t, 1.0, m.MeanSystemLen, 1e-12)
	assert.InDelta(t, third, m.MeanQueueWait, 1e-12)
	assert.InDelta(t, 2.0/3.0, m.Utilization, 1e-12)
}

func TestCompute_StateProbabilitiesSumToOne(t *testing.T) {
	cases := []struct {
		name       string
		lambda, mu float64
		c, k       int
	}{
		{"underloaded", 2.0, 1.0, 3, 10},
		{"critically loaded", 6.0, 0.4, 15, 20},
		{"overloaded", 9.0, 0.25, 10, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Compute(tc.lambda, tc.mu, tc.c, tc.k)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, floats.Sum(m.StateProbs), 1e-9)
			assert.GreaterOrEqual(t, m.BlockingProb, 0.0)
			assert.LessOrEqual(t, m.BlockingProb, 1.0)
			assert.LessOrEqual(t, m.Utilization, 1.0)
			assert.LessOrEqual(t, m.MeanQueueLen, m.MeanSystemLen)
		})
	}
}

func TestCompute_HugeStateSpaceStaysFinite(t *testing.T) {
	// Factorials past 170! saturate instead of overflowing; the
	// distribution must still normalize.
	m, err := Compute(100.0, 1.0, 200, 400)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, floats.Sum(m.StateProbs), 1e-9)
	for n, p := range m.StateProbs {
		assert.False(t, p < 0 || p > 1, "P(%d) = %v out of range", n, p)
	}
}

func TestCompute_RejectsInvalidParameters(t *testing.T) {
	cases := []struct {
		name       string
		lambda, mu float64
		c, k       int
		wantErr    string
	}{
		{"zero arrival rate", 0, 1, 1, 1, "arrival rate"},
		{"negative service rate", 1, -0.5, 1, 1, "service rate"},
		{"zero servers", 1, 1, 0, 1, "server count"},
		{"capacity below servers", 1, 1, 5, 4, "capacity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(tc.lambda, tc.mu, tc.c, tc.k)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
