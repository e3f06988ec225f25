// Package analytic provides closed-form M/M/c/K steady-state metrics for a
// capacity-constrained ward. It is independent of the simulation engine
// and serves as a theoretical reference point for simulated KPIs.
package analytic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metrics holds steady-state queueing metrics for an M/M/c/K system with
// arrival rate lambda, per-server service rate mu, c servers, and total
// system capacity K (servers plus waiting spaces).
type Metrics struct {
	Rho            float64   // traffic intensity lambda / (c*mu)
	StateProbs     []float64 // P(n patients in system), n = 0..K
	MeanQueueLen   float64   // Lq
	MeanSystemLen  float64   // Ls
	MeanQueueWait  float64   // Wq
	MeanSystemWait float64   // Ws
	BlockingProb   float64   // P(K), probability an arrival is turned away
	Utilization    float64   // fraction of servers busy
}

// Compute evaluates the M/M/c/K formulas. Factorials saturate to +Inf past
// the float64 range and non-finite intermediate terms are dropped rather
// than propagated, so extreme parameters degrade gracefully instead of
// returning NaN.
func Compute(lambda, mu float64, c, k int) (*Metrics, error) {
	if lambda <= 0 {
		return nil, fmt.Errorf("arrival rate must be positive, got %f", lambda)
	}
	if mu <= 0 {
		return nil, fmt.Errorf("service rate must be positive, got %f", mu)
	}
	if c < 1 {
		return nil, fmt.Errorf("server count must be at least 1, got %d", c)
	}
	if k < c {
		return nil, fmt.Errorf("capacity K (%d) must be at least server count c (%d)", k, c)
	}

	rho := lambda / (float64(c) * mu)
	a := lambda / mu

	// Normalizing constant: sum over the Erlang terms plus the geometric
	// tail for states above c.
	p0Sum := 0.0
	for n := 0; n < c; n++ {
		if term := math.Pow(a, float64(n)) / safeFactorial(n); isFinite(term) {
			p0Sum += term
		}
	}
	head := math.Pow(a, float64(c)) / safeFactorial(c)
	var tail float64
	if rho == 1 {
		tail = head * float64(k-c+1)
	} else {
		tail = head * (1 - math.Pow(rho, float64(k-c+1))) / (1 - rho)
	}
	if !isFinite(tail) {
		tail = 0
	}
	p0 := 1.0
	if denom := p0Sum + tail; denom > 0 && isFinite(denom) {
		p0 = 1 / denom
	}

	probs := make([]float64, k+1)
	for n := 0; n <= k; n++ {
		var pn float64
		if n <= c {
			pn = math.Pow(a, float64(n)) / safeFactorial(n) * p0
		} else {
			pn = math.Pow(a, float64(n)) / (safeFactorial(c) * math.Pow(float64(c), float64(n-c))) * p0
		}
		if isFinite(pn) {
			probs[n] = pn
		}
	}
	if total := floats.Sum(probs); total > 0 {
		floats.Scale(1/total, probs)
	}

	m := &Metrics{Rho: rho, StateProbs: probs}
	for n := c; n <= k; n++ {
		m.MeanQueueLen += float64(n-c) * probs[n]
	}
	for n := 0; n <= k; n++ {
		m.MeanSystemLen += float64(n) * probs[n]
	}
	m.MeanQueueWait = m.MeanQueueLen / lambda
	m.MeanSystemWait = m.MeanSystemLen / lambda
	m.BlockingProb = probs[k]
	m.Utilization = math.Min((m.MeanSystemLen-m.MeanQueueLen)/float64(c), 1)
	return m, nil
}

// safeFactorial computes n! as a float64, saturating to +Inf instead of
// overflowing.
func safeFactorial(n int) float64 {
	if n > 170 {
		return math.Inf(1)
	}
	return math.Gamma(float64(n) + 1)
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
