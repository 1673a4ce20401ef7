package qreg

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
)

/*
Qubit holds the amplitude pair of a single simulated qubit: alpha weights
the |0⟩ outcome, beta the |1⟩ outcome. A fresh qubit starts in |0⟩.
|alpha|² + |beta|² stays 1 within tolerance across every operation.

Qubits are owned by a Register and addressed by index; the measured latch
makes collapse terminal, so re-reading a measured qubit is a pure lookup.
*/
type Qubit struct {
	alpha complex128 // |0⟩ amplitude
	beta  complex128 // |1⟩ amplitude

	measured bool
	outcome  int
}

func NewQubit() Qubit {
	return Qubit{alpha: 1}
}

// ApplyFlip swaps the amplitudes (the X gate). Applying it twice restores
// the exact original pair.
func (q *Qubit) ApplyFlip() {
	q.alpha, q.beta = q.beta, q.alpha
	q.measured = false
}

func (q *Qubit) ApplyHadamard() {
	// H = 1/√2 * [1  1]
	//           [1 -1]
	newAlpha := (q.alpha + q.beta) / complex(math.Sqrt2, 0)
	newBeta := (q.alpha - q.beta) / complex(math.Sqrt2, 0)
	q.alpha = newAlpha
	q.beta = newBeta
	q.measured = false
}

// ApplyPhase rotates the |1⟩ amplitude by theta radians. Magnitudes are
// untouched, so normalization holds trivially.
func (q *Qubit) ApplyPhase(theta float64) {
	q.beta *= cmplx.Exp(complex(0, theta))
	q.measured = false
}

// ProbabilityOne is the chance a measurement reads 1, |beta|².
func (q *Qubit) ProbabilityOne() float64 {
	mag := cmplx.Abs(q.beta)
	return mag * mag
}

// Amplitudes returns the current pair for inspection.
func (q *Qubit) Amplitudes() (alpha, beta complex128) {
	return q.alpha, q.beta
}

// Norm is |alpha|² + |beta|², which must stay within tolerance of 1.
func (q *Qubit) Norm() float64 {
	a := cmplx.Abs(q.alpha)
	b := cmplx.Abs(q.beta)
	return a*a + b*b
}

/*
classify derives the basis classification from the amplitudes alone.
Entanglement is not visible at this level; the Register overlays the
tracker's verdict on top of this one.
*/
func (q *Qubit) classify(tolerance float64) Classification {
	switch {
	case q.ProbabilityOne() <= tolerance:
		return Zero
	case q.ProbabilityOne() >= 1-tolerance:
		return One
	default:
		return Superposition
	}
}

/*
measure draws one outcome with P(1) = |beta|² from the supplied generator,
collapses the amplitudes to the matching classical pair and latches the
result. Already-measured qubits return their latched bit without touching
the generator.

This is the un-grouped path only; grouped qubits collapse together through
the register's measurement protocol.
*/
func (q *Qubit) measure(rng *rand.Rand) int {
	if q.measured {
		return q.outcome
	}

	bit := 0
	if rng.Float64() < q.ProbabilityOne() {
		bit = 1
	}
	q.collapse(bit)
	return bit
}

// collapse forces the amplitudes to the classical pair for bit and marks
// the qubit measured.
func (q *Qubit) collapse(bit int) {
	if bit == 1 {
		q.alpha, q.beta = 0, 1
	} else {
		q.alpha, q.beta = 1, 0
	}
	q.measured = true
	q.outcome = bit
}

func (q *Qubit) String() string {
	switch {
	case q.ProbabilityOne() <= 1e-9:
		return "|0⟩"
	case q.ProbabilityOne() >= 1-1e-9:
		return "|1⟩"
	default:
		return fmt.Sprintf("%.3f|0⟩ + %.3f|1⟩", q.alpha, q.beta)
	}
}
