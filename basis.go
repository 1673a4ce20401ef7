package qreg

/*
Classification describes how a qubit presents when inspected: a definite
classical basis state, a superposition of both, or membership in an
entanglement group. It is always derived from the current amplitudes and
the tracker, never stored as independent truth.
*/
type Classification int

const (
	Zero Classification = iota
	One
	Superposition
	Entangled
)

func (c Classification) String() string {
	switch c {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Superposition:
		return "superposition"
	case Entangled:
		return "entangled"
	default:
		return "unknown"
	}
}
