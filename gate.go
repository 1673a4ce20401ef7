package qreg

/*
GateKind enumerates the closed set of gates the register dispatches over.
The set is exhaustive on purpose: dispatch is a tagged switch rather than
name matching, so an unhandled kind is unreachable by construction.
*/
type GateKind int

const (
	Flip GateKind = iota
	Hadamard
	Phase
	Cnot
	Swap
)

func (k GateKind) String() string {
	switch k {
	case Flip:
		return "flip"
	case Hadamard:
		return "hadamard"
	case Phase:
		return "phase"
	case Cnot:
		return "cnot"
	case Swap:
		return "swap"
	default:
		return "unknown"
	}
}

// arity is the exact operand count each kind requires.
func (k GateKind) arity() int {
	switch k {
	case Cnot, Swap:
		return 2
	default:
		return 1
	}
}

/*
Gate is one dispatchable operation: a kind, its operand indices, and the
phase angle for Phase (nil everywhere else). Build them with the
constructors below; a hand-built Phase gate with a nil Theta fails
validation with ErrMissingParameter.
*/
type Gate struct {
	Kind    GateKind
	Indices []int
	Theta   *float64
}

func FlipGate(index int) Gate {
	return Gate{Kind: Flip, Indices: []int{index}}
}

func HadamardGate(index int) Gate {
	return Gate{Kind: Hadamard, Indices: []int{index}}
}

func PhaseGate(index int, theta float64) Gate {
	return Gate{Kind: Phase, Indices: []int{index}, Theta: &theta}
}

// CnotGate reads control classically and flips target iff control reads
// as One. See Register.Apply for the documented simplification.
func CnotGate(control, target int) Gate {
	return Gate{Kind: Cnot, Indices: []int{control, target}}
}

func SwapGate(i, j int) Gate {
	return Gate{Kind: Swap, Indices: []int{i, j}}
}
