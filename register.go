package qreg

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/theapemachine/errnie"
)

/*
Register is an insertion-ordered collection of qubits with gate dispatch
over the closed kind set. It exclusively owns the qubit arena, the
entanglement tracker, and the random source. All qubit access goes
through the register by index; the Swap gate exchanges arena slots and
remaps tracker membership rather than aliasing qubit state.

A register is a sequentially-accessed resource. Callers needing
concurrent access must synchronize around the whole register themselves.
*/
type Register struct {
	qubits  []Qubit
	tracker *EntanglementTracker
	rng     *rand.Rand
	metrics *Metrics
	config  *Config
}

/*
NewRegister creates an empty register. A nil config selects defaults.
The random source is derived from Config.Seed, so two registers built
from equal configs replay identical measurement sequences.
*/
func NewRegister(config *Config) *Register {
	if config == nil {
		config = NewConfig()
	}
	errnie.Info(
		"NewRegister - seed %d, tolerance %v, strict %v",
		config.Seed,
		config.Tolerance,
		config.StrictBind,
	)
	return NewRegisterWithSource(config, rand.NewPCG(config.Seed, config.Seed))
}

/*
NewRegisterWithSource creates an empty register drawing randomness from
the supplied source. The source is the register's only injectable
dependency; there is no fallback to ambient global randomness.
*/
func NewRegisterWithSource(config *Config, src rand.Source) *Register {
	if config == nil {
		config = NewConfig()
	}
	return &Register{
		qubits:  make([]Qubit, 0),
		tracker: NewEntanglementTracker(config.StrictBind),
		rng:     rand.New(src),
		metrics: newMetrics(),
		config:  config,
	}
}

// Len returns the number of qubits held.
func (r *Register) Len() int {
	return len(r.qubits)
}

// AddQubit appends a fresh |0⟩ qubit and returns its index.
func (r *Register) AddQubit() int {
	r.qubits = append(r.qubits, NewQubit())
	r.metrics.recordQubit()
	return len(r.qubits) - 1
}

// Qubit returns a detached copy of the qubit at index for inspection.
func (r *Register) Qubit(index int) (Qubit, error) {
	if err := r.checkBounds(index); err != nil {
		return Qubit{}, err
	}
	return r.qubits[index], nil
}

/*
Classification reports how the qubit at index presents: tracker
membership wins, otherwise the amplitudes decide. The verdict is derived
on every call, never cached.
*/
func (r *Register) Classification(index int) (Classification, error) {
	if err := r.checkBounds(index); err != nil {
		return Zero, err
	}
	return r.classify(index), nil
}

/*
Apply validates and dispatches one gate. Validation failures
(ErrInvalidArity, ErrMissingParameter, ErrIndexOutOfRange) leave the
register untouched.

Cnot reads the control qubit classically: the target flips iff the
control classifies as One. A superposed or entangled control flips
nothing. This is a deliberate simplification carried over from the
pairwise bookkeeping model, not an oversight; conditioning the target on
control amplitude would need the full joint state vector.
*/
func (r *Register) Apply(gate Gate) error {
	if len(gate.Indices) != gate.Kind.arity() {
		return fmt.Errorf(
			"%s wants %d operand(s), got %d: %w",
			gate.Kind, gate.Kind.arity(), len(gate.Indices), ErrInvalidArity,
		)
	}
	if gate.Kind == Phase && gate.Theta == nil {
		return fmt.Errorf("%s without theta: %w", gate.Kind, ErrMissingParameter)
	}
	for _, index := range gate.Indices {
		if err := r.checkBounds(index); err != nil {
			return err
		}
	}

	switch gate.Kind {
	case Flip:
		r.qubits[gate.Indices[0]].ApplyFlip()
	case Hadamard:
		r.qubits[gate.Indices[0]].ApplyHadamard()
	case Phase:
		r.qubits[gate.Indices[0]].ApplyPhase(*gate.Theta)
	case Cnot:
		if r.classify(gate.Indices[0]) == One {
			r.qubits[gate.Indices[1]].ApplyFlip()
		}
	case Swap:
		i, j := gate.Indices[0], gate.Indices[1]
		r.qubits[i], r.qubits[j] = r.qubits[j], r.qubits[i]
		r.tracker.Remap(i, j)
	}

	r.metrics.recordGate(gate.Kind)
	return nil
}

/*
CreateBellPair entangles the qubits at i and j: Hadamard on i, Cnot from
i to j, then a tracker bind. The bind runs first so a strict-mode
ErrAlreadyBound leaves the register untouched; gate behavior is
unaffected by the ordering because a grouped control never reads as One.
*/
func (r *Register) CreateBellPair(i, j int) error {
	if err := r.checkBounds(i); err != nil {
		return err
	}
	if err := r.checkBounds(j); err != nil {
		return err
	}
	if err := r.tracker.Bind(i, j); err != nil {
		return err
	}

	// Binding re-enters the unmeasured-grouped state: group members never
	// carry a measured latch, so a later group collapse assigns every
	// member's outcome rather than contradicting a stale one.
	r.qubits[i].measured = false
	r.qubits[j].measured = false

	if err := r.Apply(HadamardGate(i)); err != nil {
		return err
	}
	return r.Apply(CnotGate(i, j))
}

// Groups exposes the tracker's current partition for diagnostics.
func (r *Register) Groups() [][]int {
	return r.tracker.Groups()
}

/*
ToBinaryString measures every qubit and concatenates the bits as '0'/'1'
characters in index order. Measurement is real: superposed and grouped
state collapses, so for non-classical registers this is a one-shot read.
*/
func (r *Register) ToBinaryString() string {
	bits := r.MeasureAll()
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, bit := range bits {
		sb.WriteByte('0' + byte(bit))
	}
	return sb.String()
}

/*
String renders a multi-line summary of the register: one line per qubit
with its amplitudes and classification, then the entanglement groups.
This is the textual surface external collaborators consume; it performs
no measurement.
*/
func (r *Register) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "register[%d]\n", len(r.qubits))
	for i := range r.qubits {
		fmt.Fprintf(&sb, "  %d: %s (%s)\n", i, r.qubits[i].String(), r.classify(i))
	}
	for _, group := range r.tracker.Groups() {
		fmt.Fprintf(&sb, "  group %v\n", group)
	}
	return sb.String()
}

// Metrics returns a detached snapshot of the register's counters.
func (r *Register) Metrics() MetricsSnapshot {
	return r.metrics.Snapshot()
}

func (r *Register) classify(index int) Classification {
	if r.tracker.Grouped(index) {
		return Entangled
	}
	return r.qubits[index].classify(r.config.Tolerance)
}

func (r *Register) checkBounds(index int) error {
	if index < 0 || index >= len(r.qubits) {
		return fmt.Errorf(
			"index %d on register of %d: %w",
			index, len(r.qubits), ErrIndexOutOfRange,
		)
	}
	return nil
}

// clear discards every qubit and group wholesale. The generator and
// counters survive; re-encoding is not a reseed.
func (r *Register) clear() {
	r.qubits = r.qubits[:0]
	r.tracker.Reset()
}
