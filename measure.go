package qreg

/*
Measurement protocol. Every qubit moves through a small state machine:
unmeasured-classical or unmeasured-superposed qubits collapse
independently with P(1) = |beta|², unmeasured-grouped qubits collapse
together with their whole group, and Measured is terminal: re-measuring
returns the latched bit without touching amplitudes or the generator.
*/

/*
Measure resolves the qubit at index to a classical bit.

Already-measured qubits are a pure read. Grouped qubits trigger a full
group collapse: one shared draw decides every member and the group
dissolves in the same step. Ungrouped qubits draw independently. The only
failure is ErrIndexOutOfRange; measurement is total over valid indices.
*/
func (r *Register) Measure(index int) (int, error) {
	if err := r.checkBounds(index); err != nil {
		return 0, err
	}

	if r.qubits[index].measured {
		return r.qubits[index].outcome, nil
	}

	if group, ok := r.tracker.GroupOf(index); ok {
		r.collapseGroup(group)
		return r.qubits[index].outcome, nil
	}

	bit := r.qubits[index].measure(r.rng)
	r.metrics.recordMeasurement(1)
	return bit, nil
}

/*
MeasureAll measures indices 0..n-1 in order and returns the bits. A qubit
already resolved earlier in the pass, directly or as part of a collapsed
group, contributes its latched outcome rather than being re-measured.
*/
func (r *Register) MeasureAll() []int {
	bits := make([]int, len(r.qubits))
	for i := range r.qubits {
		// The loop only visits valid indices, so Measure cannot fail.
		bits[i], _ = r.Measure(i)
	}
	return bits
}

/*
collapseGroup resolves an entire entanglement group from one shared fair
draw b. Members in ascending index order receive b at even positions and
1-b at odd positions, then the group dissolves and every member latches
Measured.

The alternating-parity assignment is inherited from the original
bookkeeping model as-is. A physically faithful simulator would fix a
single correlation per Bell state over a joint amplitude vector; this
model deliberately does not.
*/
func (r *Register) collapseGroup(members []int) {
	b := 0
	if r.rng.Float64() < 0.5 {
		b = 1
	}

	for position, index := range members {
		bit := b
		if position%2 == 1 {
			bit = 1 - b
		}
		r.qubits[index].collapse(bit)
	}

	r.tracker.Dissolve(members[0])
	r.metrics.recordGroupCollapse()
	r.metrics.recordMeasurement(1)
}
