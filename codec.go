package qreg

import "strings"

/*
ClassicalCodec round-trips byte strings through a register using only
classical, ungrouped qubits: one qubit per bit, most-significant bit
first. It exists to exercise the full add/gate/measure pipeline
deterministically, not to transport data.
*/
type ClassicalCodec struct {
	register *Register
}

func NewClassicalCodec(register *Register) *ClassicalCodec {
	return &ClassicalCodec{register: register}
}

/*
EncodeString clears the register wholesale (prior qubits and groups are
discarded, not merged), then appends eight fresh |0⟩ qubits per byte of
s, flipping each qubit whose bit is 1. No superposition or entanglement
is ever produced on this path.
*/
func (c *ClassicalCodec) EncodeString(s string) error {
	c.register.clear()
	for i := 0; i < len(s); i++ {
		for shift := 7; shift >= 0; shift-- {
			index := c.register.AddQubit()
			if s[i]>>uint(shift)&1 == 1 {
				if err := c.register.Apply(FlipGate(index)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

/*
DecodeString measures every qubit and folds the bits back into bytes,
MSB first, eight per character. A trailing chunk of fewer than eight
bits is dropped. Immediately after EncodeString the result equals the
encoded string, since encoding only produces classical qubits.
*/
func (c *ClassicalCodec) DecodeString() string {
	bits := c.register.MeasureAll()
	var sb strings.Builder
	sb.Grow(len(bits) / 8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | byte(bits[i+j])
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
