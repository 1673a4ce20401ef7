package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/theapemachine/qreg"
)

/*
A circuit program is a small TOML file:

	qubits = 2

	[[gate]]
	kind = "hadamard"
	indices = [0]

	[[gate]]
	kind = "cnot"
	indices = [0, 1]

	[[gate]]
	kind = "phase"
	indices = [1]
	theta = 1.5707963

Kinds are the engine's closed gate set plus "bell", which calls
CreateBellPair on its two indices. Theta stays optional in the schema so
a phase gate without it reaches the engine and fails with its own
MissingParameter error rather than a parse error.
*/
type gateSpec struct {
	Kind    string   `toml:"kind"`
	Indices []int    `toml:"indices"`
	Theta   *float64 `toml:"theta"`
}

type circuitProgram struct {
	Qubits int        `toml:"qubits"`
	Gates  []gateSpec `toml:"gate"`
}

func loadProgram(path string) (circuitProgram, error) {
	var prog circuitProgram
	if _, err := toml.DecodeFile(path, &prog); err != nil {
		return circuitProgram{}, fmt.Errorf("load circuit program: %w", err)
	}
	if prog.Qubits <= 0 {
		return circuitProgram{}, fmt.Errorf("circuit program needs qubits > 0, got %d", prog.Qubits)
	}
	return prog, nil
}

// applyTo replays the program onto a register, one gate per entry.
func (p circuitProgram) applyTo(register *qreg.Register) error {
	for n, spec := range p.Gates {
		if err := applyGate(register, spec); err != nil {
			return fmt.Errorf("gate %d (%s): %w", n, spec.Kind, err)
		}
	}
	return nil
}

func applyGate(register *qreg.Register, spec gateSpec) error {
	if strings.EqualFold(spec.Kind, "bell") {
		if len(spec.Indices) != 2 {
			return fmt.Errorf("bell wants 2 indices, got %d", len(spec.Indices))
		}
		return register.CreateBellPair(spec.Indices[0], spec.Indices[1])
	}

	kind, err := parseKind(spec.Kind)
	if err != nil {
		return err
	}
	return register.Apply(qreg.Gate{
		Kind:    kind,
		Indices: spec.Indices,
		Theta:   spec.Theta,
	})
}

func parseKind(name string) (qreg.GateKind, error) {
	switch strings.ToLower(name) {
	case "flip":
		return qreg.Flip, nil
	case "hadamard":
		return qreg.Hadamard, nil
	case "phase":
		return qreg.Phase, nil
	case "cnot":
		return qreg.Cnot, nil
	case "swap":
		return qreg.Swap, nil
	default:
		return 0, fmt.Errorf("unknown gate kind %q", name)
	}
}
