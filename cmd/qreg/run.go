package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qreg"
)

var runCmd = &cobra.Command{
	Use:   "run <circuit.toml>",
	Short: "Build a register from a circuit program, apply it and measure",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runProgram(cmd *cobra.Command, args []string) error {
	prog, err := loadProgram(args[0])
	if err != nil {
		return err
	}

	cfg := qreg.NewConfig()
	cfg.Seed = viper.GetUint64("seed")

	register := qreg.NewRegister(cfg)
	for i := 0; i < prog.Qubits; i++ {
		register.AddQubit()
	}
	if err := prog.applyTo(register); err != nil {
		return err
	}

	banner("circuit run")
	fmt.Print(register.String())
	fmt.Printf("measured %s\n", register.ToBinaryString())

	metrics := register.Metrics()
	fmt.Printf("gates %v, measurements %d, group collapses %d\n",
		metrics.GatesApplied, metrics.Measurements, metrics.GroupCollapses)
	return nil
}
