package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qreg"
)

var bellCmd = &cobra.Command{
	Use:   "bell",
	Short: "Run repeated Bell-pair trials and report outcome statistics",
	RunE:  runBell,
}

func init() {
	bellCmd.Flags().Int("shots", 2000, "number of independent trials")
	_ = viper.BindPFlag("shots", bellCmd.Flags().Lookup("shots"))
	rootCmd.AddCommand(bellCmd)
}

func runBell(cmd *cobra.Command, args []string) error {
	shots := viper.GetInt("shots")
	seed := viper.GetUint64("seed")
	if shots <= 0 {
		return fmt.Errorf("shots must be positive, got %d", shots)
	}

	banner("bell-pair trials")

	// One shared source across all shots keeps the draws one stream.
	src := rand.NewPCG(seed, seed)
	cfg := qreg.NewConfig()
	cfg.Seed = seed

	var counts [2][2]int
	ones := 0
	for shot := 0; shot < shots; shot++ {
		register := qreg.NewRegisterWithSource(cfg, src)
		register.AddQubit()
		register.AddQubit()
		if err := register.CreateBellPair(0, 1); err != nil {
			return err
		}

		first, err := register.Measure(0)
		if err != nil {
			return err
		}
		second, err := register.Measure(1)
		if err != nil {
			return err
		}
		counts[first][second]++
		ones += first
	}

	fmt.Printf("shots      %d (seed %d)\n", shots, seed)
	fmt.Printf("outcome 00 %d\n", counts[0][0])
	fmt.Printf("outcome 01 %d\n", counts[0][1])
	fmt.Printf("outcome 10 %d\n", counts[1][0])
	fmt.Printf("outcome 11 %d\n", counts[1][1])
	fmt.Printf("P(first=1) %.4f\n", float64(ones)/float64(shots))
	return nil
}
