package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/theapemachine/qreg"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Round-trip text through the register's classical encoding",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg := qreg.NewConfig()
	cfg.Seed = viper.GetUint64("seed")

	register := qreg.NewRegister(cfg)
	codec := qreg.NewClassicalCodec(register)

	if err := codec.EncodeString(args[0]); err != nil {
		return err
	}

	banner("classical encoding")
	fmt.Print(register.String())

	decoded := codec.DecodeString()
	fmt.Printf("decoded %q\n", decoded)
	if decoded != args[0] {
		return fmt.Errorf("round trip mismatch: %q != %q", decoded, args[0])
	}
	return nil
}
