package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

var rootCmd = &cobra.Command{
	Use:   "qreg",
	Short: "Multi-qubit register simulator driver",
	Long: "qreg drives the register engine from the outside: it builds registers,\n" +
		"applies gates and reads back nothing but classical bits and summaries.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Uint64("seed", 1, "seed for the register's random source")
	_ = viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
}

func initConfig() {
	viper.SetConfigName(".qreg")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}

	viper.SetEnvPrefix("QREG")
	viper.AutomaticEnv()

	// No config file is fine; flags and env carry the defaults.
	_ = viper.ReadInConfig()
}

// banner prints the styled command title and a unique run id so separate
// invocations are tellable apart in captured output.
func banner(title string) {
	fmt.Println(titleStyle.Render(title))
	fmt.Printf("run %s\n", uuid.NewString())
}
