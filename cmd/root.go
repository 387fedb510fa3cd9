package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/petscare/petscare_backend/cmd/http"
	systemcmd "github.com/petscare/petscare_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "petscare",
	Short: "PetsCare veterinary clinic appointment backend.",
	Long: `PetsCare is the backend for a veterinary clinic booking platform.
Pet owners request appointments with doctors, doctors accept or reject them,
and owners are notified in-app, in real time, and by email.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
