package main

import (
	"fmt"
	"os"

	"github.com/dokind/esim-admin/pkg/terminal/commands"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "esim-admin",
		Short: "Inspect eSIM destinations, packages, and resale prices",
	}

	rootCmd.AddCommand(
		commands.NewCountriesCmd(),
		commands.NewPackagesCmd(),
		commands.NewPricesCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
