package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cantus",
	Short: "Deterministic multi-track song generator",
	Long:  `Deterministic multi-track song generator`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
