package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lickgen",
	Short: "Procedural lick generator",
	Long:  `Generates short melodic phrases constrained by key, scale and rhythm feel.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
