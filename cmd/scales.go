package cmd

import (
	"fmt"

	"github.com/jsphweid/lickgen/rhythm"
	"github.com/jsphweid/lickgen/theory"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Lists the scale and rhythm tables",
	Long:  `Lists the scale and rhythm tables`,
	Run: func(cmd *cobra.Command, args []string) {
		scales()
	},
}

func scales() {
	for _, id := range theory.ScaleIDs() {
		def := theory.GetScale(id)
		fmt.Printf("%-18v %-18v intervals %v  chord tones %v\n", id, def.Name, def.Intervals, def.ChordTones)
	}
	fmt.Println()
	for _, id := range rhythm.PatternIDs() {
		p, _ := rhythm.GetPattern(id)
		fmt.Printf("%-18v %-18v %-12v %v\n", id, p.Name, p.Feel, p.Durations)
	}
}
