package cmd

import (
	"fmt"

	"github.com/jsphweid/lickgen/gen"
	"github.com/jsphweid/lickgen/player"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var playPort int

func init() {
	rootCmd.AddCommand(playCmd)
	addConfigFlags(playCmd)
	playCmd.Flags().IntVar(&playPort, "port", 0, "MIDI out port number")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Generates a lick and plays it on a MIDI out port",
	Long:  `Generates a lick and plays it on a MIDI out port`,
	Run: func(cmd *cobra.Command, args []string) {
		play()
	},
}

func play() {
	defer midi.CloseDriver()

	seq := gen.Generate(flagAlgorithm, configFromFlags())
	fmt.Printf("Playing %v notes on port %v...\n", len(seq.Notes), playPort)
	if err := player.Play(seq, playPort); err != nil {
		fmt.Println("Could not play: " + err.Error())
	}
}
