package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/lickgen/gen"
	"github.com/jsphweid/lickgen/model"
	"github.com/spf13/cobra"
)

var (
	flagKey        string
	flagScale      string
	flagTempo      float64
	flagBars       float64
	flagOctaveLow  int
	flagOctaveHigh int
	flagFeel       string
	flagSeed       int64
	flagAlgorithm  string
)

func addConfigFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagKey, "key", "C", "key pitch class, e.g. C, F#, Bb")
	c.Flags().StringVar(&flagScale, "scale", "major", "scale id (see the scales command)")
	c.Flags().Float64Var(&flagTempo, "tempo", 120, "tempo in beats per minute")
	c.Flags().Float64Var(&flagBars, "bars", 2, "phrase length in bars")
	c.Flags().IntVar(&flagOctaveLow, "octave-low", 3, "lowest octave")
	c.Flags().IntVar(&flagOctaveHigh, "octave-high", 5, "highest octave")
	c.Flags().StringVar(&flagFeel, "feel", model.FeelStraight, "rhythm feel: straight, swing or syncopated")
	c.Flags().Int64Var(&flagSeed, "seed", 0, "random seed, 0 seeds from the clock")
	c.Flags().StringVar(&flagAlgorithm, "algorithm", gen.ScaleRun, "one of: "+strings.Join(gen.Algorithms(), ", "))
}

func configFromFlags() model.GeneratorConfig {
	return model.GeneratorConfig{
		Key:        flagKey,
		Scale:      flagScale,
		Tempo:      flagTempo,
		LengthBars: flagBars,
		OctaveLow:  flagOctaveLow,
		OctaveHigh: flagOctaveHigh,
		Feel:       flagFeel,
		Seed:       flagSeed,
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addConfigFlags(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a lick and prints it",
	Long:  `Generates a lick and prints it`,
	Run: func(cmd *cobra.Command, args []string) {
		generate()
	},
}

func generate() {
	seq := gen.Generate(flagAlgorithm, configFromFlags())
	fmt.Printf("%v notes (%v, %v %v, %vbpm, %v bars)\n",
		len(seq.Notes), seq.Algorithm, seq.Key, seq.Scale, seq.Tempo, seq.LengthBars)
	for _, n := range seq.Notes {
		fmt.Printf("%7.3fs  %-4v midi %3v  dur %.3fs  vel %.2f\n",
			n.Start, n.Name, n.Midi, n.Duration, n.Velocity)
	}
}
