package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/lickgen/constants"
	"github.com/jsphweid/lickgen/gen"
	"github.com/jsphweid/lickgen/midifile"
	"github.com/spf13/cobra"
)

var exportFile string

func init() {
	rootCmd.AddCommand(exportCmd)
	addConfigFlags(exportCmd)
	exportCmd.Flags().StringVar(&exportFile, "file", "", "output path, defaults to a fresh file under the output dir")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Generates a lick and writes it as a MIDI file",
	Long:  `Generates a lick and writes it as a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		export()
	},
}

func export() {
	seq := gen.Generate(flagAlgorithm, configFromFlags())

	path := exportFile
	if path == "" {
		dir := constants.GetOutputDir()
		if err := os.MkdirAll(dir, 0777); err != nil {
			panic("Could not create output dir: " + err.Error())
		}
		path = filepath.Join(dir, uuid.New().String()+".mid")
	}

	if err := midifile.Write(seq, path); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v notes to %v\n", len(seq.Notes), path)
}
