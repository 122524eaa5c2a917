package constants

import "os"

func GetOutputDir() string {
	path := os.Getenv("LICKGEN_OUT")
	if path != "" {
		return path
	}
	return "./out"
}

// Playable piano range. Scale spans are clipped to it even though MIDI
// technically allows 0-127.
const (
	MinPlayableMidi = 21
	MaxPlayableMidi = 108
)

const BeatsPerBar = 4

// Resolution of exported MIDI files.
const TicksPerBeat = 480

// Filename the serve command renders the latest sequence to.
const PreviewFilename = "preview.mid"
