package model

// Rhythm feels.
const (
	FeelStraight   = "straight"
	FeelSwing      = "swing"
	FeelSyncopated = "syncopated"
)

// GeneratorConfig is the input to every algorithm variant. It is read-only
// within a generation call.
type GeneratorConfig struct {
	Key        string
	Scale      string
	Tempo      float64
	LengthBars float64
	OctaveLow  int
	OctaveHigh int
	Feel       string

	// Seed for the random source. 0 means seed from the clock, which makes
	// output non-reproducible.
	Seed int64
}
