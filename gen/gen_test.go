package gen

import (
	"math"
	"testing"

	"github.com/jsphweid/lickgen/constants"
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/theory"
	"github.com/stretchr/testify/assert"
)

func testConfig(seed int64) model.GeneratorConfig {
	return model.GeneratorConfig{
		Key:        "C",
		Scale:      "major",
		Tempo:      120,
		LengthBars: 2,
		OctaveLow:  3,
		OctaveHigh: 5,
		Feel:       model.FeelStraight,
		Seed:       seed,
	}
}

func phraseSeconds(cfg model.GeneratorConfig) float64 {
	return cfg.LengthBars * constants.BeatsPerBar * 60 / cfg.Tempo
}

func TestTimeContainment(t *testing.T) {
	assert := assert.New(t)
	for _, algorithm := range Algorithms() {
		for seed := int64(1); seed <= 10; seed++ {
			cfg := testConfig(seed)
			seq := Generate(algorithm, cfg)
			limit := phraseSeconds(cfg) + 1e-6
			for _, n := range seq.Notes {
				assert.GreaterOrEqual(n.Start, 0.0, "%v seed %v", algorithm, seed)
				assert.Greater(n.Duration, 0.0, "%v seed %v", algorithm, seed)
				assert.LessOrEqual(n.Start+n.Duration, limit, "%v seed %v", algorithm, seed)
			}
		}
	}
}

func TestVelocityBounds(t *testing.T) {
	assert := assert.New(t)
	for _, algorithm := range Algorithms() {
		for seed := int64(1); seed <= 10; seed++ {
			seq := Generate(algorithm, testConfig(seed))
			for _, n := range seq.Notes {
				assert.GreaterOrEqual(n.Velocity, 0.3, algorithm)
				assert.LessOrEqual(n.Velocity, 1.0, algorithm)
			}
		}
	}
}

func TestNoteIdentityIsFresh(t *testing.T) {
	seq := Generate(ScaleRun, testConfig(1))

	assert := assert.New(t)
	assert.NotEmpty(seq.Notes)
	seen := make(map[string]bool)
	for _, n := range seq.Notes {
		assert.NotEmpty(n.ID)
		assert.False(seen[n.ID], "duplicate note id")
		seen[n.ID] = true
	}
}

// Variants without chromatic ornaments must stay inside the diatonic set.
func TestDiatonicPitchContainment(t *testing.T) {
	cfg := testConfig(3)
	inScale := make(map[uint8]bool)
	for _, m := range theory.ScaleNotes(cfg.Key, cfg.Scale, cfg.OctaveLow, cfg.OctaveHigh) {
		inScale[uint8(m)] = true
	}

	assert := assert.New(t)
	for _, algorithm := range []string{ScaleRun, Arpeggio, Motif, SequencePat, CallResponse} {
		for seed := int64(1); seed <= 10; seed++ {
			cfg := testConfig(seed)
			seq := Generate(algorithm, cfg)
			for _, n := range seq.Notes {
				assert.True(inScale[n.Midi], "%v seed %v emitted %v outside the scale", algorithm, seed, n.Name)
			}
		}
	}
}

// The arpeggio cycle is root-3rd-5th-3rd anchored on the mid-range root, not
// an arbitrary chord tone.
func TestArpeggioTriadCycle(t *testing.T) {
	assert := assert.New(t)
	for seed := int64(1); seed <= 10; seed++ {
		g := &arpeggio{
			base: newBase(testConfig(seed)),
			opts: ArpeggioOptions{PassingProb: 0, ShiftProb: 0, Variation: 0},
		}
		notes := g.Generate()
		assert.NotEmpty(notes)

		// C major over octaves 3-5 anchors on C4
		want := []uint8{60, 64, 67, 64}
		for i, n := range notes {
			assert.Equal(want[i%4], n.Midi, "seed %v step %v", seed, i)
		}
	}
}

// Register shifts move whole octaves, so the triad pitch classes never change.
func TestArpeggioRegisterShiftsStayOnTriad(t *testing.T) {
	assert := assert.New(t)
	for seed := int64(1); seed <= 10; seed++ {
		g := &arpeggio{
			base: newBase(testConfig(seed)),
			opts: ArpeggioOptions{PassingProb: 0, ShiftProb: 1, Variation: 0},
		}
		notes := g.Generate()
		assert.NotEmpty(notes)
		for _, n := range notes {
			assert.Contains([]int{0, 4, 7}, int(n.Midi)%12, "seed %v emitted %v", seed, n.Name)
		}
	}
}

// Bebop's chromatic ornaments sit at most two semitones off a scale tone.
func TestBebopPitchesNearScale(t *testing.T) {
	cfg := testConfig(5)
	scale := theory.ScaleNotes(cfg.Key, cfg.Scale, cfg.OctaveLow, cfg.OctaveHigh)

	assert := assert.New(t)
	for seed := int64(1); seed <= 10; seed++ {
		cfg.Seed = seed
		seq := Generate(Bebop, cfg)
		assert.NotEmpty(seq.Notes)
		for _, n := range seq.Notes {
			nearest := theory.Nearest(int(n.Midi), scale)
			diff := int(n.Midi) - nearest
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(diff, 2, "seed %v note %v", seed, n.Name)
		}
	}
}

// Bebop targets land on the strong beats and are harmonically stable.
func TestBebopTargetsOnStrongBeats(t *testing.T) {
	cfg := testConfig(9)
	seq := Generate(Bebop, cfg)

	assert := assert.New(t)
	secondsPerBeat := 60 / cfg.Tempo
	for strong := 0.0; strong < cfg.LengthBars*constants.BeatsPerBar; strong += 2 {
		at := strong * secondsPerBeat
		var target *model.Note
		for i := range seq.Notes {
			if seq.Notes[i].Start > at-1e-9 && seq.Notes[i].Start < at+1e-9 {
				target = &seq.Notes[i]
				break
			}
		}
		if assert.NotNil(target, "no note on strong beat %v", strong) {
			assert.True(theory.IsChordTone(int(target.Midi), cfg.Key, cfg.Scale),
				"strong beat %v holds %v", strong, target.Name)
		}
	}
}

func TestBebopChordToneFallbackOnChromatic(t *testing.T) {
	cfg := testConfig(4)
	cfg.Scale = "chromatic"

	seq := Generate(Bebop, cfg)

	assert := assert.New(t)
	assert.NotEmpty(seq.Notes)
	for _, n := range seq.Notes {
		assert.False(theory.IsChordTone(int(n.Midi), cfg.Key, cfg.Scale))
	}
}

func TestBluesTurnaroundTail(t *testing.T) {
	cfg := testConfig(7)
	cfg.LengthBars = 4

	seq := Generate(Blues, cfg)

	assert := assert.New(t)
	assert.GreaterOrEqual(len(seq.Notes), 4)

	root := theory.NoteToMidi(cfg.Key, 4)
	tail := seq.Notes[len(seq.Notes)-4:]
	assert.Equal(uint8(root+9), tail[0].Midi)
	assert.Equal(uint8(root+8), tail[1].Midi)
	assert.Equal(uint8(root+7), tail[2].Midi)
	assert.Equal(uint8(root), tail[3].Midi)

	// the turnaround replaces the last bar
	secondsPerBeat := 60 / cfg.Tempo
	assert.InDelta(12*secondsPerBeat, tail[0].Start, 1e-9)
}

func TestBluesSkipsTurnaroundOnShortPhrases(t *testing.T) {
	cfg := testConfig(7)
	cfg.LengthBars = 1

	seq := Generate(Blues, cfg)

	root := theory.NoteToMidi(cfg.Key, 4)
	assert := assert.New(t)
	assert.NotEmpty(seq.Notes)
	if len(seq.Notes) >= 4 {
		tail := seq.Notes[len(seq.Notes)-4:]
		same := tail[0].Midi == uint8(root+9) && tail[1].Midi == uint8(root+8) &&
			tail[2].Midi == uint8(root+7) && tail[3].Midi == uint8(root)
		assert.False(same, "one-bar phrase should not get a turnaround")
	}
}

// Every blues pitch is a blues-scale tone, a bend grace a semitone under a
// blue note, or a turnaround tone.
func TestBluesPitchContainment(t *testing.T) {
	allowed := make(map[int]bool)
	for _, off := range bluesOffsets {
		allowed[off] = true
	}
	for off := range blueNoteOffsets {
		allowed[(off+11)%12] = true
	}
	// the turnaround walks 6 -> b6 -> 5 -> root
	allowed[9] = true
	allowed[8] = true

	assert := assert.New(t)
	for seed := int64(1); seed <= 10; seed++ {
		cfg := testConfig(seed)
		cfg.LengthBars = 4
		seq := Generate(Blues, cfg)
		assert.NotEmpty(seq.Notes)

		root := theory.PitchClass(cfg.Key)
		for _, n := range seq.Notes {
			pc := ((int(n.Midi)-root)%12 + 12) % 12
			assert.True(allowed[pc], "seed %v emitted %v", seed, n.Name)
		}
	}
}

func TestSeedDeterminism(t *testing.T) {
	assert := assert.New(t)
	for _, algorithm := range Algorithms() {
		a := Generate(algorithm, testConfig(99))
		b := Generate(algorithm, testConfig(99))

		assert.Equal(len(a.Notes), len(b.Notes), algorithm)
		for i := range a.Notes {
			x, y := a.Notes[i], b.Notes[i]
			// ids are always fresh; everything else must repeat
			x.ID, y.ID = "", ""
			assert.Equal(x, y, algorithm)
		}
	}
}

func TestUnknownAlgorithmFallsBackToScaleRun(t *testing.T) {
	seq := Generate("does-not-exist", testConfig(1))
	assert.Equal(t, ScaleRun, seq.Algorithm)
}

func TestSequenceCarriesConfigMetadata(t *testing.T) {
	cfg := testConfig(1)
	seq := Generate(Arpeggio, cfg)

	assert := assert.New(t)
	assert.Equal(cfg.Key, seq.Key)
	assert.Equal(cfg.Scale, seq.Scale)
	assert.Equal(cfg.Tempo, seq.Tempo)
	assert.Equal(cfg.LengthBars, seq.LengthBars)
	assert.Equal(Arpeggio, seq.Algorithm)
}

// A zero tempo or length is corrected, and the sequence metadata must carry
// the corrected values the notes were actually timed with.
func TestZeroTempoConfigIsNormalized(t *testing.T) {
	cfg := testConfig(1)
	cfg.Tempo = 0
	cfg.LengthBars = 0

	seq := Generate(ScaleRun, cfg)

	assert := assert.New(t)
	assert.Equal(120.0, seq.Tempo)
	assert.Equal(1.0, seq.LengthBars)
	assert.NotEmpty(seq.Notes)
	limit := constants.BeatsPerBar*60.0/120.0 + 1e-6
	for _, n := range seq.Notes {
		assert.LessOrEqual(n.Start+n.Duration, limit)
	}
}

func TestDegenerateOctaveRangeIsWidened(t *testing.T) {
	cfg := testConfig(3)
	cfg.OctaveLow = 0
	cfg.OctaveHigh = 0

	seq := Generate(ScaleRun, cfg)

	assert := assert.New(t)
	assert.NotEmpty(seq.Notes)
	// octave 0 alone holds only A0 and B0; widening must reach past B0 (23)
	var past bool
	for _, n := range seq.Notes {
		if n.Midi > 23 {
			past = true
		}
	}
	assert.True(past)
}

func TestFractionalBarPhrases(t *testing.T) {
	assert := assert.New(t)
	for _, algorithm := range Algorithms() {
		cfg := testConfig(11)
		cfg.LengthBars = 0.25
		seq := Generate(algorithm, cfg)
		limit := phraseSeconds(cfg) + 1e-6
		for _, n := range seq.Notes {
			assert.LessOrEqual(n.Start+n.Duration, limit, algorithm)
		}
	}
}

func TestSwingFeelDelaysOffBeats(t *testing.T) {
	cfg := testConfig(21)
	cfg.Feel = model.FeelSwing

	seq := Generate(SequencePat, cfg)

	// eighth notes on off-beats shift a 16th late: no onset may sit exactly
	// on a x.5 beat
	secondsPerBeat := 60 / cfg.Tempo
	assert := assert.New(t)
	assert.NotEmpty(seq.Notes)
	for _, n := range seq.Notes {
		beat := n.Start / secondsPerBeat
		frac := beat - math.Floor(beat)
		assert.Greater(math.Abs(frac-0.5), 1e-3, "onset %v sits on an off-beat", beat)
	}
}
