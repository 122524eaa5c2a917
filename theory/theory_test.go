package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCMajorSingleOctave(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]int{60, 62, 64, 65, 67, 69, 71}, ScaleNotes("C", "major", 4, 4))
}

func TestCMajorThreeOctaves(t *testing.T) {
	notes := ScaleNotes("C", "major", 3, 5)

	assert := assert.New(t)
	assert.Len(notes, 21)
	for i := 1; i < len(notes); i++ {
		assert.Greater(notes[i], notes[i-1])
	}
}

func TestScaleNotesClippedToPlayableRange(t *testing.T) {
	// C0 is midi 12; only A0 (21) and B0 (23) survive the clip
	assert.Equal(t, []int{21, 23}, ScaleNotes("C", "major", 0, 0))
}

func TestScaleNotesSwapsInvertedOctaveRange(t *testing.T) {
	assert.Equal(t, ScaleNotes("C", "major", 3, 5), ScaleNotes("C", "major", 5, 3))
}

func TestUnknownScaleFallsBackToMajor(t *testing.T) {
	assert.Equal(t, ScaleNotes("C", "major", 4, 4), ScaleNotes("C", "nonsense", 4, 4))
}

func TestTablesAreIsolatedFromCallers(t *testing.T) {
	def := GetScale("major")
	def.Intervals[0] = 99
	def.ChordTones[0] = 99

	fresh := GetScale("major")

	assert := assert.New(t)
	assert.Equal(0, fresh.Intervals[0])
	assert.Equal(1, fresh.ChordTones[0])
}

func TestNoteToMidi(t *testing.T) {
	cases := []struct {
		name   string
		octave int
		want   int
	}{
		{"C", 4, 60},
		{"A", 4, 69},
		{"Bb", 2, 46},
		{"F#", 3, 54},
		{"Gb", 3, 54},
		{"B", 0, 23},
	}
	assert := assert.New(t)
	for _, c := range cases {
		assert.Equal(c.want, NoteToMidi(c.name, c.octave), "%v%v", c.name, c.octave)
	}
}

func TestUnknownNoteNameResolvesToC(t *testing.T) {
	assert.Equal(t, 60, NoteToMidi("X", 4))
}

func TestMidiName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C4", MidiName(60))
	assert.Equal("C#4", MidiName(61))
	assert.Equal("A0", MidiName(21))
	assert.Equal("G9", MidiName(127))
}

func TestDegreeOf(t *testing.T) {
	assert := assert.New(t)

	degree, ok := DegreeOf(64, "C", "major") // E4
	assert.True(ok)
	assert.Equal(3, degree)

	degree, ok = DegreeOf(62, "C", "major") // D4
	assert.True(ok)
	assert.Equal(2, degree)

	_, ok = DegreeOf(66, "C", "major") // F#4
	assert.False(ok)

	// degree matching is modulo 12: E5 is still degree 3
	degree, ok = DegreeOf(76, "C", "major")
	assert.True(ok)
	assert.Equal(3, degree)
}

func TestIsChordTone(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsChordTone(60, "C", "major"))  // root
	assert.True(IsChordTone(64, "C", "major"))  // 3rd
	assert.False(IsChordTone(62, "C", "major")) // 2nd
	assert.False(IsChordTone(66, "C", "major")) // out of scale
}

func TestChromaticScaleHasNoChordTones(t *testing.T) {
	assert := assert.New(t)
	for midi := 60; midi < 72; midi++ {
		assert.False(IsChordTone(midi, "C", "chromatic"))
	}
}

func TestNearest(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(62, Nearest(63, []int{60, 62, 65}))
	// equidistant candidates break toward the earlier index
	assert.Equal(60, Nearest(61, []int{60, 62}))
	// empty list passes the pitch through
	assert.Equal(61, Nearest(61, nil))
}

func TestBeatsToSeconds(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(4.0, BeatsToSeconds(8, 120), 1e-9)
	assert.InDelta(1.0, BeatsToSeconds(1, 60), 1e-9)
}
