package theory

import (
	"fmt"
	"strings"

	"github.com/jsphweid/lickgen/constants"
	"github.com/jsphweid/lickgen/util"
)

var noteOffsets = map[string]int{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4,
	"F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11,
}

var sharpNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClass returns the semitone offset from C for a note name like "C",
// "F#" or "Bb". Unknown names resolve to C rather than erroring.
func PitchClass(name string) int {
	if name == "" {
		return 0
	}
	key := strings.ToUpper(name[:1]) + name[1:]
	if offset, ok := noteOffsets[key]; ok {
		return offset
	}
	return 0
}

// NoteToMidi maps a note name and octave to a MIDI number, C4 = 60.
func NoteToMidi(name string, octave int) int {
	return (octave+1)*12 + PitchClass(name)
}

// MidiName renders a MIDI number as a sharp-spelled note name, e.g. 61 -> "C#4".
func MidiName(midi int) string {
	m := util.Clamp(midi, 0, 127)
	return fmt.Sprintf("%v%v", sharpNames[m%12], m/12-1)
}

// ScaleNotes returns the ascending MIDI numbers of the scale rooted at key
// across the inclusive octave range, clipped to the playable range.
func ScaleNotes(key string, scaleID string, octaveLow int, octaveHigh int) []int {
	def := GetScale(scaleID)
	if octaveHigh < octaveLow {
		octaveLow, octaveHigh = octaveHigh, octaveLow
	}
	var res []int
	for oct := octaveLow; oct <= octaveHigh; oct++ {
		root := NoteToMidi(key, oct)
		for _, interval := range def.Intervals {
			m := root + interval
			if m < constants.MinPlayableMidi || m > constants.MaxPlayableMidi {
				continue
			}
			res = append(res, m)
		}
	}
	return res
}

// DegreeOf returns the 1-indexed scale degree of a pitch, matching by pitch
// class modulo 12. ok is false when the pitch is not in the scale.
func DegreeOf(midi int, key string, scaleID string) (int, bool) {
	def := GetScale(scaleID)
	pc := ((midi-PitchClass(key))%12 + 12) % 12
	for i, interval := range def.Intervals {
		if interval == pc {
			return i + 1, true
		}
	}
	return 0, false
}

// IsChordTone reports whether the pitch lands on one of the scale's listed
// chord-tone degrees.
func IsChordTone(midi int, key string, scaleID string) bool {
	def := GetScale(scaleID)
	degree, ok := DegreeOf(midi, key, scaleID)
	if !ok {
		return false
	}
	for _, d := range def.ChordTones {
		if d == degree {
			return true
		}
	}
	return false
}

// Nearest returns the scale note closest to midi by absolute distance, ties
// broken toward the earlier index. Returns midi unchanged for an empty list.
func Nearest(midi int, scaleNotes []int) int {
	if len(scaleNotes) == 0 {
		return midi
	}
	best := scaleNotes[0]
	bestDist := util.Abs(midi - best)
	for _, n := range scaleNotes[1:] {
		if d := util.Abs(midi - n); d < bestDist {
			best = n
			bestDist = d
		}
	}
	return best
}

// BeatsToSeconds converts a beat count to seconds at the given tempo.
func BeatsToSeconds(beats float64, tempo float64) float64 {
	return beats * 60.0 / tempo
}
