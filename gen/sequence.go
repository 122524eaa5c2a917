package gen

import (
	"github.com/jsphweid/lickgen/model"
)

// SequenceOptions are the tunables of the sequence variant.
type SequenceOptions struct {
	NoteBeats float64 // duration of each pattern note
	StepMax   int     // max scale-degree transposition per repetition
}

func defaultSequenceOptions() SequenceOptions {
	return SequenceOptions{NoteBeats: 0.5, StepMax: 3}
}

// Abstract interval patterns as scale-degree offsets.
var sequenceShapes = map[string][]int{
	"ascending":  {0, 1, 2, 3},
	"descending": {0, -1, -2, -3},
	"turn":       {0, 1, 0, -1},
	"mordent":    {0, 1, 0},
	"arch":       {0, 2, 4, 2},
}

var sequenceShapeNames = []string{"ascending", "descending", "turn", "mordent", "arch"}

// Transposition contours across repetitions.
const (
	contourUp = iota
	contourDown
	contourArch
	numContours
)

type sequencePattern struct {
	base
	opts SequenceOptions
}

func newSequencePattern(cfg model.GeneratorConfig) *sequencePattern {
	return &sequencePattern{base: newBase(cfg), opts: defaultSequenceOptions()}
}

func (g *sequencePattern) Algorithm() string {
	return SequencePat
}

func (g *sequencePattern) Generate() []model.Note {
	pattern := sequenceShapes[sequenceShapeNames[g.rng.Intn(len(sequenceShapeNames))]]
	patternBeats := float64(len(pattern)) * g.opts.NoteBeats

	total := g.totalBeats()
	reps := int(total / patternBeats)
	if reps == 0 {
		// short phrases still get one (trimmed) statement
		reps = 1
	}

	step := 1 + g.rng.Intn(g.opts.StepMax)
	contour := g.rng.Intn(numContours)
	baseIdx := g.indexOf(g.pick(true))

	var out []model.Note
	beat := 0.0
	offset := 0
	for rep := 0; rep < reps; rep++ {
		for _, degreeOff := range pattern {
			if beat >= total-1e-9 {
				return out
			}
			// wrap rather than clamp so long sequences fold back through
			// the range instead of pinning at its edge
			idx := g.wrapIndex(baseIdx + offset + degreeOff)
			out = append(out, g.note(g.noteAt(idx), g.swung(beat), g.opts.NoteBeats))
			beat += g.opts.NoteBeats
		}

		switch contour {
		case contourUp:
			offset += step
		case contourDown:
			offset -= step
		case contourArch:
			if rep < reps/2 {
				offset += step
			} else {
				offset -= step
			}
		}
	}
	return out
}

func (g *sequencePattern) wrapIndex(i int) int {
	n := len(g.notes)
	return ((i % n) + n) % n
}
