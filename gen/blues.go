package gen

import (
	"github.com/jsphweid/lickgen/constants"
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/rhythm"
	"github.com/jsphweid/lickgen/theory"
	"github.com/jsphweid/lickgen/util"
)

// BluesOptions are the tunables of the blues variant.
type BluesOptions struct {
	BendProb   float64 // chance a blue note gets a simulated bend
	Turnaround bool    // close the form with a turnaround line
	Variation  float64
}

func defaultBluesOptions() BluesOptions {
	return BluesOptions{BendProb: 0.3, Turnaround: true, Variation: 0.2}
}

// Minor pentatonic plus the flat five.
var bluesOffsets = []int{0, 3, 5, 6, 7, 10}

// The b3, b5 and b7 that get bent.
var blueNoteOffsets = map[int]bool{3: true, 6: true, 10: true}

const (
	phraseBars     = 1
	bendGraceBeats = 0.1
	// a turnaround needs the form to be at least this long, and fires once
	// no more than one bar remains
	turnaroundMinTotal = 8.0
	turnaroundWindow   = 4.0
)

type blues struct {
	base
	opts BluesOptions
}

func newBlues(cfg model.GeneratorConfig) *blues {
	g := &blues{base: newBase(cfg), opts: defaultBluesOptions()}

	// the variant plays its own six-note scale regardless of the configured
	// one; root and fifth are the stable tones
	lo := util.Min(cfg.OctaveLow, cfg.OctaveHigh)
	hi := util.Max(cfg.OctaveLow, cfg.OctaveHigh)
	notes := bluesNotes(cfg.Key, lo, hi)
	for len(notes) < minScalePitches && (lo > 0 || hi < 8) {
		if lo > 0 {
			lo--
		}
		if hi < 8 {
			hi++
		}
		notes = bluesNotes(cfg.Key, lo, hi)
	}
	g.notes = notes
	g.chordTones = make(map[int]bool)
	for _, m := range notes {
		pc := g.offsetFromRoot(m)
		if pc == 0 || pc == 7 {
			g.chordTones[m] = true
		}
	}
	return g
}

func bluesNotes(key string, octaveLow int, octaveHigh int) []int {
	var res []int
	for oct := octaveLow; oct <= octaveHigh; oct++ {
		root := theory.NoteToMidi(key, oct)
		for _, off := range bluesOffsets {
			m := root + off
			if m < constants.MinPlayableMidi || m > constants.MaxPlayableMidi {
				continue
			}
			res = append(res, m)
		}
	}
	return res
}

func (g *blues) Algorithm() string {
	return Blues
}

func (g *blues) offsetFromRoot(midi int) int {
	return ((midi-theory.PitchClass(g.cfg.Key))%12 + 12) % 12
}

func (g *blues) Generate() []model.Note {
	total := g.totalBeats()

	var out []model.Note
	beat := 0.0
	question := true

	for beat < total-1e-9 {
		remaining := total - beat
		if g.opts.Turnaround && remaining <= turnaroundWindow+1e-9 && total >= turnaroundMinTotal {
			out = append(out, g.turnaround(beat, remaining)...)
			break
		}

		phraseLen := util.Min(float64(phraseBars*constants.BeatsPerBar), remaining)
		out = append(out, g.phrase(beat, phraseLen, question)...)
		question = !question
		beat += phraseLen
	}
	return out
}

// phrase walks the blues scale for one bar. Questions end hanging on the 5th
// or b7; answers resolve to the root.
func (g *blues) phrase(start float64, beats float64, question bool) []model.Note {
	plan := rhythm.Plan(beats, rhythm.ForFeel(g.cfg.Feel, g.rng), g.opts.Variation, g.rng)
	if len(plan) == 0 {
		return nil
	}

	idx := g.indexOf(g.pick(true))
	var res []model.Note
	t := start
	for i, d := range plan {
		midi := g.noteAt(idx)
		if i == len(plan)-1 {
			midi = g.endingTone(midi, question)
		}

		if blueNoteOffsets[g.offsetFromRoot(midi)] && d > 2*bendGraceBeats && g.rng.Float64() < g.opts.BendProb {
			// simulate a bend: a short grace a semitone under the target
			res = append(res, quiet(g.note(midi-1, g.swung(t), bendGraceBeats)))
			res = append(res, g.note(midi, g.swung(t)+bendGraceBeats, d-bendGraceBeats))
		} else {
			res = append(res, g.note(midi, g.swung(t), d))
		}
		t += d

		step := 1
		if g.rng.Float64() < 0.3 {
			step = 2
		}
		if g.rng.Float64() < 0.5 {
			step = -step
		}
		idx = util.Clamp(idx+step, 0, len(g.notes)-1)
	}
	return res
}

// endingTone snaps a phrase ending to its cadence: 5th/b7 for questions, the
// root for answers.
func (g *blues) endingTone(near int, question bool) int {
	wanted := map[int]bool{0: true}
	if question {
		wanted = map[int]bool{7: true, 10: true}
	}
	var candidates []int
	for _, m := range g.notes {
		if wanted[g.offsetFromRoot(m)] {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return near
	}
	return theory.Nearest(near, candidates)
}

// turnaround closes the form with a descending 6 -> b6 -> 5 -> root line in
// octave 4, lightly detached for a shuffle feel.
func (g *blues) turnaround(start float64, beats float64) []model.Note {
	root := theory.NoteToMidi(g.cfg.Key, 4)
	pitches := []int{root + 9, root + 8, root + 7, root}

	slot := beats / float64(len(pitches))
	var res []model.Note
	for i, p := range pitches {
		res = append(res, g.note(p, start+float64(i)*slot, slot*0.75))
	}
	return res
}
