package gen

import (
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/rhythm"
	"github.com/jsphweid/lickgen/theory"
	"github.com/jsphweid/lickgen/util"
)

// ArpeggioOptions are the tunables of the arpeggio variant.
type ArpeggioOptions struct {
	PassingProb  float64 // chance of a passing tone before a chord tone
	ShiftProb    float64 // chance of an octave-register shift per cycle
	Variation    float64
	PassingShare float64 // slot fraction the passing tone takes
}

func defaultArpeggioOptions() ArpeggioOptions {
	return ArpeggioOptions{PassingProb: 0.25, ShiftProb: 0.3, Variation: 0.15, PassingShare: 0.4}
}

// The fixed triad cycle: root, 3rd, 5th, 3rd as offsets from the anchored
// root in the triad-tone list.
var arpeggioCycle = []int{0, 1, 2, 1}

type arpeggio struct {
	base
	opts ArpeggioOptions
}

func newArpeggio(cfg model.GeneratorConfig) *arpeggio {
	return &arpeggio{base: newBase(cfg), opts: defaultArpeggioOptions()}
}

func (g *arpeggio) Algorithm() string {
	return Arpeggio
}

func (g *arpeggio) Generate() []model.Note {
	tri := g.triadTones()
	roots := g.rootIndexes(tri)
	plan := rhythm.Plan(g.totalBeats(), rhythm.ForFeel(g.cfg.Feel, g.rng), g.opts.Variation, g.rng)

	// anchor the cycle on the root nearest the middle of the range
	mid := g.noteAt(len(g.notes) / 2)
	ai := 0
	for i, r := range roots {
		if util.Abs(tri[r]-mid) < util.Abs(tri[roots[ai]]-mid) {
			ai = i
		}
	}
	anchor := roots[ai]
	beat := 0.0
	prev := -1

	var out []model.Note
	for step, d := range plan {
		slot := arpeggioCycle[step%len(arpeggioCycle)]
		target := tri[util.Clamp(anchor+slot, 0, len(tri)-1)]

		emitted := false
		if prev >= 0 && d >= 0.5 && g.rng.Float64() < g.opts.PassingProb {
			if passing, ok := g.passingTone(prev, target); ok {
				passingBeats := d * g.opts.PassingShare
				out = append(out, quiet(g.note(passing, g.swung(beat), passingBeats)))
				out = append(out, g.note(target, beat+passingBeats, d-passingBeats))
				emitted = true
			}
		}
		if !emitted {
			out = append(out, g.note(target, g.swung(beat), d))
		}

		beat += d
		prev = target

		// register drift once per full cycle, a whole octave at a time
		if step%len(arpeggioCycle) == len(arpeggioCycle)-1 && g.rng.Float64() < g.opts.ShiftProb {
			if g.rng.Float64() < 0.5 {
				ai = util.Max(0, ai-1)
			} else {
				ai = util.Min(len(roots)-1, ai+1)
			}
			anchor = roots[ai]
		}
	}
	return out
}

// triadTones returns the scale notes on degrees 1, 3 and 5 across the range.
// Scales where those degrees never land fall back to the chord-tone list.
func (g *arpeggio) triadTones() []int {
	var res []int
	for _, m := range g.notes {
		if d, ok := theory.DegreeOf(m, g.cfg.Key, g.cfg.Scale); ok && (d == 1 || d == 3 || d == 5) {
			res = append(res, m)
		}
	}
	if len(res) == 0 {
		res = g.chordToneList()
	}
	return res
}

// rootIndexes lists the positions of the degree-1 tones in the triad list, one
// per octave, so register shifts always move by whole octaves.
func (g *arpeggio) rootIndexes(tri []int) []int {
	var res []int
	for i, m := range tri {
		if d, ok := theory.DegreeOf(m, g.cfg.Key, g.cfg.Scale); ok && d == 1 {
			res = append(res, i)
		}
	}
	if len(res) == 0 {
		res = append(res, 0)
	}
	return res
}

// passingTone finds a scale note strictly between two pitches, stepping from
// the source toward the target. ok is false when nothing lies between them.
func (g *arpeggio) passingTone(from int, to int) (int, bool) {
	if from == to {
		return 0, false
	}
	fromIdx := g.indexOf(from)
	toIdx := g.indexOf(to)
	if util.Abs(fromIdx-toIdx) < 2 {
		return 0, false
	}
	if toIdx > fromIdx {
		return g.noteAt(toIdx - 1), true
	}
	return g.noteAt(toIdx + 1), true
}
