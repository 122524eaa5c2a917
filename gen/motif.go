package gen

import (
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/rhythm"
	"github.com/jsphweid/lickgen/theory"
	"github.com/jsphweid/lickgen/util"
)

// MotifOptions are the tunables of the motif-development variant.
type MotifOptions struct {
	SeedLength int     // notes in the seed phrase
	SeedBeats  float64 // beats the seed phrase spans
	StepBias   float64 // chance a seed move is a single scale step
	Variation  float64
}

func defaultMotifOptions() MotifOptions {
	return MotifOptions{SeedLength: 4, SeedBeats: 2, StepBias: 0.7, Variation: 0.2}
}

type motifNote struct {
	idx int
	dur float64
}

type motif struct {
	base
	opts MotifOptions
}

func newMotif(cfg model.GeneratorConfig) *motif {
	return &motif{base: newBase(cfg), opts: defaultMotifOptions()}
}

func (g *motif) Algorithm() string {
	return Motif
}

// Development techniques, applied in a fixed cycle.
const (
	devTransposeUp = iota
	devTransposeDown
	devInvert
	devRetrograde
	devAugment
	devDiminish
	numTechniques
)

func (g *motif) Generate() []model.Note {
	seed := g.seedPhrase()
	if len(seed) == 0 {
		return nil
	}
	pivot := seed[0].idx

	var out []model.Note
	beat := 0.0
	current := seed

	for technique := 0; ; technique++ {
		span := phraseBeats(current)
		if beat+span > g.totalBeats()+1e-9 {
			break
		}
		for _, mn := range current {
			out = append(out, g.note(g.noteAt(mn.idx), g.swung(beat), mn.dur))
			beat += mn.dur
		}
		current = g.develop(current, pivot, technique%numTechniques)
	}
	return out
}

// seedPhrase builds a short stepwise-biased phrase starting mid-range.
func (g *motif) seedPhrase() []motifNote {
	seedBeats := util.Min(g.opts.SeedBeats, g.totalBeats())
	plan := rhythm.Plan(seedBeats, rhythm.ForFeel(g.cfg.Feel, g.rng), g.opts.Variation, g.rng)

	idx := len(g.notes) / 2
	var res []motifNote
	for i, d := range plan {
		if i >= g.opts.SeedLength {
			break
		}
		res = append(res, motifNote{idx: idx, dur: d})

		step := 1
		if g.rng.Float64() >= g.opts.StepBias {
			step = 2
		}
		if g.rng.Float64() < 0.5 {
			step = -step
		}
		idx = util.Clamp(idx+step, 0, len(g.notes)-1)
	}
	return res
}

func (g *motif) develop(m []motifNote, pivot int, technique int) []motifNote {
	res := make([]motifNote, len(m))
	copy(res, m)

	switch technique {
	case devTransposeUp:
		for i := range res {
			res[i].idx = util.Clamp(res[i].idx+1, 0, len(g.notes)-1)
		}
	case devTransposeDown:
		for i := range res {
			res[i].idx = util.Clamp(res[i].idx-1, 0, len(g.notes)-1)
		}
	case devInvert:
		// mirror each pitch around the seed's first pitch, snapping the
		// result to the nearest in-scale note
		pivotMidi := g.noteAt(pivot)
		for i := range res {
			mirrored := 2*pivotMidi - g.noteAt(res[i].idx)
			res[i].idx = g.indexOf(theory.Nearest(mirrored, g.notes))
		}
	case devRetrograde:
		for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
			res[i].idx, res[j].idx = res[j].idx, res[i].idx
		}
	case devAugment:
		for i := range res {
			res[i].dur *= 1.5
		}
	case devDiminish:
		for i := range res {
			res[i].dur *= 0.75
		}
	}
	return res
}

func phraseBeats(m []motifNote) float64 {
	var sum float64
	for _, mn := range m {
		sum += mn.dur
	}
	return sum
}
