package gen

import (
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/rhythm"
)

// ScaleRunOptions are the tunables of the scale-run variant.
type ScaleRunOptions struct {
	RunLength int     // notes walked before the direction reverses
	RestProb  float64 // chance a step becomes a rest and resets the run
	Variation float64 // rhythm-plan humanizing amount
}

func defaultScaleRunOptions() ScaleRunOptions {
	return ScaleRunOptions{RunLength: 4, RestProb: 0.1, Variation: 0.2}
}

type scaleRun struct {
	base
	opts ScaleRunOptions
}

func newScaleRun(cfg model.GeneratorConfig) *scaleRun {
	return &scaleRun{base: newBase(cfg), opts: defaultScaleRunOptions()}
}

func (g *scaleRun) Algorithm() string {
	return ScaleRun
}

func (g *scaleRun) Generate() []model.Note {
	plan := rhythm.Plan(g.totalBeats(), rhythm.ForFeel(g.cfg.Feel, g.rng), g.opts.Variation, g.rng)

	idx := g.indexOf(g.pick(true))
	dir := 1
	if g.rng.Float64() < 0.5 {
		dir = -1
	}
	run := 0
	beat := 0.0

	var out []model.Note
	for _, d := range plan {
		if g.rng.Float64() < g.opts.RestProb {
			run = 0
			beat += d
			continue
		}

		out = append(out, g.note(g.noteAt(idx), g.swung(beat), d))
		beat += d

		run++
		if run >= g.opts.RunLength {
			dir = -dir
			run = 0
		}
		next := idx + dir
		if next < 0 || next >= len(g.notes) {
			dir = -dir
			next = idx + dir
			run = 0
		}
		idx = next
	}
	return out
}
