package gen

import (
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/rhythm"
	"github.com/jsphweid/lickgen/theory"
	"github.com/jsphweid/lickgen/util"
)

// CallResponseOptions are the tunables of the call/response variant.
type CallResponseOptions struct {
	CycleBeats float64 // beats one call+response cycle spans
	GapBeats   float64 // silence separating call and response
	Variation  float64
}

func defaultCallResponseOptions() CallResponseOptions {
	return CallResponseOptions{CycleBeats: 8, GapBeats: 0.5, Variation: 0.2}
}

// Response types, advanced each cycle.
const (
	respEcho = iota
	respAnswer
	respMirror
	respRhythmic
	numResponseTypes
)

// placed is a pitch with phrase-relative timing.
type placed struct {
	midi  int
	onset float64
	dur   float64
}

type callResponse struct {
	base
	opts CallResponseOptions
}

func newCallResponse(cfg model.GeneratorConfig) *callResponse {
	return &callResponse{base: newBase(cfg), opts: defaultCallResponseOptions()}
}

func (g *callResponse) Algorithm() string {
	return CallResponse
}

func (g *callResponse) Generate() []model.Note {
	total := g.totalBeats()

	var out []model.Note
	beat := 0.0
	respType := 0

	for beat < total-1e-9 {
		cycle := util.Min(g.opts.CycleBeats, total-beat)
		halfBeats := (cycle - g.opts.GapBeats) / 2
		if halfBeats <= 0 {
			break
		}

		call := g.callPhrase(halfBeats)
		out = append(out, g.emit(call, beat)...)

		response := g.response(call, respType%numResponseTypes, halfBeats)
		out = append(out, g.emit(response, beat+halfBeats+g.opts.GapBeats)...)

		respType++
		beat += cycle
	}
	return out
}

func (g *callResponse) emit(phrase []placed, offset float64) []model.Note {
	var res []model.Note
	for _, p := range phrase {
		res = append(res, g.note(p.midi, g.swung(offset+p.onset), p.dur))
	}
	return res
}

// callPhrase builds a stepwise question phrase that deliberately avoids
// landing on the tonic.
func (g *callResponse) callPhrase(beats float64) []placed {
	plan := rhythm.Plan(beats, rhythm.ForFeel(g.cfg.Feel, g.rng), g.opts.Variation, g.rng)

	idx := g.indexOf(g.pick(true))
	var res []placed
	onset := 0.0
	for _, d := range plan {
		res = append(res, placed{midi: g.noteAt(idx), onset: onset, dur: d})
		onset += d

		step := 1 + g.rng.Intn(2)
		if g.rng.Float64() < 0.5 {
			step = -step
		}
		idx = util.Clamp(idx+step, 0, len(g.notes)-1)
	}

	// a question must not resolve: nudge a tonic ending to its neighbor
	if len(res) > 0 {
		last := &res[len(res)-1]
		if d, ok := theory.DegreeOf(last.midi, g.cfg.Key, g.cfg.Scale); ok && d == 1 {
			last.midi = g.noteAt(g.indexOf(last.midi) + 1)
		}
	}
	return res
}

func (g *callResponse) response(call []placed, respType int, beats float64) []placed {
	if len(call) == 0 {
		return nil
	}
	switch respType {
	case respEcho:
		return g.echo(call)
	case respAnswer:
		return g.answer(call, beats)
	case respMirror:
		return g.mirror(call)
	default:
		return g.rhythmic(call, beats)
	}
}

// echo repeats the call an octave away, snapped back into the scale.
func (g *callResponse) echo(call []placed) []placed {
	shift := 12
	if call[0].midi+12 > g.notes[len(g.notes)-1] {
		shift = -12
	}
	res := make([]placed, len(call))
	for i, p := range call {
		res[i] = p
		res[i].midi = theory.Nearest(p.midi+shift, g.notes)
	}
	return res
}

// answer builds a fresh line that resolves to the root.
func (g *callResponse) answer(call []placed, beats float64) []placed {
	plan := rhythm.Plan(beats, rhythm.ForFeel(g.cfg.Feel, g.rng), g.opts.Variation, g.rng)

	idx := g.indexOf(call[len(call)-1].midi)
	var res []placed
	onset := 0.0
	for _, d := range plan {
		res = append(res, placed{midi: g.noteAt(idx), onset: onset, dur: d})
		onset += d

		step := 1
		if g.rng.Float64() < 0.3 {
			step = 2
		}
		if g.rng.Float64() < 0.5 {
			step = -step
		}
		idx = util.Clamp(idx+step, 0, len(g.notes)-1)
	}
	if len(res) > 0 {
		last := &res[len(res)-1]
		last.midi = g.nearestRoot(last.midi)
	}
	return res
}

// mirror inverts the call's intervals around its first pitch.
func (g *callResponse) mirror(call []placed) []placed {
	pivot := call[0].midi
	res := make([]placed, len(call))
	for i, p := range call {
		res[i] = p
		res[i].midi = theory.Nearest(2*pivot-p.midi, g.notes)
	}
	return res
}

// rhythmic redistributes the call's pitches over a new rhythm.
func (g *callResponse) rhythmic(call []placed, beats float64) []placed {
	plan := rhythm.Plan(beats, rhythm.ForFeel(g.cfg.Feel, g.rng), g.opts.Variation, g.rng)

	var res []placed
	onset := 0.0
	for i, d := range plan {
		res = append(res, placed{midi: call[i%len(call)].midi, onset: onset, dur: d})
		onset += d
	}
	return res
}

// nearestRoot finds the degree-1 scale note closest to the reference pitch.
func (g *callResponse) nearestRoot(ref int) int {
	var roots []int
	for _, m := range g.notes {
		if d, ok := theory.DegreeOf(m, g.cfg.Key, g.cfg.Scale); ok && d == 1 {
			roots = append(roots, m)
		}
	}
	if len(roots) == 0 {
		return ref
	}
	return theory.Nearest(ref, roots)
}
