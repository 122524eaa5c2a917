package gen

import (
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/theory"
	"github.com/jsphweid/lickgen/util"
)

// BebopOptions are the tunables of the bebop variant.
type BebopOptions struct {
	VoiceLeadMax int     // preferred max semitone move between targets
	VoiceLeadCap int     // fallback window, a fifth
	ReverseProb  float64 // chance the fill line reverses direction
}

func defaultBebopOptions() BebopOptions {
	return BebopOptions{VoiceLeadMax: 3, VoiceLeadCap: 7, ReverseProb: 0.2}
}

// Approach patterns played into a target note.
const (
	apNone = iota
	apChromaticBelow
	apChromaticAbove
	apEnclosure
	apDoubleChromatic
)

// beats between strong beats; targets land on beats 1 and 3 of each bar
const strongBeatSpacing = 2.0

type bebop struct {
	base
	opts BebopOptions
}

func newBebop(cfg model.GeneratorConfig) *bebop {
	return &bebop{base: newBase(cfg), opts: defaultBebopOptions()}
}

func (g *bebop) Algorithm() string {
	return Bebop
}

func (g *bebop) Generate() []model.Note {
	total := g.totalBeats()

	var strong []float64
	for t := 0.0; t < total-1e-9; t += strongBeatSpacing {
		strong = append(strong, t)
	}
	targets := g.planTargets(len(strong))

	var out []model.Note
	for i, s := range strong {
		target := targets[i]
		segEnd := total
		if i+1 < len(strong) {
			segEnd = strong[i+1]
		}

		if i+1 >= len(strong) {
			// let the last target ring to the end of the phrase
			out = append(out, g.note(target, g.swung(s), segEnd-s))
			break
		}

		next := targets[i+1]
		kind := g.chooseApproach(segEnd - s - 0.5)
		apBeats := approachBeats(kind)

		targetDur := util.Min(1.0, segEnd-s-apBeats)
		if targetDur < 0.5 {
			targetDur = 0.5
		}
		out = append(out, g.note(target, g.swung(s), targetDur))

		fillEnd := segEnd - apBeats
		out = append(out, g.fill(s+targetDur, fillEnd, target, next)...)
		out = append(out, g.approachNotes(kind, next, fillEnd)...)
	}
	return out
}

// planTargets picks a chord tone for every strong beat, preferring small
// moves from the previous target for smooth voice leading.
func (g *bebop) planTargets(count int) []int {
	ct := g.chordToneList()
	prev := theory.Nearest(g.noteAt(len(g.notes)/2), ct)

	res := make([]int, 0, count)
	res = append(res, prev)
	for len(res) < count {
		candidates := g.targetsWithin(ct, prev, g.opts.VoiceLeadMax)
		if len(candidates) == 0 {
			candidates = g.targetsWithin(ct, prev, g.opts.VoiceLeadCap)
		}
		if len(candidates) == 0 {
			candidates = []int{prev}
		}
		prev = candidates[g.rng.Intn(len(candidates))]
		res = append(res, prev)
	}
	return res
}

func (g *bebop) targetsWithin(ct []int, from int, window int) []int {
	var res []int
	for _, c := range ct {
		d := util.Abs(c - from)
		if d > 0 && d <= window {
			res = append(res, c)
		}
	}
	return res
}

// chooseApproach picks an approach pattern that fits in the available beats.
func (g *bebop) chooseApproach(available float64) int {
	r := g.rng.Float64()
	var kind int
	switch {
	case r < 0.3:
		kind = apNone
	case r < 0.5:
		kind = apChromaticBelow
	case r < 0.65:
		kind = apChromaticAbove
	case r < 0.85:
		kind = apEnclosure
	default:
		kind = apDoubleChromatic
	}
	// degrade to something shorter when time is tight
	for approachBeats(kind) > available+1e-9 {
		switch kind {
		case apEnclosure, apDoubleChromatic:
			kind = apChromaticBelow
		default:
			kind = apNone
		}
	}
	return kind
}

func approachBeats(kind int) float64 {
	switch kind {
	case apChromaticBelow, apChromaticAbove:
		return 0.5
	case apEnclosure, apDoubleChromatic:
		return 1.0
	default:
		return 0
	}
}

// approachNotes emits the ornament pitches leading into the target. Chromatic
// neighbors are deliberately outside the diatonic set.
func (g *bebop) approachNotes(kind int, target int, startBeat float64) []model.Note {
	switch kind {
	case apChromaticBelow:
		return []model.Note{g.note(target-1, g.swung(startBeat), 0.5)}
	case apChromaticAbove:
		return []model.Note{g.note(target+1, g.swung(startBeat), 0.5)}
	case apEnclosure:
		// scale tone on one side, chromatic neighbor from the other
		if g.rng.Float64() < 0.5 {
			above := g.noteAt(g.indexOf(target) + 1)
			return []model.Note{
				g.note(above, g.swung(startBeat), 0.5),
				g.note(target-1, g.swung(startBeat+0.5), 0.5),
			}
		}
		below := g.noteAt(g.indexOf(target) - 1)
		return []model.Note{
			g.note(below, g.swung(startBeat), 0.5),
			g.note(target+1, g.swung(startBeat+0.5), 0.5),
		}
	case apDoubleChromatic:
		return []model.Note{
			g.note(target-2, g.swung(startBeat), 0.5),
			g.note(target-1, g.swung(startBeat+0.5), 0.5),
		}
	default:
		return nil
	}
}

// fill bridges the gap after a target with an eighth-note line biased toward
// the next target's direction.
func (g *bebop) fill(startBeat float64, endBeat float64, from int, toward int) []model.Note {
	dir := 1
	if toward < from {
		dir = -1
	} else if toward == from && g.rng.Float64() < 0.5 {
		dir = -1
	}

	idx := g.indexOf(from)
	var res []model.Note
	for t := startBeat; t < endBeat-1e-9; t += 0.5 {
		if g.rng.Float64() < g.opts.ReverseProb {
			dir = -dir
		}
		idx = util.Clamp(idx+dir, 0, len(g.notes)-1)
		res = append(res, g.note(g.noteAt(idx), g.swung(t), 0.5))
	}
	return res
}
