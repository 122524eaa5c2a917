package gen

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/lickgen/constants"
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/rhythm"
	"github.com/jsphweid/lickgen/theory"
	"github.com/jsphweid/lickgen/util"
)

// Algorithm tags.
const (
	ScaleRun     = "scale-run"
	Arpeggio     = "arpeggio"
	Motif        = "motif"
	Bebop        = "bebop"
	CallResponse = "call-response"
	SequencePat  = "sequence"
	Blues        = "blues"
)

// Generator is one algorithm variant bound to a config. A generator is built
// per call and never shared; Generate runs to completion synchronously.
type Generator interface {
	Generate() []model.Note
	Algorithm() string
}

// New builds the variant for the given tag. Unknown tags fall back to
// scale-run.
func New(algorithm string, cfg model.GeneratorConfig) Generator {
	switch algorithm {
	case Arpeggio:
		return newArpeggio(cfg)
	case Motif:
		return newMotif(cfg)
	case Bebop:
		return newBebop(cfg)
	case CallResponse:
		return newCallResponse(cfg)
	case SequencePat:
		return newSequencePattern(cfg)
	case Blues:
		return newBlues(cfg)
	default:
		return newScaleRun(cfg)
	}
}

// Generate runs the variant for the tag and wraps its notes with the config
// metadata into a Sequence. The metadata reflects the corrected tempo and
// length, never the raw input.
func Generate(algorithm string, cfg model.GeneratorConfig) model.Sequence {
	cfg = normalize(cfg)
	g := New(algorithm, cfg)
	return model.Sequence{
		Notes:      g.Generate(),
		Key:        cfg.Key,
		Scale:      cfg.Scale,
		Tempo:      cfg.Tempo,
		LengthBars: cfg.LengthBars,
		Algorithm:  g.Algorithm(),
	}
}

func Algorithms() []string {
	return []string{ScaleRun, Arpeggio, Motif, Bebop, CallResponse, SequencePat, Blues}
}

// Shared feel constants. Hand-tuned for plausible output, not load-bearing.
const (
	chordToneBias     = 0.7
	baseVelocity      = 0.65
	chordToneVelocity = 0.8
	downbeatAccent    = 0.1
	velocityJitter    = 0.05
	minVelocity       = 0.3
	maxVelocity       = 1.0
	swingAmount       = 0.5
	minNoteBeats      = 0.05
)

// A generation needs at least this many distinct pitches to avoid degenerate
// monotone output; the octave range is widened until the scale span has them.
const minScalePitches = 5

// base carries the services every variant builds on: the scale-note cache,
// chord-tone filtering, note construction and velocity shaping.
type base struct {
	cfg        model.GeneratorConfig
	notes      []int
	chordTones map[int]bool
	rng        *rand.Rand
}

// normalize corrects non-positive tempo and length so callers that skip
// validation still get a coherent, correctly-labeled sequence.
func normalize(cfg model.GeneratorConfig) model.GeneratorConfig {
	if cfg.Tempo <= 0 {
		cfg.Tempo = 120
	}
	if cfg.LengthBars <= 0 {
		cfg.LengthBars = 1
	}
	return cfg
}

func newBase(cfg model.GeneratorConfig) base {
	cfg = normalize(cfg)
	lo := util.Min(cfg.OctaveLow, cfg.OctaveHigh)
	hi := util.Max(cfg.OctaveLow, cfg.OctaveHigh)

	notes := theory.ScaleNotes(cfg.Key, cfg.Scale, lo, hi)
	for len(notes) < minScalePitches && (lo > 0 || hi < 8) {
		if lo > 0 {
			lo--
		}
		if hi < 8 {
			hi++
		}
		notes = theory.ScaleNotes(cfg.Key, cfg.Scale, lo, hi)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b := base{
		cfg:        cfg,
		notes:      notes,
		chordTones: make(map[int]bool),
		rng:        rand.New(rand.NewSource(seed)),
	}
	for _, m := range notes {
		if theory.IsChordTone(m, cfg.Key, cfg.Scale) {
			b.chordTones[m] = true
		}
	}
	return b
}

func (b *base) totalBeats() float64 {
	return b.cfg.LengthBars * constants.BeatsPerBar
}

// noteAt looks up a scale note by index, clamped to the valid range.
func (b *base) noteAt(i int) int {
	return b.notes[util.Clamp(i, 0, len(b.notes)-1)]
}

// indexOf returns the index of the scale note nearest to midi.
func (b *base) indexOf(midi int) int {
	best := 0
	bestDist := util.Abs(midi - b.notes[0])
	for i, n := range b.notes[1:] {
		if d := util.Abs(midi - n); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}

// chordToneList returns the chord tones across the range. A scale with no
// listed chord tones falls back to degrees 1, 3 and 5; if even that yields
// nothing, every scale note qualifies.
func (b *base) chordToneList() []int {
	var res []int
	for _, m := range b.notes {
		if b.chordTones[m] {
			res = append(res, m)
		}
	}
	if len(res) == 0 {
		for _, m := range b.notes {
			d, ok := theory.DegreeOf(m, b.cfg.Key, b.cfg.Scale)
			if ok && (d == 1 || d == 3 || d == 5) {
				res = append(res, m)
			}
		}
	}
	if len(res) == 0 {
		res = append(res, b.notes...)
	}
	return res
}

// pick selects a random scale note, biased toward chord tones when requested.
func (b *base) pick(preferChordTone bool) int {
	if preferChordTone && b.rng.Float64() < chordToneBias {
		ct := b.chordToneList()
		return ct[b.rng.Intn(len(ct))]
	}
	return b.notes[b.rng.Intn(len(b.notes))]
}

// swung applies swing timing to an onset when the config asks for it.
func (b *base) swung(onsetBeat float64) float64 {
	if b.cfg.Feel == model.FeelSwing {
		return rhythm.SwingOffset(onsetBeat, swingAmount)
	}
	return onsetBeat
}

// note builds a Note from a pitch and beat-domain time/duration, converting
// to seconds and shaping velocity. The duration is trimmed at the phrase end.
func (b *base) note(midi int, startBeat float64, durBeats float64) model.Note {
	total := b.totalBeats()
	startBeat = util.Clamp(startBeat, 0, total)
	if startBeat+durBeats > total {
		durBeats = total - startBeat
	}
	if durBeats < minNoteBeats {
		durBeats = minNoteBeats
		if startBeat+durBeats > total {
			startBeat = total - durBeats
		}
	}
	m := util.Clamp(midi, 0, 127)

	vel := baseVelocity
	if b.chordTones[m] {
		vel = chordToneVelocity
	}
	if startBeat == math.Trunc(startBeat) {
		vel += downbeatAccent
	}
	vel += (b.rng.Float64()*2 - 1) * velocityJitter
	vel = util.Clamp(vel, minVelocity, maxVelocity)

	return model.Note{
		ID:       uuid.NewString(),
		Name:     theory.MidiName(m),
		Midi:     uint8(m),
		Start:    theory.BeatsToSeconds(startBeat, b.cfg.Tempo),
		Duration: theory.BeatsToSeconds(durBeats, b.cfg.Tempo),
		Velocity: vel,
	}
}

// quiet backs a note off for ornaments like passing tones and grace notes.
func quiet(n model.Note) model.Note {
	n.Velocity = util.Max(minVelocity, n.Velocity-0.15)
	return n
}
