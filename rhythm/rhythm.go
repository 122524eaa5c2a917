package rhythm

import (
	"math"
	"math/rand"
	"sort"

	"github.com/jsphweid/lickgen/model"
)

// Pattern is a named cycle of beat durations with a feel tag. The cycle
// repeats for as long as a plan needs it.
type Pattern struct {
	Name      string
	Feel      string
	Durations []float64
}

var patterns = map[string]Pattern{
	"quarters": {
		Name:      "Quarters",
		Feel:      model.FeelStraight,
		Durations: []float64{1, 1, 1, 1},
	},
	"eighths": {
		Name:      "Eighths",
		Feel:      model.FeelStraight,
		Durations: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	},
	"mixed": {
		Name:      "Mixed",
		Feel:      model.FeelStraight,
		Durations: []float64{1, 0.5, 0.5, 1, 0.5, 0.5},
	},
	"swing-eighths": {
		Name:      "Swing Eighths",
		Feel:      model.FeelSwing,
		Durations: []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
	},
	"shuffle": {
		Name:      "Shuffle",
		Feel:      model.FeelSwing,
		Durations: []float64{0.75, 0.25, 0.75, 0.25},
	},
	"charleston": {
		Name:      "Charleston",
		Feel:      model.FeelSyncopated,
		Durations: []float64{0.75, 0.75, 0.5, 1, 0.5, 0.5},
	},
	"pushed": {
		Name:      "Pushed",
		Feel:      model.FeelSyncopated,
		Durations: []float64{0.5, 1, 0.5, 1, 0.5, 0.5},
	},
}

// GetPattern returns a copy so callers can't mutate the table.
func GetPattern(id string) (Pattern, bool) {
	p, ok := patterns[id]
	if !ok {
		return Pattern{}, false
	}
	res := Pattern{Name: p.Name, Feel: p.Feel}
	res.Durations = append(res.Durations, p.Durations...)
	return res, true
}

func PatternIDs() []string {
	ids := make([]string, 0, len(patterns))
	for id := range patterns {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ForFeel picks a random pattern carrying the given feel tag. Unknown feels
// fall back to straight.
func ForFeel(feel string, rng *rand.Rand) Pattern {
	var ids []string
	for _, id := range PatternIDs() {
		if patterns[id].Feel == feel {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		p, _ := GetPattern("eighths")
		return p
	}
	p, _ := GetPattern(ids[rng.Intn(len(ids))])
	return p
}

// Humanizing variation multipliers applied to individual durations.
var multipliers = []float64{0.5, 0.75, 1, 1.5, 2}

const planEpsilon = 1e-9

// Plan expands totalBeats into concrete durations by cycling the pattern.
// Each step is stretched or shrunk with probability variation; the final step
// is clipped so the plan sums to exactly totalBeats.
func Plan(totalBeats float64, p Pattern, variation float64, rng *rand.Rand) []float64 {
	if totalBeats <= 0 || len(p.Durations) == 0 {
		return nil
	}
	var res []float64
	var sum float64
	for i := 0; sum < totalBeats-planEpsilon; i++ {
		d := p.Durations[i%len(p.Durations)]
		if variation > 0 && rng.Float64() < variation {
			d *= multipliers[rng.Intn(len(multipliers))]
		}
		if sum+d > totalBeats {
			d = totalBeats - sum
		}
		res = append(res, d)
		sum += d
	}
	return res
}

const offBeatTolerance = 0.01

// SwingOffset delays an onset sitting on an off-beat (fractional position of
// 0.5) by amount*0.5 beats. On-beat onsets pass through unchanged.
func SwingOffset(onset float64, amount float64) float64 {
	frac := onset - math.Floor(onset)
	if math.Abs(frac-0.5) < offBeatTolerance {
		return onset + amount*0.5
	}
	return onset
}
