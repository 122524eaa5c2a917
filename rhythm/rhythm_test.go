package rhythm

import (
	"math/rand"
	"testing"

	"github.com/jsphweid/lickgen/model"
	"github.com/stretchr/testify/assert"
)

func sum(ds []float64) float64 {
	var total float64
	for _, d := range ds {
		total += d
	}
	return total
}

func TestPlanWithoutVariationMatchesPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p, _ := GetPattern("quarters")

	assert.Equal(t, []float64{1, 1, 1, 1}, Plan(4, p, 0, rng))
}

func TestPlanClipsFinalStep(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p, _ := GetPattern("eighths")

	plan := Plan(3.25, p, 0, rng)

	assert := assert.New(t)
	assert.Len(plan, 7)
	assert.InDelta(0.25, plan[len(plan)-1], 1e-9)
}

func TestPlanAlwaysSumsToTotal(t *testing.T) {
	assert := assert.New(t)
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for _, id := range PatternIDs() {
			p, _ := GetPattern(id)
			for _, total := range []float64{1, 4, 7.5, 16} {
				plan := Plan(total, p, 0.4, rng)
				assert.InDelta(total, sum(plan), 1e-9, "pattern %v total %v seed %v", id, total, seed)
			}
		}
	}
}

func TestPlanEmptyForNonPositiveTotal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p, _ := GetPattern("eighths")
	assert.Nil(t, Plan(0, p, 0, rng))
}

func TestGetPatternCopyIsIsolated(t *testing.T) {
	p, ok := GetPattern("quarters")
	assert.True(t, ok)
	p.Durations[0] = 99

	fresh, _ := GetPattern("quarters")
	assert.Equal(t, 1.0, fresh.Durations[0])
}

func TestForFeelMatchesFeel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert := assert.New(t)
	for i := 0; i < 10; i++ {
		assert.Equal(model.FeelSwing, ForFeel(model.FeelSwing, rng).Feel)
		assert.Equal(model.FeelSyncopated, ForFeel(model.FeelSyncopated, rng).Feel)
		assert.Equal(model.FeelStraight, ForFeel(model.FeelStraight, rng).Feel)
	}
	// unknown feels fall back to straight eighths
	assert.Equal("Eighths", ForFeel("bogus", rng).Name)
}

func TestSwingOffset(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(1.75, SwingOffset(1.5, 0.5), 1e-9)
	assert.InDelta(1.0, SwingOffset(1.0, 0.5), 1e-9)
	assert.InDelta(1.25, SwingOffset(1.25, 0.5), 1e-9)
}
