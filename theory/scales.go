package theory

import "sort"

// ScaleDefinition describes a scale as ascending semitone intervals from the
// root plus the 1-indexed degrees considered harmonically stable.
type ScaleDefinition struct {
	Name       string
	Intervals  []int
	ChordTones []int
}

var scales = map[string]ScaleDefinition{
	"major": {
		Name:       "Major",
		Intervals:  []int{0, 2, 4, 5, 7, 9, 11},
		ChordTones: []int{1, 3, 5, 7},
	},
	"minor": {
		Name:       "Natural Minor",
		Intervals:  []int{0, 2, 3, 5, 7, 8, 10},
		ChordTones: []int{1, 3, 5, 7},
	},
	"harmonic-minor": {
		Name:       "Harmonic Minor",
		Intervals:  []int{0, 2, 3, 5, 7, 8, 11},
		ChordTones: []int{1, 3, 5, 7},
	},
	"melodic-minor": {
		Name:       "Melodic Minor",
		Intervals:  []int{0, 2, 3, 5, 7, 9, 11},
		ChordTones: []int{1, 3, 5, 7},
	},
	"dorian": {
		Name:       "Dorian",
		Intervals:  []int{0, 2, 3, 5, 7, 9, 10},
		ChordTones: []int{1, 3, 5, 7},
	},
	"phrygian": {
		Name:       "Phrygian",
		Intervals:  []int{0, 1, 3, 5, 7, 8, 10},
		ChordTones: []int{1, 3, 5, 7},
	},
	"lydian": {
		Name:       "Lydian",
		Intervals:  []int{0, 2, 4, 6, 7, 9, 11},
		ChordTones: []int{1, 3, 5, 7},
	},
	"mixolydian": {
		Name:       "Mixolydian",
		Intervals:  []int{0, 2, 4, 5, 7, 9, 10},
		ChordTones: []int{1, 3, 5, 7},
	},
	"major-pentatonic": {
		Name:       "Major Pentatonic",
		Intervals:  []int{0, 2, 4, 7, 9},
		ChordTones: []int{1, 3, 4},
	},
	"minor-pentatonic": {
		Name:       "Minor Pentatonic",
		Intervals:  []int{0, 3, 5, 7, 10},
		ChordTones: []int{1, 2, 4, 5},
	},
	"blues": {
		Name:       "Blues",
		Intervals:  []int{0, 3, 5, 6, 7, 10},
		ChordTones: []int{1, 2, 5, 6},
	},
	// no degree of the chromatic scale is more stable than another
	"chromatic": {
		Name:      "Chromatic",
		Intervals: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	},
}

// GetScale returns a copy of the definition so callers can't mutate the table.
// Unknown ids fall back to major.
func GetScale(id string) ScaleDefinition {
	def, ok := scales[id]
	if !ok {
		def = scales["major"]
	}
	res := ScaleDefinition{Name: def.Name}
	res.Intervals = append(res.Intervals, def.Intervals...)
	res.ChordTones = append(res.ChordTones, def.ChordTones...)
	return res
}

func IsKnownScale(id string) bool {
	_, ok := scales[id]
	return ok
}

func ScaleIDs() []string {
	ids := make([]string, 0, len(scales))
	for id := range scales {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
