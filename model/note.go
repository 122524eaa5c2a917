package model

// Note is a single generated pitch event. Times are absolute seconds from the
// start of the phrase; velocity is normalized 0..1.
type Note struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Midi     uint8   `json:"midi"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Velocity float64 `json:"velocity"`
}

// Sequence is the output of one generation call: the notes plus the config
// metadata a consumer needs to play or export them.
type Sequence struct {
	Notes      []Note  `json:"notes"`
	Key        string  `json:"key"`
	Scale      string  `json:"scale"`
	Tempo      float64 `json:"tempo"`
	LengthBars float64 `json:"length_bars"`
	Algorithm  string  `json:"algorithm"`
}
