package model

type GenerateRequestBody struct {
	Algorithm  string  `json:"algorithm"`
	Key        string  `json:"key"`
	Scale      string  `json:"scale"`
	Tempo      float64 `json:"tempo"`
	LengthBars float64 `json:"length_bars"`
	OctaveLow  int     `json:"octave_low"`
	OctaveHigh int     `json:"octave_high"`
	Feel       string  `json:"feel"`
	Seed       int64   `json:"seed"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
