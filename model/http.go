package model

// API types for the serve command.

type ChartInfoResponse struct {
	Sections   int     `json:"sections"`
	Notes      int     `json:"notes"`
	BPM        float64 `json:"bpm"`
	DurationMs float64 `json:"duration_ms"`
}

type MultiplyRequestBody struct {
	Path       string `json:"path"`
	Multiplier int    `json:"multiplier"`
	Splits     int    `json:"splits"`
}

type OperationResponse struct {
	Outputs  []string `json:"outputs"`
	Sections int      `json:"sections"`
	Notes    int      `json:"notes"`
	Canceled bool     `json:"canceled,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
