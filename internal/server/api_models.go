package server

// AssessRequest is the payload for assessing a single URL. When use_ml
// is omitted the server falls back to its configured default.
type AssessRequest struct {
	URL   string `json:"url" example:"http://192.168.1.5/login"`
	UseML *bool  `json:"use_ml,omitempty" example:"true"`
}

// StatsResponse aggregates the retained history plus per-entry
// timelines (oldest first, 1 marks a phishing verdict).
type StatsResponse struct {
	Total        int      `json:"total" example:"42"`
	RulePhishing int      `json:"rule_phishing" example:"7"`
	MLPhishing   int      `json:"ml_phishing" example:"5"`
	Times        []string `json:"times"`
	RuleTimeline []int    `json:"rule_timeline"`
	MLTimeline   []int    `json:"ml_timeline"`
}

// HealthResponse reports liveness and whether a model is serving.
type HealthResponse struct {
	Status      string `json:"status" example:"ok"`
	ModelLoaded bool   `json:"model_loaded" example:"true"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Error string `json:"error" example:"missing url"`
}
