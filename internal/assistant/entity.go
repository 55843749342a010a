package assistant

// Insight is one piece of advice generated from the user's recent
// health data.
type Insight struct {
	Category       string `json:"category"`
	Headline       string `json:"headline"`
	Detail         string `json:"detail"`
	Recommendation string `json:"recommendation"`
}

type InsightRequest struct {
	Focus    string `json:"focus,omitempty"`
	Question string `json:"question,omitempty"`
}

type InsightResponse struct {
	Insights []Insight `json:"insights"`
}
