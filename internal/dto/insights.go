package dto

// InsightsResponse carries the AI-generated spending tips (or one of the
// fixed fallback messages) for display verbatim.
type InsightsResponse struct {
	Insights string `json:"insights"`
}
