package services

import "context"

// InsightsSvcFacade requests AI-generated spending tips. The returned string
// is always displayable: guard conditions and call failures come back as
// fixed messages, never as errors. The only error returned is
// apperrors.ErrInsightsInFlight when a request is already running.
type InsightsSvcFacade interface {
	GetFinancialInsights(ctx context.Context) (string, error)
}
