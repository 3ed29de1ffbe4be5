package services

import (
	"context"

	"github.com/minhvu-dev/personal_finance_app/internal/core/domain"
	"github.com/minhvu-dev/personal_finance_app/internal/dto"
)

// ReportingSvcFacade computes the dashboard payload for a reporting period.
type ReportingSvcFacade interface {
	Dashboard(ctx context.Context, period domain.ReportPeriod) (*dto.DashboardResponse, error)
}
