package services

import (
	"time"

	"github.com/minhvu-dev/personal_finance_app/internal/core/ports"
	portssvc "github.com/minhvu-dev/personal_finance_app/internal/core/ports/services"
)

// ContainerDeps holds everything needed to build the service container.
type ContainerDeps struct {
	TxnRepo     ports.TransactionRepository
	AccountRepo ports.AccountRepository
	GoalRepo    ports.GoalRepository
	// Generator is nil when no API credential is configured.
	Generator       ports.TextGenerator
	InsightsTimeout time.Duration
}

// NewServiceContainer wires all services with their dependencies.
func NewServiceContainer(deps ContainerDeps) *portssvc.ServiceContainer {
	categorySvc := NewCategoryService()
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(deps.TxnRepo, deps.AccountRepo, categorySvc),
		Account:     NewAccountService(deps.AccountRepo),
		Category:    categorySvc,
		Goal:        NewGoalService(deps.GoalRepo, deps.AccountRepo),
		Reporting:   NewReportingService(deps.TxnRepo, deps.AccountRepo, deps.GoalRepo, categorySvc),
		Insights:    NewInsightsService(deps.TxnRepo, categorySvc, deps.Generator, deps.InsightsTimeout),
	}
}
