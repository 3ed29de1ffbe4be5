package services

// ServiceContainer bundles every service facade for injection into the
// HTTP layer.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Account     AccountSvcFacade
	Category    CategorySvcFacade
	Goal        GoalSvcFacade
	Reporting   ReportingSvcFacade
	Insights    InsightsSvcFacade
}
