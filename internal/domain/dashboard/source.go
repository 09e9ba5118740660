package dashboard

import "context"

// StatsSource defines remote data access for dashboard aggregates.
type StatsSource interface {
	// FetchAdminStats retrieves the workforce summary counts.
	FetchAdminStats(ctx context.Context) (AdminStats, error)

	// FetchDepartmentStats retrieves per-department employee counts.
	FetchDepartmentStats(ctx context.Context) ([]DepartmentStat, error)
}
