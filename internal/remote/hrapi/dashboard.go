package hrapi

import (
	"context"
	"fmt"

	"github.com/staffdeck/workforce-console/internal/domain/dashboard"
)

// FetchAdminStats implements dashboard.StatsSource.
func (c *Client) FetchAdminStats(ctx context.Context) (dashboard.AdminStats, error) {
	var stats dashboard.AdminStats
	if err := c.get(ctx, "/statistics/admin", nil, &stats); err != nil {
		return dashboard.AdminStats{}, fmt.Errorf("fetch admin statistics: %w", err)
	}
	return stats, nil
}

// FetchDepartmentStats implements dashboard.StatsSource.
func (c *Client) FetchDepartmentStats(ctx context.Context) ([]dashboard.DepartmentStat, error) {
	var stats []dashboard.DepartmentStat
	if err := c.get(ctx, "/statistics/departments", nil, &stats); err != nil {
		return nil, fmt.Errorf("fetch department statistics: %w", err)
	}
	return stats, nil
}
