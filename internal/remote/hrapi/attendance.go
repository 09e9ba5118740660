package hrapi

import (
	"context"
	"fmt"
	"net/url"

	"github.com/staffdeck/workforce-console/internal/domain/attendance"
)

// FetchRecords implements attendance.Source.
func (c *Client) FetchRecords(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("start_date", filter.StartDate)
	query.Set("end_date", filter.EndDate)
	if filter.Status != nil {
		query.Set("status", string(*filter.Status))
	}
	if filter.EmployeeID != nil {
		query.Set("employee_id", *filter.EmployeeID)
	}
	if filter.DepartmentID != nil {
		query.Set("department_id", *filter.DepartmentID)
	}

	var records []attendance.Record
	if err := c.get(ctx, "/attendance", query, &records); err != nil {
		return nil, fmt.Errorf("fetch attendance records: %w", err)
	}
	return records, nil
}
