package dashboard

import (
	"github.com/staffdeck/workforce-console/internal/domain/leave"
)

// AdminStats is the aggregate workforce summary shown on the admin dashboard.
type AdminStats struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	AbsentToday    int64 `json:"absent_today"`
	OnLeaveToday   int64 `json:"on_leave_today"`
}

// DepartmentStat pairs a department with its employee count.
type DepartmentStat struct {
	Department    string `json:"department"`
	EmployeeCount int64  `json:"employee_count"`
}

// Snapshot is the combined dashboard payload: the workforce summary plus the
// two secondary lists. Secondary lists may be empty when their fetch failed.
type Snapshot struct {
	Stats           AdminStats       `json:"stats"`
	PendingLeaves   []leave.Request  `json:"pending_leaves"`
	DepartmentStats []DepartmentStat `json:"department_stats"`
}
