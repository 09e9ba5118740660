package attendance

import (
	"time"

	"github.com/staffdeck/workforce-console/internal/pkg/validator"
)

// Status maps to the attendance status enum produced by the HR API.
type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusAbsent  Status = "ABSENT"
	StatusLeave   Status = "LEAVE"
	StatusHoliday Status = "HOLIDAY"
	StatusHalfDay Status = "HALF_DAY"
	StatusWeekend Status = "WEEKEND"
)

// AllStatuses returns every valid attendance status.
func AllStatuses() []Status {
	return []Status{
		StatusPresent,
		StatusAbsent,
		StatusLeave,
		StatusHoliday,
		StatusHalfDay,
		StatusWeekend,
	}
}

// IsValid reports whether s is a known attendance status.
func (s Status) IsValid() bool {
	statuses := AllStatuses()
	values := make([]string, len(statuses))
	for i, v := range statuses {
		values[i] = string(v)
	}
	return validator.IsInSlice(string(s), values)
}

// Employee is the owning employee reference carried on each record.
type Employee struct {
	Code        string `json:"employee_code"`
	Designation string `json:"designation"`
	Name        string `json:"name"`
}

// Record is one employee's attendance for one calendar day. Records are
// produced by the remote HR system and are immutable on this side.
type Record struct {
	ID       string     `json:"id"`
	Employee Employee   `json:"employee"`
	Date     time.Time  `json:"date"`
	CheckIn  *time.Time `json:"check_in,omitempty"`
	CheckOut *time.Time `json:"check_out,omitempty"`
	Status   Status     `json:"status"`
	Remark   *string    `json:"remark,omitempty"`
}
