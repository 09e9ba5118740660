package attendance

import (
	"time"

	"github.com/staffdeck/workforce-console/internal/pkg/validator"
)

// DefaultWindowDays is the trailing window applied when no dates are chosen.
const DefaultWindowDays = 30

// Filter is the attendance query descriptor sent to the HR API.
// Dates use YYYY-MM-DD.
type Filter struct {
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       *Status `json:"status,omitempty"`
	EmployeeID   *string `json:"employee_id,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
}

// DefaultFilter returns the default query window: the trailing 30 days
// ending at now, with no other constraints.
func DefaultFilter(now time.Time) Filter {
	return Filter{
		StartDate: now.AddDate(0, 0, -DefaultWindowDays).Format("2006-01-02"),
		EndDate:   now.Format("2006-01-02"),
	}
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(f.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(f.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if f.Status != nil && !f.Status.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: PRESENT, ABSENT, LEAVE, HOLIDAY, HALF_DAY, WEEKEND",
		})
	}

	if f.EmployeeID != nil && validator.IsEmpty(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be empty",
		})
	}

	if f.DepartmentID != nil && validator.IsEmpty(*f.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RecordResponse is the row shape rendered in the attendance table.
type RecordResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	EmployeeName string  `json:"employee_name"`
	Designation  string  `json:"designation"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	WorkDuration string  `json:"work_duration"`
	Status       Status  `json:"status"`
	Remark       *string `json:"remark,omitempty"`
}

// ToResponse converts a record into its table-row representation,
// deriving the work-duration column.
func ToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		ID:           r.ID,
		EmployeeCode: r.Employee.Code,
		EmployeeName: r.Employee.Name,
		Designation:  r.Employee.Designation,
		Date:         r.Date.Format("2006-01-02"),
		WorkDuration: WorkDuration(r.CheckIn, r.CheckOut),
		Status:       r.Status,
		Remark:       r.Remark,
	}
	if r.CheckIn != nil {
		s := r.CheckIn.Format("15:04")
		resp.CheckIn = &s
	}
	if r.CheckOut != nil {
		s := r.CheckOut.Format("15:04")
		resp.CheckOut = &s
	}
	return resp
}
