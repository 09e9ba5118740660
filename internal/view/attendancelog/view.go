package attendancelog

import (
	"context"
	"log/slog"
	"time"

	"github.com/staffdeck/workforce-console/internal/domain/attendance"
	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/view"
)

// PageSize is the fixed number of rows per page.
const PageSize = 10

// View is the attendance-log screen: a filter form, the fetched record list
// and a pagination cursor over it. It is driven from a single goroutine; the
// loading flag keeps fetches from overlapping and Close discards any response
// that resolves after dismissal.
type View struct {
	sess   session.Session
	source attendance.Source
	nav    view.Navigator
	logger *slog.Logger

	filter    attendance.Filter
	records   []attendance.Record
	page      int
	loading   bool
	errMsg    string
	dismissed bool

	now func() time.Time
}

func New(sess session.Session, source attendance.Source, nav view.Navigator, logger *slog.Logger) *View {
	v := &View{
		sess:   sess,
		source: source,
		nav:    nav,
		logger: logger,
		page:   1,
		now:    time.Now,
	}
	v.filter = attendance.DefaultFilter(v.now())
	return v
}

// scopedFilter narrows the form filter to what the caller's role may query.
func (v *View) scopedFilter() (attendance.Filter, error) {
	f := v.filter

	switch {
	case v.sess.IsAdmin:
		// Full visibility; the form state passes through unmodified.
	case v.sess.IsManager:
		if v.sess.Department == "" {
			return attendance.Filter{}, session.ErrDepartmentMissing
		}
		dept := v.sess.Department
		f.DepartmentID = &dept
	default:
		self := v.sess.UserID
		f.EmployeeID = &self
	}

	return f, nil
}

// Load fetches the record list for the current filter, scoped to the
// caller's role. Invoked on mount and by Apply; overlapping loads and loads
// after dismissal are no-ops. The returned error is also surfaced through
// Err for inline display; the previous record list survives a failure.
func (v *View) Load(ctx context.Context) error {
	if v.loading || v.dismissed {
		return nil
	}
	v.loading = true

	scoped, err := v.scopedFilter()
	if err != nil {
		v.errMsg = err.Error()
		v.loading = false
		return err
	}

	records, err := v.source.FetchRecords(ctx, scoped)
	if v.dismissed {
		// The screen is gone; the resolved response is discarded.
		return nil
	}
	if err != nil {
		v.logger.Error("failed to fetch attendance records", slog.String("error", err.Error()))
		v.errMsg = err.Error()
		v.loading = false
		return err
	}

	v.records = records
	v.page = 1
	v.errMsg = ""
	v.loading = false
	return nil
}

// Apply re-issues the query with the current form state.
func (v *View) Apply(ctx context.Context) error {
	return v.Load(ctx)
}

// Reset restores the default trailing-30-day filter. No query is issued.
func (v *View) Reset() {
	v.filter = attendance.DefaultFilter(v.now())
}

// SetStartDate writes the start-date input into the filter.
func (v *View) SetStartDate(date string) {
	v.filter.StartDate = date
}

// SetEndDate writes the end-date input into the filter.
func (v *View) SetEndDate(date string) {
	v.filter.EndDate = date
}

// SetStatus writes the status select into the filter; empty clears it.
func (v *View) SetStatus(status attendance.Status) {
	if status == "" {
		v.filter.Status = nil
		return
	}
	v.filter.Status = &status
}

// SetDepartmentID writes the department select into the filter; empty clears it.
func (v *View) SetDepartmentID(id string) {
	if id == "" {
		v.filter.DepartmentID = nil
		return
	}
	v.filter.DepartmentID = &id
}

// SetEmployeeID writes the employee input into the filter. The input is only
// offered to administrators; for everyone else this is a no-op.
func (v *View) SetEmployeeID(id string) {
	if !v.sess.IsAdmin {
		return
	}
	if id == "" {
		v.filter.EmployeeID = nil
		return
	}
	v.filter.EmployeeID = &id
}

// Back returns to the previous screen.
func (v *View) Back() {
	v.nav.Back()
}

// Close marks the view dismissed. Any in-flight response is discarded.
func (v *View) Close() {
	v.dismissed = true
}

// Filter returns the current form state.
func (v *View) Filter() attendance.Filter { return v.filter }

// Records returns the full fetched record list.
func (v *View) Records() []attendance.Record { return v.records }

// Err returns the inline error message, empty when there is none.
func (v *View) Err() string { return v.errMsg }

// Loading reports whether the initial fetch is still in flight.
func (v *View) Loading() bool { return v.loading }
