package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/staffdeck/workforce-console/internal/domain/attendance"
	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/handler/http/response"
	"github.com/staffdeck/workforce-console/internal/view/attendancelog"
)

type AttendanceHandler interface {
	// ListAttendance returns one page of role-scoped attendance rows
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	source attendance.Source
	logger *slog.Logger
}

func NewAttendanceHandler(source attendance.Source, logger *slog.Logger) AttendanceHandler {
	return &attendanceHandlerImpl{source: source, logger: logger}
}

// ListAttendance handles GET /attendance
//
// Query params: start_date, end_date (YYYY-MM-DD, default trailing 30 days),
// status, employee_id (admin only), department_id, page.
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	nav := newRedirectNavigator(w, r)
	v := attendancelog.New(sess, h.source, nav, h.logger)

	q := r.URL.Query()
	if sd := q.Get("start_date"); sd != "" {
		v.SetStartDate(sd)
	}
	if ed := q.Get("end_date"); ed != "" {
		v.SetEndDate(ed)
	}
	if st := q.Get("status"); st != "" {
		v.SetStatus(attendance.Status(st))
	}
	if dep := q.Get("department_id"); dep != "" {
		v.SetDepartmentID(dep)
	}
	if emp := q.Get("employee_id"); emp != "" {
		// Ignored for non-admin roles; scoping overrides it anyway.
		v.SetEmployeeID(emp)
	}

	if err := v.Load(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	if p := q.Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil {
			v.SetPage(page)
		}
	}

	response.SuccessWithMeta(w, v.VisibleRecords(), &response.Meta{
		Page:       v.Page(),
		Limit:      attendancelog.PageSize,
		TotalItems: int64(len(v.Records())),
		TotalPages: v.TotalPages(),
	})
}
