package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffdeck/workforce-console/internal/domain/dashboard"
	"github.com/staffdeck/workforce-console/internal/domain/leave"
	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/handler/http/response"
	"github.com/staffdeck/workforce-console/internal/pkg/toast"
	dashboardView "github.com/staffdeck/workforce-console/internal/view/dashboard"
)

type DashboardHandler interface {
	// GetDashboard returns the combined dashboard payload
	GetDashboard(w http.ResponseWriter, r *http.Request)
	// ApproveLeaveRequest approves one pending leave request
	ApproveLeaveRequest(w http.ResponseWriter, r *http.Request)
	// DenyLeaveRequest denies one pending leave request
	DenyLeaveRequest(w http.ResponseWriter, r *http.Request)
	// SignOut invalidates the remote session and redirects
	SignOut(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	stats    dashboard.StatsSource
	leaves   leave.Source
	gateway  session.Gateway
	notifier toast.Notifier
	logger   *slog.Logger
}

func NewDashboardHandler(
	stats dashboard.StatsSource,
	leaves leave.Source,
	gateway session.Gateway,
	notifier toast.Notifier,
	logger *slog.Logger,
) DashboardHandler {
	return &dashboardHandlerImpl{
		stats:    stats,
		leaves:   leaves,
		gateway:  gateway,
		notifier: notifier,
		logger:   logger,
	}
}

// buildView constructs the dashboard view for this request's session. The
// screen lives for one exchange on the HTTP surface.
func (h *dashboardHandlerImpl) buildView(w http.ResponseWriter, r *http.Request) (*dashboardView.View, *redirectNavigator, error) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		return nil, nil, err
	}
	nav := newRedirectNavigator(w, r)
	return dashboardView.New(sess, h.stats, h.leaves, h.gateway, nav, h.notifier, h.logger), nav, nil
}

// GetDashboard handles GET /dashboard
func (h *dashboardHandlerImpl) GetDashboard(w http.ResponseWriter, r *http.Request) {
	v, nav, err := h.buildView(w, r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := v.Load(r.Context()); err != nil {
		if !nav.Redirected() {
			response.HandleError(w, err)
		}
		return
	}

	response.Success(w, v.Snapshot())
}

// ApproveLeaveRequest handles POST /dashboard/leave-requests/{id}/approve
func (h *dashboardHandlerImpl) ApproveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.DecisionApprove)
}

// DenyLeaveRequest handles POST /dashboard/leave-requests/{id}/deny
func (h *dashboardHandlerImpl) DenyLeaveRequest(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, leave.DecisionDeny)
}

func (h *dashboardHandlerImpl) decide(w http.ResponseWriter, r *http.Request, decision leave.Decision) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "leave request id is required", nil)
		return
	}

	v, _, err := h.buildView(w, r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Leave request approved"
	if decision == leave.DecisionApprove {
		err = v.Approve(r.Context(), id)
	} else {
		err = v.Deny(r.Context(), id)
		message = "Leave request denied"
	}
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, v.PendingLeaves())
}

// SignOut handles POST /auth/sign-out
func (h *dashboardHandlerImpl) SignOut(w http.ResponseWriter, r *http.Request) {
	v, _, err := h.buildView(w, r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	v.SignOut(r.Context())
}
