package dashboard

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/staffdeck/workforce-console/internal/domain/dashboard"
	"github.com/staffdeck/workforce-console/internal/domain/leave"
	"github.com/staffdeck/workforce-console/internal/domain/session"
	"github.com/staffdeck/workforce-console/internal/pkg/toast"
	"github.com/staffdeck/workforce-console/internal/view"
)

// ErrDecisionInFlight is returned when an approve/deny is clicked while a
// previous decision call has not resolved yet. The control is disabled for
// the duration.
var ErrDecisionInFlight = errors.New("a leave decision is already being processed")

// SignInPath is where non-admin callers and signed-out admins are sent.
const SignInPath = "/sign-in"

// View is the admin dashboard screen: workforce summary cards, the pending
// leave approval list and the per-department breakdown.
type View struct {
	sess     session.Session
	stats    dashboard.StatsSource
	leaves   leave.Source
	gateway  session.Gateway
	nav      view.Navigator
	notifier toast.Notifier
	logger   *slog.Logger

	summary     dashboard.AdminStats
	pending     []leave.Request
	departments []dashboard.DepartmentStat
	loading     bool
	errMsg      string
	deciding    bool
	dismissed   bool
}

func New(
	sess session.Session,
	stats dashboard.StatsSource,
	leaves leave.Source,
	gateway session.Gateway,
	nav view.Navigator,
	notifier toast.Notifier,
	logger *slog.Logger,
) *View {
	return &View{
		sess:     sess,
		stats:    stats,
		leaves:   leaves,
		gateway:  gateway,
		nav:      nav,
		notifier: notifier,
		logger:   logger,
	}
}

// Load performs the mount fetch. Non-admin callers are redirected without
// issuing any remote call. The workforce summary is the primary fetch; the
// pending-leave and department lists are secondary and fail silently apart
// from a logged diagnostic.
func (v *View) Load(ctx context.Context) error {
	if !v.sess.IsAdmin {
		v.nav.Redirect(SignInPath)
		return session.ErrAdminRequired
	}
	if v.loading || v.dismissed {
		return nil
	}
	v.loading = true

	var (
		summary     dashboard.AdminStats
		pending     []leave.Request
		departments []dashboard.DepartmentStat
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s, err := v.stats.FetchAdminStats(gCtx)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})

	g.Go(func() error {
		p, err := v.leaves.FetchPending(gCtx)
		if err != nil {
			v.logger.Error("failed to fetch pending leave requests", slog.String("error", err.Error()))
			return nil
		}
		pending = p
		return nil
	})

	g.Go(func() error {
		d, err := v.stats.FetchDepartmentStats(gCtx)
		if err != nil {
			v.logger.Error("failed to fetch department statistics", slog.String("error", err.Error()))
			return nil
		}
		departments = d
		return nil
	})

	err := g.Wait()
	if v.dismissed {
		return nil
	}
	if err != nil {
		v.logger.Error("failed to fetch admin statistics", slog.String("error", err.Error()))
		v.errMsg = err.Error()
		v.loading = false
		return err
	}

	v.summary = summary
	v.pending = pending
	v.departments = departments
	v.errMsg = ""
	v.loading = false
	return nil
}

// Approve submits an approval for one pending leave request.
func (v *View) Approve(ctx context.Context, id string) error {
	return v.decide(ctx, id, leave.DecisionApprove, "Leave request approved")
}

// Deny submits a denial for one pending leave request.
func (v *View) Deny(ctx context.Context, id string) error {
	return v.decide(ctx, id, leave.DecisionDeny, "Leave request denied")
}

func (v *View) decide(ctx context.Context, id string, decision leave.Decision, successMsg string) error {
	if v.deciding {
		return ErrDecisionInFlight
	}
	v.deciding = true
	defer func() { v.deciding = false }()

	if err := v.leaves.Decide(ctx, id, decision); err != nil {
		v.notifier.Error(v.sess.UserID, err.Error())
		return err
	}

	v.notifier.Success(v.sess.UserID, successMsg)
	v.refreshPending(ctx)
	return nil
}

// refreshPending re-fetches the pending list after a mutation. The remote
// system is the source of truth for list membership; nothing is removed
// locally.
func (v *View) refreshPending(ctx context.Context) {
	pending, err := v.leaves.FetchPending(ctx)
	if v.dismissed {
		return
	}
	if err != nil {
		v.logger.Error("failed to refresh pending leave requests", slog.String("error", err.Error()))
		return
	}
	v.pending = pending
}

// SignOut invalidates the remote session, then redirects to sign-in.
func (v *View) SignOut(ctx context.Context) {
	if err := v.gateway.SignOut(ctx); err != nil {
		v.logger.Error("sign out failed", slog.String("error", err.Error()))
	}
	v.nav.Redirect(SignInPath)
}

// Close marks the view dismissed. Any in-flight response is discarded.
func (v *View) Close() {
	v.dismissed = true
}

// Snapshot returns the combined dashboard payload.
func (v *View) Snapshot() dashboard.Snapshot {
	return dashboard.Snapshot{
		Stats:           v.summary,
		PendingLeaves:   v.pending,
		DepartmentStats: v.departments,
	}
}

// Stats returns the workforce summary cards.
func (v *View) Stats() dashboard.AdminStats { return v.summary }

// PendingLeaves returns the approval list.
func (v *View) PendingLeaves() []leave.Request { return v.pending }

// DepartmentStats returns the per-department breakdown.
func (v *View) DepartmentStats() []dashboard.DepartmentStat { return v.departments }

// Err returns the inline error message, empty when there is none.
func (v *View) Err() string { return v.errMsg }

// Loading reports whether the mount fetch is still in flight.
func (v *View) Loading() bool { return v.loading }
