package attendancelog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdeck/workforce-console/internal/domain/attendance"
	"github.com/staffdeck/workforce-console/internal/domain/session"
)

type fakeSource struct {
	fetchFn func(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error)
	calls   int
	filters []attendance.Filter
}

func (f *fakeSource) FetchRecords(ctx context.Context, filter attendance.Filter) ([]attendance.Record, error) {
	f.calls++
	f.filters = append(f.filters, filter)
	return f.fetchFn(ctx, filter)
}

type fakeNav struct {
	redirects []string
	backs     int
}

func (n *fakeNav) Redirect(path string) { n.redirects = append(n.redirects, path) }
func (n *fakeNav) Back()                { n.backs++ }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func nRecords(n int) []attendance.Record {
	records := make([]attendance.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, attendance.Record{
			ID:     fmt.Sprintf("att-%03d", i),
			Date:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Status: attendance.StatusPresent,
		})
	}
	return records
}

func newTestView(sess session.Session, source *fakeSource) *View {
	return New(sess, source, &fakeNav{}, testLogger())
}

func TestLoad_ManagerWithoutDepartment(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nil, nil
	}}
	v := newTestView(session.Session{UserID: "u-2", IsManager: true}, source)

	err := v.Load(context.Background())

	require.ErrorIs(t, err, session.ErrDepartmentMissing)
	assert.Equal(t, "department information not found", v.Err())
	assert.Zero(t, source.calls, "no remote call may be issued without a department scope")
	assert.False(t, v.Loading())
}

func TestLoad_AdminFilterPassesThroughUnmodified(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nRecords(3), nil
	}}
	v := newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)

	v.SetStartDate("2025-02-01")
	v.SetEndDate("2025-02-28")
	v.SetStatus(attendance.StatusAbsent)
	v.SetEmployeeID("emp-42")

	require.NoError(t, v.Load(context.Background()))

	require.Len(t, source.filters, 1)
	assert.Equal(t, v.Filter(), source.filters[0], "admin query equals the form state exactly")
	require.NotNil(t, source.filters[0].EmployeeID)
	assert.Equal(t, "emp-42", *source.filters[0].EmployeeID)
	assert.Nil(t, source.filters[0].DepartmentID)
}

func TestLoad_ManagerDepartmentOverridesFilter(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nil, nil
	}}
	v := newTestView(session.Session{UserID: "u-2", IsManager: true, Department: "dept-eng"}, source)

	v.SetDepartmentID("dept-other")

	require.NoError(t, v.Load(context.Background()))

	require.Len(t, source.filters, 1)
	require.NotNil(t, source.filters[0].DepartmentID)
	assert.Equal(t, "dept-eng", *source.filters[0].DepartmentID)
}

func TestLoad_RegularUserScopedToSelf(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nil, nil
	}}
	v := newTestView(session.Session{UserID: "u-9"}, source)

	// The employee input is not offered to regular users; even a direct
	// write is ignored and the scope pins to the caller.
	v.SetEmployeeID("someone-else")

	require.NoError(t, v.Load(context.Background()))

	require.Len(t, source.filters, 1)
	require.NotNil(t, source.filters[0].EmployeeID)
	assert.Equal(t, "u-9", *source.filters[0].EmployeeID)
}

func TestLoad_FailureKeepsPreviousRecords(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("hr api unreachable")
	failing := false
	source := &fakeSource{}
	source.fetchFn = func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		if failing {
			return nil, fetchErr
		}
		return nRecords(5), nil
	}
	v := newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)

	require.NoError(t, v.Load(context.Background()))
	require.Len(t, v.Records(), 5)

	failing = true
	err := v.Load(context.Background())

	require.ErrorIs(t, err, fetchErr)
	assert.Len(t, v.Records(), 5, "previous list survives a failed fetch")
	assert.Equal(t, fetchErr.Error(), v.Err())
	assert.False(t, v.Loading())
}

func TestLoad_SuccessResetsPageToOne(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nRecords(25), nil
	}}
	v := newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)

	require.NoError(t, v.Load(context.Background()))
	v.Last()
	require.Equal(t, 3, v.Page())

	require.NoError(t, v.Apply(context.Background()))
	assert.Equal(t, 1, v.Page())
}

func TestPagination_Bounds(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nRecords(25), nil
	}}
	v := newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)
	require.NoError(t, v.Load(context.Background()))

	assert.Equal(t, 3, v.TotalPages())
	assert.False(t, v.CanPrev(), "previous is disabled on page 1")
	assert.True(t, v.CanNext())

	v.Prev() // no-op
	assert.Equal(t, 1, v.Page())

	v.Next()
	assert.Equal(t, 2, v.Page())
	rows := v.VisibleRecords()
	require.Len(t, rows, 10)
	assert.Equal(t, "att-010", rows[0].ID)
	assert.Equal(t, "att-019", rows[9].ID)

	v.Last()
	assert.Equal(t, 3, v.Page())
	assert.False(t, v.CanNext(), "next is disabled on the last page")
	assert.Len(t, v.VisibleRecords(), 5)

	v.Next() // no-op
	assert.Equal(t, 3, v.Page())

	v.First()
	assert.Equal(t, 1, v.Page())
}

func TestPagination_EmptyList(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nil, nil
	}}
	v := newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)
	require.NoError(t, v.Load(context.Background()))

	assert.Equal(t, 0, v.TotalPages())
	assert.Empty(t, v.VisibleRecords())
	assert.False(t, v.CanPrev())
	assert.False(t, v.CanNext())

	v.Last()
	assert.Equal(t, 1, v.Page())
}

func TestReset_RestoresDefaultWithoutFetching(t *testing.T) {
	t.Parallel()

	source := &fakeSource{fetchFn: func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		return nil, nil
	}}
	v := newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	v.now = func() time.Time { return now }

	v.SetStartDate("2024-01-01")
	v.SetEndDate("2024-12-31")
	v.SetStatus(attendance.StatusLeave)
	v.SetEmployeeID("emp-7")
	v.SetDepartmentID("dept-1")

	v.Reset()

	assert.Equal(t, attendance.DefaultFilter(now), v.Filter())
	assert.Zero(t, source.calls, "reset must not issue a fetch")
}

func TestLoad_OverlappingLoadIsNoOp(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	var v *View
	source.fetchFn = func(ctx context.Context, _ attendance.Filter) ([]attendance.Record, error) {
		// A second load arriving while this one is in flight must not
		// trigger another fetch.
		require.NoError(t, v.Load(ctx))
		return nRecords(1), nil
	}
	v = newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)

	require.NoError(t, v.Load(context.Background()))
	assert.Equal(t, 1, source.calls)
}

func TestLoad_ResponseAfterCloseIsDiscarded(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	var v *View
	source.fetchFn = func(context.Context, attendance.Filter) ([]attendance.Record, error) {
		v.Close()
		return nRecords(10), nil
	}
	v = newTestView(session.Session{UserID: "u-1", IsAdmin: true}, source)

	require.NoError(t, v.Load(context.Background()))
	assert.Empty(t, v.Records(), "a response resolving after dismissal is dropped")
}

func TestBack(t *testing.T) {
	t.Parallel()

	nav := &fakeNav{}
	v := New(session.Session{UserID: "u-1"}, &fakeSource{}, nav, testLogger())

	v.Back()
	assert.Equal(t, 1, nav.backs)
}
