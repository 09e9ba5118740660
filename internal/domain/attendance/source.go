package attendance

import "context"

// Source defines remote data access for attendance records. The HR API is
// the system of record; this side never mutates attendance.
type Source interface {
	// FetchRecords retrieves attendance records matching the filter.
	FetchRecords(ctx context.Context, filter Filter) ([]Record, error)
}
