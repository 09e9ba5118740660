package attendance

import "errors"

// Attendance domain errors
var (
	ErrFetchFailed      = errors.New("failed to fetch attendance records")
	ErrInvalidStatus    = errors.New("invalid attendance status")
	ErrRecordsNotFound  = errors.New("attendance records not found")
	ErrInvalidDateRange = errors.New("invalid attendance date range")
)
