package session

import "errors"

var (
	ErrSessionMissing    = errors.New("session information not found")
	ErrDepartmentMissing = errors.New("department information not found")
	ErrAdminRequired     = errors.New("administrator privilege required")
)
