package leave

import "errors"

var (
	ErrRequestNotFound  = errors.New("Leave request not found")
	ErrAlreadyProcessed = errors.New("Leave request already processed")
	ErrInvalidDecision  = errors.New("Invalid leave decision")
)
