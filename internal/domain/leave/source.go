package leave

import "context"

// Source defines remote data access for pending leave requests.
type Source interface {
	// FetchPending retrieves the requests currently awaiting a decision.
	FetchPending(ctx context.Context) ([]Request, error)

	// Decide submits an approve/deny decision for one pending request.
	// Deciding an already-processed request fails with ErrAlreadyProcessed.
	Decide(ctx context.Context, id string, decision Decision) error
}
