package hrapi

import (
	"context"
	"fmt"

	"github.com/staffdeck/workforce-console/internal/domain/leave"
)

// FetchPending implements leave.Source.
func (c *Client) FetchPending(ctx context.Context) ([]leave.Request, error) {
	var requests []leave.Request
	if err := c.get(ctx, "/leave-requests/pending", nil, &requests); err != nil {
		return nil, fmt.Errorf("fetch pending leave requests: %w", err)
	}
	return requests, nil
}

type decideRequest struct {
	Decision leave.Decision `json:"decision"`
}

// Decide implements leave.Source. The remote system owns the status
// transition; retrying an already-decided request fails with
// leave.ErrAlreadyProcessed.
func (c *Client) Decide(ctx context.Context, id string, decision leave.Decision) error {
	if !decision.IsValid() {
		return leave.ErrInvalidDecision
	}
	if err := c.post(ctx, "/leave-requests/"+id+"/decision", decideRequest{Decision: decision}, nil); err != nil {
		return err
	}
	return nil
}
