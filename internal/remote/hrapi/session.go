package hrapi

import (
	"context"
	"fmt"
)

// SignOut implements session.Gateway. The remote system invalidates the
// server-side session; local token state is not this service's concern.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.post(ctx, "/auth/sign-out", nil, nil); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}
