package streams

import (
	"context"
	"fmt"
	"time"
)

// ClaimOnce atomically claims key for the caller, returning true only for
// the first claimant within ttl. Email triage uses it to de-dupe messages
// by (message_id, internal_date); the mailer uses it to guarantee a
// confirmed draft is sent at most once per (message_id, draft_hash).
func (c *Client) ClaimOnce(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.rdb.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("streams: claim %s: %w", key, err)
	}
	return ok, nil
}

// ReleaseClaim drops a claim taken with ClaimOnce. Callers that claimed
// before attempting a side-effect release on failure so a redelivery can
// try again.
func (c *Client) ReleaseClaim(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("streams: release claim %s: %w", key, err)
	}
	return nil
}
