package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/account-action-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.RewardsClient = (*RewardsClient)(nil)
	_ ports.HealthChecker = (*RewardsClient)(nil)
)

// RewardsClient is the outbound adapter for the rewards program.
type RewardsClient struct {
	downstream
}

// NewRewardsClient creates a RewardsClient sending requests through client.
func NewRewardsClient(client *httpclient.Client, logger *slog.Logger) *RewardsClient {
	return &RewardsClient{downstream: newDownstream(PeerRewards, client, logger)}
}

// DeleteProfile sends DELETE /api/v1/profiles/{id}.
func (c *RewardsClient) DeleteProfile(ctx context.Context, profileID string) error {
	return c.delete(ctx, "/api/v1/profiles/"+escape(profileID))
}
