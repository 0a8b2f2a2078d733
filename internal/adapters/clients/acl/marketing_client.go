package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/account-action-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MarketingClient = (*MarketingClient)(nil)
	_ ports.HealthChecker   = (*MarketingClient)(nil)
)

// MarketingClient is the outbound adapter for the marketing-automation
// platform. Profiles there are keyed by our external ID, not theirs.
type MarketingClient struct {
	downstream
}

// NewMarketingClient creates a MarketingClient sending requests through client.
func NewMarketingClient(client *httpclient.Client, logger *slog.Logger) *MarketingClient {
	return &MarketingClient{downstream: newDownstream(PeerMarketing, client, logger)}
}

// DeleteProfile sends DELETE /api/contacts/external/{id}.
func (c *MarketingClient) DeleteProfile(ctx context.Context, externalID string) error {
	return c.delete(ctx, "/api/contacts/external/"+escape(externalID))
}
