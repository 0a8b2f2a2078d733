package acl

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/account-action-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CRMClient     = (*CRMClient)(nil)
	_ ports.HealthChecker = (*CRMClient)(nil)
)

// CRMClient is the outbound adapter for the CRM's user API.
type CRMClient struct {
	downstream
}

// NewCRMClient creates a CRMClient sending requests through client.
func NewCRMClient(client *httpclient.Client, logger *slog.Logger) *CRMClient {
	return &CRMClient{downstream: newDownstream(PeerCRM, client, logger)}
}

// DeleteUser sends DELETE /v2/users/{id}.
func (c *CRMClient) DeleteUser(ctx context.Context, crmUserID string) error {
	return c.delete(ctx, "/v2/users/"+escape(crmUserID))
}
