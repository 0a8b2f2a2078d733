package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/clients/acl/banking"
	"github.com/jsamuelsen11/account-action-service/internal/domain/account"
	"github.com/jsamuelsen11/account-action-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.BankingClient = (*BankingClient)(nil)
	_ ports.HealthChecker = (*BankingClient)(nil)
)

// BankingClient is the outbound adapter for the banking aggregator that
// holds users' connections to financial institutions.
type BankingClient struct {
	downstream
}

// NewBankingClient creates a BankingClient sending requests through client.
func NewBankingClient(client *httpclient.Client, logger *slog.Logger) *BankingClient {
	return &BankingClient{downstream: newDownstream(PeerBanking, client, logger)}
}

// ListConnections fetches GET /api/v1/users/{id}/connections. The
// aggregator's order is kept.
func (c *BankingClient) ListConnections(ctx context.Context, userID int64) ([]account.BankConnection, error) {
	path := fmt.Sprintf("/api/v1/users/%d/connections", userID)

	var dto banking.ConnectionListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	return banking.ToDomainConnectionList(dto), nil
}

// DeleteConnection sends DELETE /api/v1/connections/{id}.
func (c *BankingClient) DeleteConnection(ctx context.Context, connectionID string) error {
	return c.delete(ctx, "/api/v1/connections/"+escape(connectionID))
}
