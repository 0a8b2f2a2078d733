package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/platform/httpclient"
)

// Peer names used for tracing, metrics, and health registration.
const (
	PeerCRM       = "crm-api"
	PeerRewards   = "rewards-api"
	PeerMarketing = "marketing-api"
	PeerBanking   = "banking-api"
)

// downstream is embedded by every ACL client. It carries the requester and
// reports health from the client's circuit breaker.
type downstream struct {
	name   string
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

func newDownstream(name string, client *httpclient.Client, logger *slog.Logger) downstream {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return downstream{
		name:   name,
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// Name returns the identifier used when this client is registered with a
// [ports.HealthRegistry].
func (d *downstream) Name() string {
	return d.name
}

// HealthCheck reports the downstream's availability from the circuit
// breaker state. No network call is made.
func (d *downstream) HealthCheck(ctx context.Context) error {
	return d.client.HealthCheck(ctx)
}

// delete issues DELETE path. A 404 means the resource is already gone, which
// is the outcome the caller wants, so it is not an error.
func (d *downstream) delete(ctx context.Context, path string) error {
	err := d.req.Do(ctx, http.MethodDelete, path, nil, nil)
	if errors.Is(err, domain.ErrNotFound) {
		d.logger.InfoContext(ctx, "resource already removed",
			slog.String("peer", d.name),
			slog.String("path", path),
		)
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", d.name, err)
	}
	return nil
}

func escape(id string) string {
	return url.PathEscape(id)
}
