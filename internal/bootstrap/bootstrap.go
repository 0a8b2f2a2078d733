// Package bootstrap wires the application graph shared by the HTTP server
// and the admin CLI: storage, downstream clients, audit publication, the
// batch processor, and the account action service.
package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/account-action-service/internal/adapters/events"
	"github.com/jsamuelsen11/account-action-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/account-action-service/internal/app"
	"github.com/jsamuelsen11/account-action-service/internal/app/batch"
	"github.com/jsamuelsen11/account-action-service/internal/platform/config"
	"github.com/jsamuelsen11/account-action-service/internal/platform/health"
	"github.com/jsamuelsen11/account-action-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/account-action-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Resources tracks what providers opened so it can be closed on shutdown.
type Resources struct {
	mu      sync.Mutex
	closers []namedCloser
}

type namedCloser struct {
	name string
	c    io.Closer
}

func (r *Resources) track(name string, c io.Closer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closers = append(r.closers, namedCloser{name: name, c: c})
}

// Close closes every tracked resource, most recently opened first.
func (r *Resources) Close() error {
	r.mu.Lock()
	closers := slices.Clone(r.closers)
	r.closers = nil
	r.mu.Unlock()

	var errs []error
	for _, nc := range slices.Backward(closers) {
		if err := nc.c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", nc.name, err))
		}
	}
	return errors.Join(errs...)
}

// Register provides the application graph on injector. The caller must have
// provided *config.Config, *slog.Logger and *telemetry.Metrics (which may be
// nil) beforehand. The returned Resources closes what the graph opened.
func Register(injector do.Injector) *Resources {
	res := &Resources{}
	do.ProvideValue(injector, res)

	registerStorage(injector, res)
	registerClients(injector)
	registerApp(injector, res)

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(sqlite.NewHealthChecker(do.MustInvoke[*sql.DB](i)))
		registry.RegisterOptional(do.MustInvoke[*acl.CRMClient](i))
		registry.RegisterOptional(do.MustInvoke[*acl.RewardsClient](i))
		registry.RegisterOptional(do.MustInvoke[*acl.MarketingClient](i))
		registry.RegisterOptional(do.MustInvoke[*acl.BankingClient](i))
		return registry, nil
	})

	return res
}

func registerStorage(injector do.Injector, res *Resources) {
	do.Provide(injector, func(i do.Injector) (*sql.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		ctx := context.Background()

		db, err := sqlite.Open(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := sqlite.InitSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		res.track("sqlite", db)
		return db, nil
	})

	do.Provide(injector, func(i do.Injector) (*sqlite.UserStore, error) {
		return sqlite.NewUserStore(do.MustInvoke[*sql.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*sqlite.DocumentStore, error) {
		return sqlite.NewDocumentStore(do.MustInvoke[*sql.DB](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*sqlite.AuditStore, error) {
		return sqlite.NewAuditStore(do.MustInvoke[*sql.DB](i)), nil
	})
}

func newHTTPClient(i do.Injector, cc *config.ClientConfig, peer string) *httpclient.Client {
	return httpclient.New(cc, peer,
		do.MustInvoke[*telemetry.Metrics](i),
		do.MustInvoke[*slog.Logger](i),
	)
}

func registerClients(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*acl.CRMClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := newHTTPClient(i, &cfg.Clients.CRM, acl.PeerCRM)
		return acl.NewCRMClient(client, do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*acl.RewardsClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := newHTTPClient(i, &cfg.Clients.Rewards, acl.PeerRewards)
		return acl.NewRewardsClient(client, do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*acl.MarketingClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := newHTTPClient(i, &cfg.Clients.Marketing, acl.PeerMarketing)
		return acl.NewMarketingClient(client, do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(injector, func(i do.Injector) (*acl.BankingClient, error) {
		cfg := do.MustInvoke[*config.Config](i)
		client := newHTTPClient(i, &cfg.Clients.Banking, acl.PeerBanking)
		return acl.NewBankingClient(client, do.MustInvoke[*slog.Logger](i)), nil
	})
}

func registerApp(injector do.Injector, res *Resources) {
	do.Provide(injector, func(i do.Injector) (ports.AuditLog, error) {
		cfg := do.MustInvoke[*config.Config](i)
		store := do.MustInvoke[*sqlite.AuditStore](i)

		kc := cfg.Events.Kafka
		if !kc.Enabled {
			return store, nil
		}

		publisher := events.NewAuditPublisher(store, events.NewKafkaWriter(kc), kc.Topic, kc.WriteTimeout,
			do.MustInvoke[*slog.Logger](i))
		res.track("kafka writer", publisher)
		return publisher, nil
	})

	do.Provide(injector, func(i do.Injector) (*batch.Processor, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return batch.New(do.MustInvoke[ports.AuditLog](i),
			batch.WithMaxWorkers(cfg.Batch.MaxWorkers),
			batch.WithTimeout(cfg.Batch.Timeout),
			batch.WithAuditTimeout(cfg.Batch.AuditTimeout),
			batch.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountActionService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return app.NewAccountActionService(app.AccountActionDeps{
			Users:      do.MustInvoke[*sqlite.UserStore](i),
			Documents:  do.MustInvoke[*sqlite.DocumentStore](i),
			CRM:        do.MustInvoke[*acl.CRMClient](i),
			Rewards:    do.MustInvoke[*acl.RewardsClient](i),
			Marketing:  do.MustInvoke[*acl.MarketingClient](i),
			Banking:    do.MustInvoke[*acl.BankingClient](i),
			Audit:      do.MustInvoke[*sqlite.AuditStore](i),
			Processor:  do.MustInvoke[*batch.Processor](i),
			MaxWorkers: cfg.Batch.MaxWorkers,
		}, do.MustInvoke[*slog.Logger](i)), nil
	})
}
