// Package cli is the admin command-line adapter. It drives the same
// AccountActionService as the HTTP API so operators can run batches and
// inspect the audit log without going through the network.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen11/account-action-service/internal/domain"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

// Session is what a command needs once the profile is known.
type Session struct {
	Service ports.AccountActionService
	Logger  *slog.Logger
	Close   func() error
}

// Opener builds a Session for the given config profile.
type Opener func(ctx context.Context, profile string) (*Session, error)

// Migrator applies the storage schema for the given config profile.
type Migrator func(ctx context.Context, profile string) error

// Deps are the collaborators the command tree is built from.
type Deps struct {
	Open    Opener
	Migrate Migrator
	Out     io.Writer
}

// New builds the root accountctl command.
func New(deps Deps, version string) *cli.Command {
	var profile string

	return &cli.Command{
		Name:    "accountctl",
		Usage:   "Run account action batches and inspect the audit log",
		Version: version,
		Writer:  deps.Out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "profile",
				Usage:       "Config profile (e.g. local, dev, qa, prod)",
				Value:       "local",
				Sources:     cli.EnvVars("APP_PROFILE"),
				Destination: &profile,
			},
		},
		Commands: []*cli.Command{
			cmdRemoveLinkedAccounts(deps, &profile),
			cmdRemoveBankConnections(deps, &profile),
			cmdAudit(deps, &profile),
			cmdMigrate(deps, &profile),
		},
	}
}

// Run executes the command tree against args.
func Run(ctx context.Context, deps Deps, args []string, version string) error {
	return New(deps, version).Run(ctx, args)
}

func userIDFlag(dst *int64) cli.Flag {
	return &cli.Int64Flag{
		Name:        "user-id",
		Aliases:     []string{"u"},
		Usage:       "Owner of the accounts (required)",
		Required:    true,
		Destination: dst,
	}
}

// withSession opens a session, runs fn with a correlation id attached, and
// closes the session afterwards.
func withSession(ctx context.Context, deps Deps, profile string, fn func(context.Context, *Session) error) (err error) {
	s, err := deps.Open(ctx, profile)
	if err != nil {
		return fmt.Errorf("opening %s profile: %w", profile, err)
	}
	defer func() {
		if s.Close == nil {
			return
		}
		if cerr := s.Close(); cerr != nil && s.Logger != nil {
			s.Logger.Error("failed to close resources", slog.Any("error", cerr))
		}
	}()

	if domain.CorrelationID(ctx) == "" {
		ctx = domain.WithCorrelationID(ctx, newCorrelationID())
	}
	return fn(ctx, s)
}
