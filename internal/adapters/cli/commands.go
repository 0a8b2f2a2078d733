package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/jsamuelsen11/account-action-service/internal/app"
	"github.com/jsamuelsen11/account-action-service/internal/domain/action"
)

var newCorrelationID = uuid.NewString

func cmdRemoveLinkedAccounts(deps Deps, profile *string) *cli.Command {
	var userID int64

	return &cli.Command{
		Name:    "remove-linked-accounts",
		Aliases: []string{"rla"},
		Usage:   "Remove the user's CRM, KYC, rewards and marketing linkages",
		Flags:   []cli.Flag{userIDFlag(&userID)},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return withSession(ctx, deps, *profile, func(ctx context.Context, s *Session) error {
				res, err := s.Service.RemoveLinkedAccounts(ctx, userID)
				if err != nil {
					printFailures(deps, err)
					return err
				}
				_, _ = fmt.Fprintln(deps.Out, res.Value.Summary())
				return nil
			})
		},
	}
}

func cmdRemoveBankConnections(deps Deps, profile *string) *cli.Command {
	var userID int64

	return &cli.Command{
		Name:    "remove-bank-connections",
		Aliases: []string{"rbc"},
		Usage:   "Delete every bank connection the user holds",
		Flags:   []cli.Flag{userIDFlag(&userID)},
		Action: func(ctx context.Context, _ *cli.Command) error {
			return withSession(ctx, deps, *profile, func(ctx context.Context, s *Session) error {
				res, err := s.Service.RemoveBankConnections(ctx, userID)
				if err != nil {
					return err
				}
				for _, c := range res.Value {
					_, _ = fmt.Fprintf(deps.Out, "removed %s (%s)\n", c.ID, c.Institution)
				}
				_, _ = fmt.Fprintf(deps.Out, "%d bank connection(s) removed for user %d\n", len(res.Value), userID)
				return nil
			})
		},
	}
}

func cmdAudit(deps Deps, profile *string) *cli.Command {
	var (
		userID int64
		limit  int64
	)

	return &cli.Command{
		Name:  "audit",
		Usage: "List the user's audit records, newest first",
		Flags: []cli.Flag{
			userIDFlag(&userID),
			&cli.Int64Flag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       fmt.Sprintf("Maximum records to print (0 uses the service default of %d)", app.DefaultAuditListLimit),
				Value:       20,
				Destination: &limit,
			},
		},
		Action: func(ctx context.Context, _ *cli.Command) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}
			return withSession(ctx, deps, *profile, func(ctx context.Context, s *Session) error {
				records, err := s.Service.ListAuditRecords(ctx, userID, int(limit))
				if err != nil {
					return err
				}
				if len(records) == 0 {
					_, _ = fmt.Fprintf(deps.Out, "no audit records for user %d\n", userID)
					return nil
				}
				for _, r := range records {
					_, _ = fmt.Fprintf(deps.Out, "%s %s\n", r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"), r.Summary())
				}
				return nil
			})
		},
	}
}

func cmdMigrate(deps Deps, profile *string) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create the database schema if it does not exist",
		Action: func(ctx context.Context, _ *cli.Command) error {
			if err := deps.Migrate(ctx, *profile); err != nil {
				return fmt.Errorf("migrating %s profile: %w", *profile, err)
			}
			_, _ = fmt.Fprintln(deps.Out, "schema is up to date")
			return nil
		},
	}
}

// printFailures lists each failed action of a batch on its own line.
func printFailures(deps Deps, err error) {
	bf, ok := action.AsBatchFailure(err)
	if !ok {
		return
	}
	for _, e := range bf.Errors {
		_, _ = fmt.Fprintf(deps.Out, "failed %s: %s\n", e.Name, e.Message)
	}
}
