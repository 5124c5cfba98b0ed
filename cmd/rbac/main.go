package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/identitykit/rbac-system/internal/cli"
	"github.com/identitykit/rbac-system/internal/core/ports"
	"github.com/identitykit/rbac-system/internal/core/service"
	"github.com/identitykit/rbac-system/internal/infrastructure/config"
	"github.com/identitykit/rbac-system/internal/infrastructure/db/memory"
	mongostore "github.com/identitykit/rbac-system/internal/infrastructure/db/mongo"
	redisstore "github.com/identitykit/rbac-system/internal/infrastructure/db/redis"
	"github.com/identitykit/rbac-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			fmt.Fprintln(os.Stderr, "\ninterrupted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "rbac",
		Short:         "Interactive user and role administration console",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	store, cleanup, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	log.Info().Str("backend", cfg.Store.Backend).Msg("document store ready")

	if err := service.EnsureSeedData(ctx, store, log); err != nil {
		return err
	}

	identity, err := service.NewIdentityService(ctx, store, log)
	if err != nil {
		return err
	}
	roles, err := service.NewRoleService(ctx, store, log)
	if err != nil {
		return err
	}
	sessions := service.NewSessionService(identity, log)

	app := cli.New(sessions, identity, roles, os.Stdin, os.Stdout)
	return app.Run(ctx)
}

// openStore selects the document store backend from configuration. The
// returned cleanup closes any underlying connection.
func openStore(ctx context.Context, cfg *config.Config) (ports.DocumentStore, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return memory.NewStore(), func() {}, nil

	case config.BackendRedis:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisstore.NewDocumentStore(client), func() { _ = client.Close() }, nil

	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		return mongostore.NewDocumentStore(db), func() { _ = client.Disconnect(context.Background()) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
