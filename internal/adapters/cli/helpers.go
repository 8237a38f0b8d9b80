package cli

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	stdlog "github.com/akinaridici/stowagemaster/internal/adapters/logging"
	"github.com/akinaridici/stowagemaster/internal/adapters/persistence"
	applog "github.com/akinaridici/stowagemaster/internal/application/logging"
	engine "github.com/akinaridici/stowagemaster/internal/application/stowage"
	daemongrpc "github.com/akinaridici/stowagemaster/internal/adapters/grpc"
	"github.com/akinaridici/stowagemaster/internal/infrastructure/config"
)

// configLoader matches the closure root.go hands to every subcommand
// constructor — each subcommand resolves config lazily, at RunE time,
// not at command-tree construction time.
type configLoader func() *config.Config

func newContext() context.Context {
	return applog.WithLogger(context.Background(), stdlog.NewStdLogger())
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := persistence.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// newEngineClient prefers a running daemon reachable at
// cfg.Daemon.SocketPath, falling back to an in-process LocalClient
// when no socket file exists. This mirrors the teacher's CLI, which
// always goes through its daemon client, but without forcing a daemon
// to be running for one-off local commands.
func newEngineClient(cfg *config.Config) engine.Client {
	if cfg.Daemon.SocketPath != "" {
		if _, err := os.Stat(cfg.Daemon.SocketPath); err == nil {
			if client, err := daemongrpc.DialEngine("unix://" + cfg.Daemon.SocketPath); err == nil {
				return client
			}
		}
	}
	return engine.NewLocalClient()
}

func resolveShipProfileID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return "", fmt.Errorf("no ship specified and failed to load user config: %w", err)
	}
	userCfg, err := handler.Load()
	if err != nil {
		return "", fmt.Errorf("no ship specified and failed to load user config: %w", err)
	}
	if userCfg.DefaultShipProfileID == "" {
		return "", fmt.Errorf("no ship specified: use --ship, or set a default with 'stowagemaster ship set-default <id>'")
	}
	return userCfg.DefaultShipProfileID, nil
}
