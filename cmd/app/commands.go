package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jo4ovms/psychology-project/internal/app"
	"github.com/jo4ovms/psychology-project/internal/config"
)

func getCommands(version string) []*cli.Command {
	return append(getSystemCommands(version), getCryptoCommands()...)
}

func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// withContainer runs fn against a container built from the validated environment
// and shuts the container down afterwards.
func withContainer(ctx context.Context, fn func(container *app.Container) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	container := app.NewContainer(cfg)
	defer func() { _ = container.Shutdown(ctx) }()

	return fn(container)
}
