package main

import (
	"context"
	"fmt"

	"github.com/dayfocus/dayfocus/internal/config"
	dfnats "github.com/dayfocus/dayfocus/internal/nats"
	"github.com/dayfocus/dayfocus/internal/repo"
	"github.com/dayfocus/dayfocus/internal/store"
	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats-server/v2/server"
)

// runtime bundles everything a command needs: the resolved user, the
// repository, and the embedded NATS server handles for shutdown.
type runtime struct {
	cfg    *config.Config
	userID string
	repo   *repo.Repository

	ns *server.Server
	nc *natsgo.Conn
}

// openRuntime loads config, resolves the acting user and brings up the
// embedded store. Callers must Close it.
func openRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	userID := flagUser
	if userID == "" {
		userID = cfg.User
	}
	if userID == "" {
		return nil, fmt.Errorf("no user set: run 'dayfocus login <user-id>' or pass --user")
	}

	ns, err := dfnats.StartEmbedded(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("starting embedded store: %w", err)
	}

	nc, err := dfnats.ConnectInProcess(ns)
	if err != nil {
		ns.Shutdown()
		return nil, err
	}

	js, err := dfnats.NewJetStream(nc)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, err
	}

	bucket, err := dfnats.TasksBucket(ctx, js)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("opening task bucket: %w", err)
	}

	return &runtime{
		cfg:    cfg,
		userID: userID,
		repo:   repo.New(store.NewKV(bucket)),
		ns:     ns,
		nc:     nc,
	}, nil
}

// Close drains the connection and shuts the embedded server down.
func (rt *runtime) Close() {
	_ = dfnats.Shutdown(rt.nc, rt.ns)
}
