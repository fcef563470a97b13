package main

import (
	"context"
	"fmt"

	"github.com/jonathan/placement-readiness/internal/config"
	"github.com/jonathan/placement-readiness/internal/gate"
	"github.com/jonathan/placement-readiness/internal/store"
)

// appContext bundles the configured store and gate plus their cleanup.
type appContext struct {
	cfg   *config.Config
	store store.Store
	gate  *gate.Gate
	close func()
}

// openApp loads configuration and opens the configured store backend.
func openApp(ctx context.Context) (*appContext, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	app := &appContext{cfg: cfg, close: func() {}}

	switch cfg.StoreDriver {
	case config.DriverFile:
		historySlot, err := store.NewFileSlot(cfg.StoreDir, store.HistorySlot)
		if err != nil {
			return nil, err
		}
		gateSlot, err := store.NewFileSlot(cfg.StoreDir, gate.Slot)
		if err != nil {
			return nil, err
		}
		app.store = store.New(historySlot)
		app.gate = gate.New(gateSlot)

	case config.DriverPostgres:
		pg, err := store.ConnectPG(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		app.store = store.New(pg.Slot(store.HistorySlot))
		app.gate = gate.New(pg.Slot(gate.Slot))
		app.close = pg.Close

	case config.DriverMemory:
		app.store = store.New(store.NewMemorySlot())
		app.gate = gate.New(store.NewMemorySlot())

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	return app, nil
}
