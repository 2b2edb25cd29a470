package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"hnboard-bridge/internal/api"
	"hnboard-bridge/internal/config"
	"hnboard-bridge/internal/events"
	"hnboard-bridge/internal/filter"
	"hnboard-bridge/internal/httpapi"
	"hnboard-bridge/internal/pins"
	"hnboard-bridge/internal/scheduler"
	"hnboard-bridge/internal/session"
	"hnboard-bridge/internal/store"
)

func main() {
	// Optional .env next to the binary; real env always wins.
	_ = godotenv.Load()

	// Bridge data dir: use env if provided (the UI shell can pass one),
	// else a local folder.
	dataDir := os.Getenv("HNBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One bridge per data dir. A second instance would fight over the
	// sqlite store and the port.
	lock := flock.New(filepath.Join(dataDir, "bridge.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("instance lock: %v", err)
	}
	if !locked {
		log.Fatalf("another bridge already runs against %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if root := os.Getenv("HNBOARD_API_ROOT"); root != "" {
		cfg.App.APIRoot = root
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "bridge.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	vault := session.Select(db.Pool)
	client := api.New(cfg.App.APIRoot, vault)
	registry := pins.NewRegistry(client)
	hub := events.NewHub()

	warmup(cfg, client, registry)

	// Keep the pinned set in step with changes made from other devices.
	go scheduler.Every(context.Background(), 5*time.Minute, "pins-refresh", func(ctx context.Context) error {
		if client.Guest() {
			return nil
		}
		return registry.Reload(ctx)
	})

	mux := httpapi.NewMux(httpapi.Deps{
		Client:      client,
		Vault:       vault,
		Registry:    registry,
		DB:          db.Pool,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	})

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("bridge listening on http://%s (api_root=%s data_dir=%s)", addr, cfg.App.APIRoot, dataDir)

	srv := &http.Server{
		Handler:           httpapi.Chain(mux, httpapi.Cors, httpapi.RequestID, httpapi.Recover, httpapi.AccessLog),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}

// warmup primes the caches the UI asks for first: one browse with the
// sticky criteria and, when a session token survives from the previous
// run, the pinned set. Failures only log; the bridge serves regardless.
func warmup(cfg config.Config, client *api.Client, registry *pins.Registry) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		crit := filter.Criteria{
			Territory:  cfg.Browse.Territory,
			RemoteOnly: cfg.Browse.RemoteOnly,
		}
		listings, err := client.Browse(ctx, crit)
		if err != nil {
			log.Printf("[warmup] browse err=%v", err)
			return nil
		}
		log.Printf("[warmup] browse ok listings=%d", len(listings))
		return nil
	})
	if !client.Guest() {
		g.Go(func() error {
			if err := registry.Reload(ctx); err != nil {
				log.Printf("[warmup] pins err=%v", err)
				return nil
			}
			log.Printf("[warmup] pins ok count=%d", len(registry.Entries()))
			return nil
		})
	}
	_ = g.Wait()
}
