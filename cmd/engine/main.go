package main

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"localjobs-engine/internal/config"
	"localjobs-engine/internal/events"
	"localjobs-engine/internal/httpapi"
	"localjobs-engine/internal/remote"
	"localjobs-engine/internal/repo"
	"localjobs-engine/internal/scheduler"
	"localjobs-engine/internal/store"
)

func main() {
	// Engine data dir: use env if provided (a desktop shell can pass one),
	// else local folder.
	dataDir := os.Getenv("LOCALJOBS_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		return config.Load(userCfgPath)
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if _, vr := config.NormalizeAndValidate(cfg); !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	cfgVal.Store(cfg)

	st := store.New(dataDir)
	repos := repo.New(st)

	// Bootstrap contract: the admin account always exists after startup.
	if err := repos.Users.EnsureAdmin(); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	hub := events.NewHub()

	// Remote fetch: best-effort, never blocks the stored jobs.
	svc := remote.NewService()
	limiter := remote.NewHostLimiter(1.0, 2)
	runRefresh := func(ctx context.Context) {
		c := cfgVal.Load().(config.Config)
		if !c.Remote.Enabled {
			return
		}
		f := remote.NewAmazon(remote.AmazonConfig{
			BaseURL:  c.Remote.BaseURL,
			Query:    c.Remote.Query,
			Location: c.Remote.Location,
			Country:  c.Remote.Country,
			MaxJobs:  c.Remote.MaxJobs,
			Hydrate:  c.Remote.HydrateDescriptions,
		}, limiter)
		svc.Refresh(ctx, f)
	}

	refreshEvery := time.Duration(cfg.Remote.RefreshSeconds) * time.Second
	if refreshEvery <= 0 {
		refreshEvery = 5 * time.Minute
	}
	go scheduler.Every(context.Background(), refreshEvery, "remote", func(ctx context.Context) error {
		fctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		runRefresh(fctx)
		return nil
	})

	deps := httpapi.Deps{
		Repos:       repos,
		Hub:         hub,
		Remote:      svc,
		RunRefresh:  runRefresh,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
	}
	mux := httpapi.NewMux(deps)

	addr := fmt.Sprintf("127.0.0.1:%d", cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	token, err := randomToken(16)
	if err != nil {
		log.Fatal(err)
	}
	mux.HandleFunc("/shutdown", shutdownHandler(&token, srv))
	log.Printf("shutdown token: %s", token)

	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)
	log.Fatal(srv.Serve(ln))
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func shutdownHandler(token *string, srv *http.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// Local-only guard (covers typical desktop usage)
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if host != "127.0.0.1" && host != "::1" && host != "localhost" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		got := r.Header.Get("X-Shutdown-Token")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(*token)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Respond immediately, then shutdown asynchronously
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("shutting down\n"))

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}
}
