package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roomplan/internal/api"
	"github.com/matzehuels/roomplan/pkg/cache"
	"github.com/matzehuels/roomplan/pkg/pipeline"
)

// shutdownGrace is how long in-flight requests get to finish on shutdown.
const shutdownGrace = 10 * time.Second

// serveCommand creates the serve command running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		storeDir string
		mongoURI string
		cacheURI string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

The server exposes solve, score, catalog, and saved-plan endpoints under
/api/v1. Backends are selected by flags:

  roomplan serve
  roomplan serve --addr :9000 --cache redis://localhost:6379
  roomplan serve --mongo mongodb://localhost:27017

By default plans live in ~/.config/roomplan/plans and results are cached
under the XDG cache directory. --cache off disables caching.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, storeDir, mongoURI, cacheURI)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&storeDir, "store", "", "plan store directory (default: ~/.config/roomplan/plans)")
	cmd.Flags().StringVar(&mongoURI, "mongo", "", "MongoDB connection string for the plan store")
	cmd.Flags().StringVar(&cacheURI, "cache", "", "cache backend: a directory, redis://host:port, or off")

	return cmd
}

// runServe wires the runner, store, and cache, then serves until ctx is
// cancelled.
func (c *CLI) runServe(ctx context.Context, addr, storeDir, mongoURI, cacheURI string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	cacheStore, err := newServerCache(ctx, cacheURI)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := newStore(ctx, storeDir, mongoURI)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close(context.Background())

	runner := pipeline.NewRunner(cat, cfg, cacheStore, nil, c.Logger, 0)
	defer runner.Close()

	server := api.New(runner, st, c.Logger)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("api listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// newServerCache selects the cache backend for serve: "off" disables
// caching, redis:// URIs select Redis, anything else is a directory, and
// empty falls back to the XDG cache directory.
func newServerCache(ctx context.Context, uri string) (cache.Cache, error) {
	switch {
	case uri == "off":
		return cache.NewNullCache(), nil
	case strings.HasPrefix(uri, "redis://"):
		parsed, err := url.Parse(uri)
		if err != nil {
			return nil, fmt.Errorf("parse cache URI %q: %w", uri, err)
		}
		cfg := cache.RedisConfig{Addr: parsed.Host}
		if pw, ok := parsed.User.Password(); ok {
			cfg.Password = pw
		}
		return cache.NewRedisCache(ctx, cfg)
	case uri != "":
		return cache.NewFileCache(uri)
	default:
		return newCache(false)
	}
}
