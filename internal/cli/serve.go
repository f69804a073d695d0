package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/braidkit/braidkit/pkg/cache"
	"github.com/braidkit/braidkit/pkg/catalog"
	"github.com/braidkit/braidkit/pkg/config"
	"github.com/braidkit/braidkit/pkg/server"
)

// newServeCmd creates the serve command, which runs the HTTP API.
func newServeCmd() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the braidkit HTTP API",
		Long: `Run the braidkit HTTP API. Endpoints cover genus enumerations, DT codes
and interlacement diagrams for single words, and stored enumeration runs
when a MongoDB catalog is configured.

Configuration is read from ` + "`braidkit/config.toml`" + ` under
$XDG_CONFIG_HOME (see --config), with sensible defaults when absent.`,
		Example: `  braidkit serve
  braidkit serve --addr :9090
  braidkit serve --config ./braidkit.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			c, err := openServerCache(ctx, cfg.Cache)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer c.Close()
			logger.Info("cache ready", "backend", cfg.Cache.Backend)

			var store catalog.Store
			if cfg.Catalog.URI != "" {
				connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
				ms, err := catalog.NewMongoStore(connectCtx, cfg.Catalog.URI, cfg.Catalog.Database, cfg.Catalog.Collection)
				cancel()
				if err != nil {
					return fmt.Errorf("connect catalog: %w", err)
				}
				defer func() {
					closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = ms.Close(closeCtx)
				}()
				store = ms
				logger.Info("catalog ready", "database", cfg.Catalog.Database)
			}

			srv := server.New(server.Options{
				Config: cfg.Server,
				Cache:  c,
				Store:  store,
				Logger: logger,
			})

			err = srv.ListenAndServe(ctx)
			if err == context.Canceled {
				logger.Info("shutdown complete")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	return cmd
}

// openServerCache builds the cache backend named by the config.
func openServerCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", "file":
		dir := cfg.Dir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Redis)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
