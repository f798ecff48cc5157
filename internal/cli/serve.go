package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/familytree/internal/config"
	"github.com/matzehuels/familytree/internal/server"
)

// serveCommand creates the command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the family tree HTTP API",
		Long: `Serve starts the HTTP API. Settings come from an optional TOML file and
FAMILYTREE_* environment variables, in that order; --addr wins over both.`,
		Example: `  familytree serve
  familytree serve --config familytree.toml
  FAMILYTREE_CACHE_BACKEND=redis FAMILYTREE_CACHE_REDIS_ADDR=localhost:6379 familytree serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if f := cmd.Flag("verbose"); f == nil || !f.Changed {
				c.SetLogLevel(cfg.Level())
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg *config.Config) error {
	srv, err := server.Build(ctx, cfg, c.Logger)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(closeCtx); err != nil {
			c.Logger.Warn("close server", "error", err)
		}
	}()

	printInfo("Serving the family tree API")
	printKeyValue("API", StyleLink.Render("http://"+cfg.Addr+"/api/family-tree"))
	if cfg.Metrics {
		metricsAddr := cfg.Addr
		if cfg.MetricsAddr != "" {
			metricsAddr = cfg.MetricsAddr
		}
		printKeyValue("Metrics", StyleLink.Render("http://"+metricsAddr+"/metrics"))
	}
	printKeyValue("Cache", cfg.Cache.Backend)
	printKeyValue("Store", cfg.Store.Backend)
	if cfg.Cache.Backend == config.CacheNone {
		printWarning("Render cache disabled")
	}

	return srv.Run(ctx)
}
