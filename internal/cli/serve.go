package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/catalog/internal/config"
	"github.com/mesh-intelligence/catalog/internal/httpapi"
	"github.com/mesh-intelligence/catalog/internal/logging"
	"github.com/mesh-intelligence/catalog/internal/memory"
	"github.com/mesh-intelligence/catalog/internal/metrics"
	"github.com/mesh-intelligence/catalog/pkg/catalog"
)

func newServeCmd(flags *rootFlags) *cobra.Command {
	var listen, seedFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog HTTP server",
		Long:  "Load configuration, then serve the catalog over HTTP until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := flags.resolveConfigDir()
			if err != nil {
				return err
			}
			cfg, err := config.Load(configDir)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			if seedFile != "" {
				cfg.Catalog.SeedFile = seedFile
			}

			logger, flush, err := logging.Init(cfg.Logger)
			if err != nil {
				return sysError("logger: %w", err)
			}
			defer flush()

			storeOpts := []memory.Option{memory.WithLogger(logger.Named("store"))}
			if cfg.Catalog.SeedFile != "" {
				seed, err := memory.LoadSeedFile(cfg.Catalog.SeedFile)
				if err != nil {
					return err
				}
				storeOpts = append(storeOpts, memory.WithSeed(seed))
				logger.Info("using seed file", zap.String("path", cfg.Catalog.SeedFile))
			}
			store, err := memory.New(storeOpts...)
			if err != nil {
				if cfg.Catalog.SeedFile != "" {
					return fmt.Errorf("seed file %s: %w", cfg.Catalog.SeedFile, err)
				}
				return sysError("load catalog: %w", err)
			}

			opts := []httpapi.Option{httpapi.WithLogger(logger.Named("http"))}
			if cfg.Metrics.Enabled {
				opts = append(opts, httpapi.WithMetrics(metrics.NewRegistry(), cfg.Metrics.Path))
			}
			server := httpapi.New(store, opts...)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			zap.S().Infof("catalogd v%s listening on %s", catalog.Version, cfg.Server.Listen)
			if err := server.Run(ctx, cfg.Server.Listen, cfg.Server.ShutdownTimeout); err != nil {
				return sysError("serve: %w", err)
			}
			zap.S().Info("catalogd stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides server.listen)")
	cmd.Flags().StringVar(&seedFile, "seed-file", "", "seed dataset file, .json/.jsonl/.yaml (overrides catalog.seed_file)")
	return cmd
}
