// Package main provides the CLI entrypoint for the page directory service.
// It wires subcommands (serve, migrate, jwt), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"linkify/internal/config"
	"linkify/pkg/assets"
	assetsmemory "linkify/pkg/assets/memory"
	"linkify/pkg/assets/natsobj"
	"linkify/pkg/logger"
	"linkify/pkg/natsclient"
	"linkify/pkg/storage"
	"linkify/pkg/storage/memory"
	"linkify/pkg/storage/natskv"
	"linkify/pkg/storage/postgres"
	"log"
	"os"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getNATS connects to the NATS server and returns the client along with a
// cleanup function draining the connection.
func getNATS(ctx context.Context, cfg *config.Config) (*natsclient.Client, func()) {
	client, err := natsclient.Connect(ctx, natsclient.Options{
		URL:           cfg.NATS.URL,
		Name:          "linkify",
		Timeout:       cfg.NATS.Timeout,
		MaxReconnects: cfg.NATS.MaxReconnects,
		ReconnectWait: cfg.NATS.ReconnectWait,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to nats", zap.Error(err))
	}

	return client, func() {
		logger.Info(ctx, "closing nats client...")
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "could not close nats connection", zap.Error(err))
		}
	}
}

// backends holds the page and asset stores selected by configuration.
type backends struct {
	storage storage.Storage
	assets  assets.Store
	// pgsql is set when pages live in PostgreSQL, which also hosts the job queue.
	pgsql *postgres.PgSQL
	close func()
}

// getBackends opens the stores named by cfg.Storage.Driver. Assets live in
// the NATS object store unless everything runs in memory.
func getBackends(ctx context.Context, cfg *config.Config) backends {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn(ctx, "using in-memory storage, data is lost on exit")

		return backends{storage: memory.New(), assets: assetsmemory.New(), close: func() {}}
	}

	nc, closeNATS := getNATS(ctx, cfg)
	bucket, err := nc.ObjectStore(ctx, jetstream.ObjectStoreConfig{
		Bucket:   cfg.NATS.AssetsBucket,
		Replicas: cfg.NATS.Replicas,
	})
	if err != nil {
		logger.Fatal(ctx, "could not open assets bucket", zap.Error(err))
	}
	out := backends{assets: natsobj.New(bucket), close: closeNATS}

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pgsql, closePG := getPostgres(ctx, cfg)
		out.storage, out.pgsql = pgsql, pgsql
		out.close = func() {
			closePG()
			closeNATS()
		}
	case config.StorageDriverNATS:
		kv, err := nc.KeyValue(ctx, jetstream.KeyValueConfig{
			Bucket:   cfg.NATS.PagesBucket,
			Replicas: cfg.NATS.Replicas,
		})
		if err != nil {
			logger.Fatal(ctx, "could not open pages bucket", zap.Error(err))
		}
		out.storage = natskv.New(kv)
	}

	return out
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use: "linkify",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		JWTCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
