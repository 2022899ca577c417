package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// StorageDriverPostgres stores pages in PostgreSQL and enables the job queue.
	StorageDriverPostgres = "postgres"
	// StorageDriverNATS stores pages in a NATS JetStream KV bucket.
	StorageDriverNATS = "nats"
	// StorageDriverMemory keeps everything in process memory.
	StorageDriverMemory = "memory"

	// KeyStrategyTimestamp derives upload keys from owner, page and upload time.
	KeyStrategyTimestamp = "timestamp"
	// KeyStrategyContent derives upload keys from the uploaded bytes.
	KeyStrategyContent = "content"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, page and asset
// stores, page directory behavior and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MaxUploadBytes limits the size of an uploaded profile image
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"5242880" yaml:"maxUploadBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// CORSAllowedOrigins lists the origins allowed to call the API with credentials; empty allows any origin without them
		CORSAllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" env-separator:"," yaml:"corsAllowedOrigins"`
		// EnablePprof mounts net/http/pprof under /debug/pprof/
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// JWT contains the RS256 key pair used to verify (and, for the jwt command, sign) bearer tokens
	JWT struct {
		// PublicKey is the PEM encoded RSA public key
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key, only needed by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// Storage selects the page store backend
	Storage struct {
		// Driver is one of postgres, nats or memory
		Driver string `env:"STORAGE_DRIVER" env-default:"postgres" yaml:"driver"`
	} `yaml:"storage"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"linkify" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// NATS contains the connection and bucket settings for the JetStream backends
	NATS struct {
		// URL is the NATS server URL
		URL string `env:"NATS_URL" env-default:"nats://localhost:4222" yaml:"url"`
		// Timeout bounds dialing and JetStream API requests
		Timeout time.Duration `env:"NATS_TIMEOUT" env-default:"5s" yaml:"timeout"`
		// MaxReconnects is the number of reconnect attempts, -1 for unlimited
		MaxReconnects int `env:"NATS_MAX_RECONNECTS" env-default:"-1" yaml:"maxReconnects"`
		// ReconnectWait is the delay between reconnect attempts
		ReconnectWait time.Duration `env:"NATS_RECONNECT_WAIT" env-default:"2s" yaml:"reconnectWait"`
		// PagesBucket is the KV bucket holding page records when the nats driver is used
		PagesBucket string `env:"NATS_PAGES_BUCKET" env-default:"pages" yaml:"pagesBucket"`
		// AssetsBucket is the object store bucket holding uploaded images
		AssetsBucket string `env:"NATS_ASSETS_BUCKET" env-default:"assets" yaml:"assetsBucket"`
		// Replicas is the replication factor of created buckets
		Replicas int `env:"NATS_REPLICAS" env-default:"1" yaml:"replicas"`
	} `yaml:"nats"`

	// Pages configures the page directory service
	Pages struct {
		// MaxUpdateAttempts bounds optimistic concurrency retries of a single mutation
		MaxUpdateAttempts uint64 `env:"PAGES_MAX_UPDATE_ATTEMPTS" env-default:"5" yaml:"maxUpdateAttempts"`
		// RetryBaseDelay is the first backoff delay between attempts, doubled on each retry
		RetryBaseDelay time.Duration `env:"PAGES_RETRY_BASE_DELAY" env-default:"10ms" yaml:"retryBaseDelay"`
	} `yaml:"pages"`

	// Assets configures uploaded image handling
	Assets struct {
		// CDNDomain is the host serving uploaded assets, used to build public URLs
		CDNDomain string `env:"ASSETS_CDN_DOMAIN" env-default:"localhost:8080/assets" yaml:"cdnDomain"`
		// KeyStrategy is timestamp or content
		KeyStrategy string `env:"ASSETS_KEY_STRATEGY" env-default:"timestamp" yaml:"keyStrategy"`
		// PruneReplaced enqueues deletion of profile images that are no longer referenced
		PruneReplaced bool `env:"ASSETS_PRUNE_REPLACED" env-default:"true" yaml:"pruneReplaced"`
	} `yaml:"assets"`

	// Worker configures the background job runner
	Worker struct {
		// MaxWorkers is the number of concurrently running jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a failing job is retried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverNATS, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Assets.KeyStrategy {
	case KeyStrategyTimestamp, KeyStrategyContent:
	default:
		return fmt.Errorf("unknown asset key strategy %q", c.Assets.KeyStrategy)
	}

	if c.Pages.MaxUpdateAttempts == 0 {
		return errors.New("pages.maxUpdateAttempts must be positive")
	}
	if c.Assets.CDNDomain == "" {
		return errors.New("assets.cdnDomain must be set")
	}

	return nil
}
