// Package natsclient manages the NATS connection and the JetStream buckets
// backing the KV page store and the object asset store.
package natsclient

import (
	"context"
	"errors"
	"fmt"
	"linkify/pkg/logger"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

// Options defines the configuration parameters for the NATS connection.
type Options struct {
	// URL is the NATS server URL, e.g. nats://localhost:4222
	URL string
	// Name is reported to the server as the client connection name
	Name string
	// Timeout bounds the initial dial and every JetStream API request
	Timeout time.Duration
	// MaxReconnects is the number of reconnect attempts, -1 for unlimited
	MaxReconnects int
	// ReconnectWait is the delay between reconnect attempts
	ReconnectWait time.Duration
}

// Client bundles a NATS connection with its JetStream context.
type Client struct {
	Conn      *nats.Conn
	JetStream jetstream.JetStream
}

// Connect dials the server and initializes JetStream. Connection state
// changes are reported through the logger found in ctx.
func Connect(ctx context.Context, options Options) (*Client, error) {
	opts := []nats.Option{
		nats.MaxReconnects(options.MaxReconnects),
		nats.ReconnectWait(options.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn(ctx, "nats disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(conn *nats.Conn) {
			logger.Info(ctx, "nats reconnected", zap.String("url", conn.ConnectedUrl()))
		}),
	}
	if options.Timeout > 0 {
		opts = append(opts, nats.Timeout(options.Timeout))
	}
	if options.Name != "" {
		opts = append(opts, nats.Name(options.Name))
	}

	conn, err := nats.Connect(options.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to nats: %w", err)
	}

	var jsOpts []jetstream.JetStreamOpt
	if options.Timeout > 0 {
		jsOpts = append(jsOpts, jetstream.WithDefaultTimeout(options.Timeout))
	}
	js, err := jetstream.New(conn, jsOpts...)
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("could not create jetstream context: %w", err)
	}

	return &Client{Conn: conn, JetStream: js}, nil
}

// KeyValue returns the KV bucket described by cfg, creating it when missing.
func (c *Client) KeyValue(ctx context.Context, cfg jetstream.KeyValueConfig) (jetstream.KeyValue, error) {
	kv, err := c.JetStream.KeyValue(ctx, cfg.Bucket)
	if err == nil {
		return kv, nil
	}
	if !errors.Is(err, jetstream.ErrBucketNotFound) {
		return nil, fmt.Errorf("could not get kv bucket %s: %w", cfg.Bucket, err)
	}

	kv, err = c.JetStream.CreateOrUpdateKeyValue(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create kv bucket %s: %w", cfg.Bucket, err)
	}

	return kv, nil
}

// ObjectStore returns the object store bucket described by cfg, creating it
// when missing.
func (c *Client) ObjectStore(ctx context.Context, cfg jetstream.ObjectStoreConfig) (jetstream.ObjectStore, error) {
	obs, err := c.JetStream.ObjectStore(ctx, cfg.Bucket)
	if err == nil {
		return obs, nil
	}
	if !errors.Is(err, jetstream.ErrBucketNotFound) {
		return nil, fmt.Errorf("could not get object store %s: %w", cfg.Bucket, err)
	}

	obs, err = c.JetStream.CreateOrUpdateObjectStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create object store %s: %w", cfg.Bucket, err)
	}

	return obs, nil
}

// Close drains pending messages and closes the connection.
func (c *Client) Close() error {
	if c.Conn == nil {
		return nil
	}
	if err := c.Conn.Drain(); err != nil {
		c.Conn.Close()

		return fmt.Errorf("could not drain nats connection: %w", err)
	}

	return nil
}
