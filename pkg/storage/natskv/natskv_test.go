package natskv_test

import (
	"context"
	"fmt"
	"linkify/pkg/natsclient"
	"linkify/pkg/storage/natskv"
	"linkify/pkg/storage/storagetest"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startNATS runs a JetStream enabled server and returns a connected client.
func startNATS(t *testing.T) *natsclient.Client {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "nats:2.11.7-alpine",
			ExposedPorts: []string{"4222/tcp"},
			WaitingFor:   wait.ForListeningPort("4222/tcp"),
			Cmd:          []string{"--js"},
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "4222")
	require.NoError(t, err)

	client, err := natsclient.Connect(ctx, natsclient.Options{
		URL:           fmt.Sprintf("nats://%s:%s", host, port.Port()),
		Name:          "natskv-test",
		Timeout:       5 * time.Second,
		MaxReconnects: 5,
		ReconnectWait: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func newKV(t *testing.T) *natskv.KV {
	t.Helper()

	client := startNATS(t)
	bucket, err := client.KeyValue(context.Background(), jetstream.KeyValueConfig{Bucket: "pages", History: 1})
	require.NoError(t, err)

	return natskv.New(bucket)
}

func TestKV_PageStorage(t *testing.T) {
	storagetest.RunPageStorage(t, newKV(t))
}

func TestKV_VersionIsRevision(t *testing.T) {
	ctx := context.Background()
	strg := newKV(t)

	created, err := strg.CreatePage(ctx, storagetest.NewPage("alice"))
	require.NoError(t, err)

	a := created.Clone()
	a.BioInfo.Name = "A"
	updated, err := strg.UpdatePage(ctx, a)
	require.NoError(t, err)
	require.Greater(t, updated.Version, created.Version)

	got, err := strg.PageByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, updated.Version, got.Version)
}

func TestKV_RecreateAfterDelete(t *testing.T) {
	ctx := context.Background()
	strg := newKV(t)

	page := storagetest.NewPage("alice")
	_, err := strg.CreatePage(ctx, page)
	require.NoError(t, err)
	_, err = strg.DeletePage(ctx, "alice", page.ID)
	require.NoError(t, err)

	page.Owner = "bob"
	created, err := strg.CreatePage(ctx, page)
	require.NoError(t, err)
	require.Equal(t, page.Owner, created.Owner)
}
