package natsobj_test

import (
	"context"
	"fmt"
	"linkify/pkg/assets"
	"linkify/pkg/assets/natsobj"
	"linkify/pkg/natsclient"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func newObjectStore(t *testing.T) *natsobj.ObjectStore {
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
		URL:     fmt.Sprintf("nats://%s:%s", host, port.Port()),
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	bucket, err := client.ObjectStore(ctx, jetstream.ObjectStoreConfig{Bucket: "assets"})
	require.NoError(t, err)

	return natsobj.New(bucket)
}

func TestObjectStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := newObjectStore(t)

	data := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	require.NoError(t, store.Put(ctx, assets.Object{Key: "abc123", ContentType: "image/png", Owner: "u1", Data: data}))

	obj, err := store.Get(ctx, "abc123")
	require.NoError(t, err)
	require.Equal(t, data, obj.Data)
	require.Equal(t, "image/png", obj.ContentType)
	require.Equal(t, "abc123", obj.Key)
	require.Equal(t, "u1", obj.Owner)

	require.NoError(t, store.Delete(ctx, "abc123"))
	_, err = store.Get(ctx, "abc123")
	require.ErrorIs(t, err, assets.ErrNotFound)

	// deleting twice is fine
	require.NoError(t, store.Delete(ctx, "abc123"))
}

func TestObjectStore_GetMissing(t *testing.T) {
	store := newObjectStore(t)

	_, err := store.Get(context.Background(), "nope")
	require.ErrorIs(t, err, assets.ErrNotFound)
}
