// Package natsobj implements assets.Store on a NATS JetStream object store.
package natsobj

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"linkify/pkg/assets"

	"github.com/nats-io/nats.go/jetstream"
)

const (
	contentTypeKey = "content-type"
	ownerKey       = "owner"
)

// ObjectStore implements assets.Store.
type ObjectStore struct {
	bucket jetstream.ObjectStore
}

var _ assets.Store = (*ObjectStore)(nil)

// New wraps an existing object store bucket.
func New(bucket jetstream.ObjectStore) *ObjectStore {
	return &ObjectStore{bucket: bucket}
}

func (o *ObjectStore) Put(ctx context.Context, obj assets.Object) error {
	meta := jetstream.ObjectMeta{
		Name: obj.Key,
		Metadata: map[string]string{
			contentTypeKey: obj.ContentType,
			ownerKey:       obj.Owner,
		},
	}
	if _, err := o.bucket.Put(ctx, meta, bytes.NewReader(obj.Data)); err != nil {
		return fmt.Errorf("could not put object %s: %w", obj.Key, err)
	}

	return nil
}

func (o *ObjectStore) Get(ctx context.Context, key string) (*assets.Object, error) {
	res, err := o.bucket.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrObjectNotFound) {
			return nil, assets.ErrNotFound
		}

		return nil, fmt.Errorf("could not get object %s: %w", key, err)
	}
	defer func() { _ = res.Close() }()

	info, err := res.Info()
	if err != nil {
		return nil, fmt.Errorf("could not get object info %s: %w", key, err)
	}
	data, err := io.ReadAll(res)
	if err != nil {
		return nil, fmt.Errorf("could not read object %s: %w", key, err)
	}

	return &assets.Object{
		Key:         key,
		ContentType: info.Metadata[contentTypeKey],
		Owner:       info.Metadata[ownerKey],
		Data:        data,
	}, nil
}

func (o *ObjectStore) Delete(ctx context.Context, key string) error {
	if err := o.bucket.Delete(ctx, key); err != nil && !errors.Is(err, jetstream.ErrObjectNotFound) {
		return fmt.Errorf("could not delete object %s: %w", key, err)
	}

	return nil
}
