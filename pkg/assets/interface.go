// Package assets defines the object storage used for uploaded images.
//
//go:generate mockgen -package mockassets -source=interface.go -destination=mock/mockassets.go *
package assets

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no object is stored under the key.
var ErrNotFound = errors.New("asset not found")

// Object is a stored asset.
type Object struct {
	Key         string
	ContentType string
	// Owner is the principal that uploaded the object. Only objects carrying
	// an owner are ever pruned, and only on behalf of that owner.
	Owner string
	Data  []byte
}

// Store puts, reads and deletes binary objects by key.
type Store interface {
	// Put stores obj under obj.Key, replacing any existing object.
	Put(ctx context.Context, obj Object) error
	// Get returns the object stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (*Object, error)
	// Delete removes the object stored under key. Deleting a missing object
	// is not an error.
	Delete(ctx context.Context, key string) error
}
