// Package storage provides the durable key-value backend under the store.
// Values are opaque blobs; the store decides what lives under each key.
package storage

import "errors"

// ErrNotFound is returned by Get when nothing is stored under the key.
var ErrNotFound = errors.New("storage: key not found")

type Backend interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}
