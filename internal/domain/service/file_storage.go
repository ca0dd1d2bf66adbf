package service

import (
	"context"
	"io"
)

// StoredObject is an attachment opened for reading.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// FileStorage persists uploaded attachments and returns a retrievable path.
type FileStorage interface {
	// Save writes r under key and returns the public path of the stored object.
	Save(ctx context.Context, key string, r io.Reader, contentType string) (string, error)

	// Open streams a stored object. The caller closes Body.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes a previously saved object by its key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}
