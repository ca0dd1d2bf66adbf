package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "licensing/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveOpenDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	storage := NewBlobStorage(bucket, "uploads")

	publicPath, err := storage.Save(ctx, "tickets/abc/receipt.pdf", strings.NewReader("%PDF-1.4"), "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/tickets/abc/receipt.pdf", publicPath)

	obj, err := storage.Open(ctx, "tickets/abc/receipt.pdf")
	require.NoError(t, err)
	defer obj.Body.Close()

	body, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(body))
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.EqualValues(t, 8, obj.Size)

	require.NoError(t, storage.Delete(ctx, "tickets/abc/receipt.pdf"))

	_, err = storage.Open(ctx, "tickets/abc/receipt.pdf")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	assert.NoError(t, NewBlobStorage(bucket, "").Delete(context.Background(), "missing.png"))
}

func TestBlobStorage_RejectsTraversal(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	storage := NewBlobStorage(bucket, "uploads")

	for _, key := range []string{"../etc/passwd", "tickets/../../x", "", "a//b"} {
		_, err := storage.Save(context.Background(), key, strings.NewReader("x"), "text/plain")
		assert.ErrorIs(t, err, domainerrors.ErrAttachmentRejected, key)
	}
}
