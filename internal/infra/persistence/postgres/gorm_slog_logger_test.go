package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"licensing/config"
	deliverycontext "licensing/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "rents" WHERE business_id = '1'`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.SlowQuery = 50 * time.Millisecond

	t.Run("slow query uses the request logger", func(t *testing.T) {
		var base, scoped bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), cfg)
		ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)

		assert.Zero(t, base.Len())
		assert.Contains(t, scoped.String(), "Slow database query")
		assert.Contains(t, scoped.String(), "request_id=req-1")
		assert.Contains(t, scoped.String(), "threshold=50ms")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		var base bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), cfg)

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Zero(t, base.Len())
	})

	t.Run("failure is logged with the statement", func(t *testing.T) {
		var base bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), cfg)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("deadlock detected"))

		assert.Contains(t, base.String(), "Database query failed")
		assert.Contains(t, base.String(), "deadlock detected")
		assert.Contains(t, base.String(), "rents")
	})

	t.Run("fast query is quiet outside debug", func(t *testing.T) {
		var base bytes.Buffer
		l := newGormSlogLogger(newBufferLogger(&base), cfg)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Zero(t, base.Len())
	})
}
