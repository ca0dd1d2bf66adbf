package handler

import (
	"io"
	"net/http"
	"strings"
	"testing"

	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/service"
	mockSvc "licensing/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUploadHandler_Serve(t *testing.T) {
	storage := mockSvc.NewMockFileStorage(t)
	h := NewUploadHandler(UploadHandlerParams{Storage: storage, Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.GET("/uploads/*", h.Serve)

	storage.EXPECT().Open(mock.Anything, "tickets/2026/roof.png").Return(&service.StoredObject{
		Body:        io.NopCloser(strings.NewReader("png-bytes")),
		ContentType: "image/png",
		Size:        9,
	}, nil)

	rec := doJSON(e, http.MethodGet, "/uploads/tickets/2026/roof.png", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestUploadHandler_Serve_Missing(t *testing.T) {
	storage := mockSvc.NewMockFileStorage(t)
	h := NewUploadHandler(UploadHandlerParams{Storage: storage, Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.GET("/uploads/*", h.Serve)

	storage.EXPECT().Open(mock.Anything, "gone.pdf").Return(nil, domainerrors.ErrNotFound.WithDetails("gone.pdf"))

	rec := doJSON(e, http.MethodGet, "/uploads/gone.pdf", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadHandler_Serve_RejectsTraversal(t *testing.T) {
	h := NewUploadHandler(UploadHandlerParams{Storage: mockSvc.NewMockFileStorage(t), Logger: newDiscardLogger()})
	e := newTestEcho(nil)
	e.GET("/uploads/*", h.Serve)

	rec := doJSON(e, http.MethodGet, "/uploads/a/../secret", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
