package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"licensing/config"
	"licensing/internal/domain/entity"
	domainerrors "licensing/internal/domain/errors"
	"licensing/internal/domain/service"
	"licensing/internal/errors"
	"licensing/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultMaxAttachments    = 5
	defaultMaxAttachmentSize = 5 << 20
)

var attachmentExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// attachmentStore validates uploads and writes them under a per-record prefix.
type attachmentStore struct {
	storage  service.FileStorage
	maxFiles int
	maxSize  int64
}

func newAttachmentStore(storage service.FileStorage, cfg *config.Config) *attachmentStore {
	store := &attachmentStore{
		storage:  storage,
		maxFiles: defaultMaxAttachments,
		maxSize:  defaultMaxAttachmentSize,
	}

	if cfg != nil && cfg.Storage != nil {
		if cfg.Storage.MaxFiles > 0 {
			store.maxFiles = cfg.Storage.MaxFiles
		}
		if cfg.Storage.MaxFileSize > 0 {
			store.maxSize = cfg.Storage.MaxFileSize
		}
	}

	return store
}

func (s *attachmentStore) validate(files []usecase.FileUpload) error {
	if len(files) > s.maxFiles {
		return domainerrors.ErrAttachmentRejected.WithDetails(fmt.Sprintf("at most %d files", s.maxFiles))
	}

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if _, ok := attachmentExtensions[ext]; !ok {
			return domainerrors.ErrAttachmentRejected.WithDetails("invalid file type: " + file.Filename)
		}
		if file.Size > s.maxSize {
			return domainerrors.ErrAttachmentRejected.WithDetails("file too large: " + file.Filename)
		}
	}

	return nil
}

// save writes every file under prefix and returns the attachments with their storage keys.
// On failure the files already written are removed.
func (s *attachmentStore) save(ctx context.Context, logger *slog.Logger, prefix string, files []usecase.FileUpload) ([]entity.Attachment, []string, error) {
	if err := s.validate(files); err != nil {
		return nil, nil, err
	}

	attachments := make([]entity.Attachment, 0, len(files))
	keys := make([]string, 0, len(files))

	for _, file := range files {
		key := path.Join(prefix, uuid.NewString()+strings.ToLower(filepath.Ext(file.Filename)))

		// One extra byte tells an understated Size apart from an exact one.
		body := io.LimitReader(file.Body, s.maxSize+1)
		counter := &countingReader{r: body}

		stored, err := s.storage.Save(ctx, key, counter, file.ContentType)
		if err == nil && counter.n > s.maxSize {
			keys = append(keys, key)
			err = domainerrors.ErrAttachmentRejected.WithDetails("file too large: " + file.Filename)
		}
		if err != nil {
			s.remove(ctx, logger, keys)

			return nil, nil, errors.Wrap(err, "failed to store attachment")
		}

		keys = append(keys, key)
		attachments = append(attachments, entity.Attachment{
			Filename: file.Filename,
			Path:     stored,
			MimeType: file.ContentType,
		})
	}

	return attachments, keys, nil
}

func (s *attachmentStore) remove(ctx context.Context, logger *slog.Logger, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.Warn("Failed to remove orphaned attachment", slog.String("key", key), slog.Any("error", err))
		}
	}
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}
