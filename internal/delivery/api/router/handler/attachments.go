package handler

import (
	"mime/multipart"

	"licensing/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/multierr"
)

const attachmentsField = "attachments"

// openAttachments opens every file sent under the attachments field.
// The returned closer must be called once the upload has been consumed.
func openAttachments(form *multipart.Form) ([]usecase.FileUpload, func() error, error) {
	headers := form.File[attachmentsField]
	files := make([]multipart.File, 0, len(headers))
	closeAll := func() error {
		var err error
		for _, f := range files {
			err = multierr.Append(err, f.Close())
		}

		return err
	}

	uploads := make([]usecase.FileUpload, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			_ = closeAll()

			return nil, nil, err
		}
		files = append(files, f)

		uploads = append(uploads, usecase.FileUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Size:        header.Size,
			Body:        f,
		})
	}

	return uploads, closeAll, nil
}
