package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrImageTooLarge        = errors.New("image too large")
	ErrImageNameTooLong     = errors.New("image name is too long")
	ErrImageTypeUnsupported = errors.New("unsupported image type")
	ErrNoImage              = errors.New("no image provided")
)

const maxImageNameSize = 255

// ImageValidator checks an uploaded product image. The Content-Type
// header is checked first because it's cheap, then the actual bytes
// are sniffed to catch clients lying about what they send. On success
// the opened file is returned rewound, together with the detected type.
func ImageValidator(fh *multipart.FileHeader) (int, multipart.File, *mimetype.MIME, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, nil, ErrNoImage
	}

	ct := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "image/") {
		return http.StatusBadRequest, nil, nil, ErrImageTypeUnsupported
	}

	if len(fh.Filename) > maxImageNameSize {
		return http.StatusBadRequest, nil, nil, ErrImageNameTooLong
	}

	if fh.Size > viper.GetInt64("upload.max_size") {
		return http.StatusRequestEntityTooLarge, nil, nil, ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	if !strings.HasPrefix(mime.String(), "image/") {
		f.Close()
		return http.StatusBadRequest, nil, nil, ErrImageTypeUnsupported
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	return 0, f, mime, nil
}
