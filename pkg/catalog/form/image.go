package form

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

// ConvertImage reads r fully and encodes it as a data URL. contentType may
// be empty or generic, in which case the bytes are sniffed. Only image/*
// types are accepted.
func ConvertImage(r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", apperrors.WrapImage(err, "read image")
	}

	mediaType := ""
	if contentType != "" {
		if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
			mediaType = parsed
		}
	}
	if mediaType == "" || mediaType == "application/octet-stream" {
		sniffed, _, _ := mime.ParseMediaType(http.DetectContentType(data))
		mediaType = sniffed
	}

	if !comic.IsImageType(mediaType) {
		return "", fmt.Errorf("%w: media type %q is not an image", apperrors.ErrInvalidImage, mediaType)
	}

	return comic.EncodeDataURL(mediaType, data), nil
}

// LoadImage converts the file and stores it in the pending image slot.
// On failure the slot keeps its previous value.
func (f *Form) LoadImage(r io.Reader, contentType string) error {
	dataURL, err := ConvertImage(r, contentType)
	if err != nil {
		return err
	}
	f.setImage(dataURL)
	return nil
}

// LoadImageAsync runs LoadImage on its own goroutine. The returned channel
// receives the result once and is then closed. The conversion cannot be
// cancelled and writes the slot even if the form was cleared meanwhile.
func (f *Form) LoadImageAsync(r io.Reader, contentType string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- f.LoadImage(r, contentType)
	}()
	return done
}

// SetImageDataURL stores an already-encoded image after checking it.
func (f *Form) SetImageDataURL(dataURL string) error {
	if err := comic.ValidateImageDataURL(dataURL); err != nil {
		return err
	}
	f.setImage(dataURL)
	return nil
}
