// Package comic holds the catalog's single entity and the data URL
// encoding used for inline cover images.
package comic

import (
	"encoding/base64"
	"fmt"
	"strings"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

// Record is one catalog entry. Records are immutable once created; the
// issue number is kept as text.
type Record struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Issue     string `json:"issue" yaml:"issue"`
	Publisher string `json:"publisher" yaml:"publisher"`
	ImageURL  string `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty"`
}

// HasImage reports whether the record carries an inline cover.
func (r Record) HasImage() bool {
	return r.ImageURL != ""
}

// Heading is the card title, e.g. "Watchmen #1".
func (r Record) Heading() string {
	return fmt.Sprintf("%s #%s", r.Title, r.Issue)
}

// CoverAlt is the alt text of the cover image.
func (r Record) CoverAlt() string {
	return r.Title + " cover"
}

const dataURLPrefix = "data:"

// EncodeDataURL renders raw image bytes as a base64 data URL.
func EncodeDataURL(mimeType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(dataURLPrefix) + len(mimeType) + len(";base64,") + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(dataURLPrefix)
	b.WriteString(mimeType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// DataURLMediaType returns the media type of a base64 data URL.
func DataURLMediaType(dataURL string) (string, error) {
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		return "", fmt.Errorf("%w: not a data URL", apperrors.ErrInvalidImage)
	}
	header, _, ok := strings.Cut(dataURL[len(dataURLPrefix):], ",")
	if !ok {
		return "", fmt.Errorf("%w: data URL has no payload separator", apperrors.ErrInvalidImage)
	}
	mediaType, ok := strings.CutSuffix(header, ";base64")
	if !ok {
		return "", fmt.Errorf("%w: data URL is not base64 encoded", apperrors.ErrInvalidImage)
	}
	return mediaType, nil
}

// ValidateImageDataURL accepts only base64 data URLs with an image/* type.
func ValidateImageDataURL(dataURL string) error {
	mediaType, err := DataURLMediaType(dataURL)
	if err != nil {
		return err
	}
	if !IsImageType(mediaType) {
		return fmt.Errorf("%w: media type %q is not an image", apperrors.ErrInvalidImage, mediaType)
	}
	payload := dataURL[strings.IndexByte(dataURL, ',')+1:]
	if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
		return apperrors.WrapImage(err, "decode data URL payload")
	}
	return nil
}

// IsImageType reports whether a MIME type (parameters allowed) is image/*.
func IsImageType(mimeType string) bool {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.HasPrefix(strings.TrimSpace(strings.ToLower(base)), "image/")
}
