package photostore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotFound = errors.New("photo not found")
	ErrNotImage = errors.New("uploaded file is not an image")
)

// Store persists donation photos and resolves their public URLs.
// Save returns a storage key; URL(key) is what gets written to photo_donations.
type Store interface {
	Save(ctx context.Context, name, mimeType string, r io.Reader) (key string, err error)
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// sniffLen bytes read to detect the content type
const sniffLen = 3072

// SniffImage detects the content type from the leading bytes of r and
// rejects anything that is not an image. The returned reader replays the
// sniffed bytes followed by the rest of r.
func SniffImage(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", nil, err
	}
	head = head[:n]

	mt := mimetype.Detect(head)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", nil, ErrNotImage
	}

	return mt.String(), io.MultiReader(bytes.NewReader(head), r), nil
}
