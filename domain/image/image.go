package image

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidEncoding = errors.New("image is not valid base64")
	ErrDirNotFound     = errors.New("image directory does not exist")
)

type Store interface {
	// Save replaces the stored image with data and returns the bytes written.
	// A concurrent reader sees either the previous image or data, never a mix.
	Save(ctx context.Context, data []byte) (int64, error)
	Path() string
}

// Decode accepts standard base64, padded or not, optionally prefixed with a
// data URL header such as "data:image/jpeg;base64,". Whitespace is ignored.
// An empty input decodes to an empty image.
func Decode(encoded string) ([]byte, error) {
	if i := strings.Index(encoded, ";base64,"); i >= 0 && strings.HasPrefix(encoded, "data:") {
		encoded = encoded[i+len(";base64,"):]
	}

	encoded = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}

		return r
	}, encoded)

	if encoded == "" {
		return []byte{}, nil
	}

	enc := base64.StdEncoding
	if len(encoded)%4 != 0 {
		enc = base64.RawStdEncoding
	}

	data, err := enc.DecodeString(encoded)
	if err != nil {
		return nil, errors.Join(ErrInvalidEncoding, err)
	}

	return data, nil
}
