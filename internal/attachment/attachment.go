// Package attachment turns locally selected image and PDF files into
// self-contained base64 data URLs embedded in a flashcard. Files are
// sniffed by content, never trusted by extension.
package attachment

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// Kind of attachment a flashcard answer accepts.
type Kind string

const (
	KindImage Kind = "image"
	KindPDF   Kind = "pdf"
)

// ErrUnsupportedType is returned when the file content does not match the
// requested attachment kind.
var ErrUnsupportedType = errors.New("unsupported attachment type")

var imageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/gif":  true,
	"image/webp": true,
}

// Encode wraps raw bytes into a data URL after verifying they match the
// requested kind.
func Encode(data []byte, kind Kind) (string, error) {
	contentType := strings.TrimSpace(strings.SplitN(http.DetectContentType(data), ";", 2)[0])

	switch kind {
	case KindImage:
		if !imageTypes[contentType] {
			return "", fmt.Errorf("%w: %s is not an image", ErrUnsupportedType, contentType)
		}
	case KindPDF:
		if contentType != "application/pdf" {
			return "", fmt.Errorf("%w: %s is not a PDF", ErrUnsupportedType, contentType)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, kind)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile reads a local file and encodes it as an attachment of the
// given kind.
func EncodeFile(path string, kind Kind) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read attachment: %w", err)
	}
	return Encode(data, kind)
}

// Decode splits a data URL back into its content type and raw bytes.
func Decode(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URL")
	}
	contentType := strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode attachment: %w", err)
	}
	return contentType, data, nil
}
