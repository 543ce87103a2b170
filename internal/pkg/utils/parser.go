package utils

import (
	"encoding/base64"
	"errors"
	"mime"
	"regexp"
	"strings"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
)

var dataURLRegex = regexp.MustCompile(constvars.RegexDataURLBase64)

var ErrEmptySignature = errors.New("signature is empty")

// Signature is a decoded signature image ready for upload.
type Signature struct {
	ContentType   string
	FileExtension string
	Data          []byte
}

// ParseSignature decodes a signature pad output. Both data URLs and bare
// base64 are accepted; bare base64 is assumed to be PNG.
func ParseSignature(raw string) (*Signature, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptySignature
	}

	contentType := constvars.MIMEImagePNG
	if match := dataURLRegex.FindStringSubmatch(raw); match != nil {
		contentType = strings.ToLower(match[1])
		raw = raw[len(match[0]):]
	}

	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptySignature
	}

	return &Signature{
		ContentType:   contentType,
		FileExtension: fileExtensionFor(contentType),
		Data:          data,
	}, nil
}

func fileExtensionFor(contentType string) string {
	if contentType == constvars.MIMEImagePNG {
		return ".png"
	}
	extensions, err := mime.ExtensionsByType(contentType)
	if err != nil || len(extensions) == 0 {
		return ".bin"
	}
	return extensions[0]
}
