package utils

import (
	"encoding/base64"
	"testing"

	"github.com/kralluz/imec-formularios-app/internal/pkg/constvars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignature(t *testing.T) {
	payload := []byte("\x89PNG fake image")
	encoded := base64.StdEncoding.EncodeToString(payload)

	t.Run("Data URL", func(t *testing.T) {
		signature, err := ParseSignature("data:image/png;base64," + encoded)
		require.NoError(t, err)
		assert.Equal(t, constvars.MIMEImagePNG, signature.ContentType)
		assert.Equal(t, ".png", signature.FileExtension)
		assert.Equal(t, payload, signature.Data)
	})

	t.Run("Bare Base64", func(t *testing.T) {
		signature, err := ParseSignature(encoded)
		require.NoError(t, err)
		assert.Equal(t, constvars.MIMEImagePNG, signature.ContentType)
		assert.Equal(t, payload, signature.Data)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseSignature("   ")
		assert.ErrorIs(t, err, ErrEmptySignature)
	})

	t.Run("Not Base64", func(t *testing.T) {
		_, err := ParseSignature("data:image/png;base64,@@@")
		assert.Error(t, err)
	})
}
