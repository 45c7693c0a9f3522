package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
	assert.Equal(t, "", StripCodeFences("   "))
}

func TestSniffMimeHTTP(t *testing.T) {
	png := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	jpeg := []byte{0xFF, 0xD8, 0xFF}
	assert.Equal(t, "image/png", SniffMimeHTTP(png))
	assert.Equal(t, "image/jpeg", SniffMimeHTTP(jpeg))
	assert.Equal(t, "application/octet-stream", SniffMimeHTTP([]byte("hello")))
}

func TestMakeDataURL(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,QUJD", MakeDataURL("image/png", "QUJD"))
}

func TestDecodeBase64MaybeDataURL(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0x01}
	b64 := base64.StdEncoding.EncodeToString(payload)

	t.Run("bare base64", func(t *testing.T) {
		b, mime, err := DecodeBase64MaybeDataURL(b64)
		require.NoError(t, err)
		assert.Equal(t, payload, b)
		assert.Empty(t, mime)
	})

	t.Run("data URL carries its MIME", func(t *testing.T) {
		b, mime, err := DecodeBase64MaybeDataURL("data:image/jpeg;base64," + b64)
		require.NoError(t, err)
		assert.Equal(t, payload, b)
		assert.Equal(t, "image/jpeg", mime)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, _, err := DecodeBase64MaybeDataURL("!!not base64!!")
		require.Error(t, err)
	})
}
