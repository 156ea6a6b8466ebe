package tests

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickmenu/internal/service"
)

func TestMenuQRGenerator_Generate(t *testing.T) {
	gen := service.MenuQRGenerator{DefaultBaseURL: "http://localhost:5173"}

	t.Run("default_base_url", func(t *testing.T) {
		qr, err := gen.Generate("cafe-1", "")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:5173/menu/cafe-1", qr.URL)
	})

	t.Run("explicit_base_url", func(t *testing.T) {
		qr, err := gen.Generate("cafe-1", "https://menu.example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://menu.example.com/menu/cafe-1", qr.URL)
	})

	t.Run("emits_png_data_url", func(t *testing.T) {
		qr, err := gen.Generate("cafe-1", "")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(qr.QRCode, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(qr.QRCode, "data:image/png;base64,"))
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), raw[:8])
	})

	t.Run("missing_cafe_id", func(t *testing.T) {
		_, err := gen.Generate("", "")
		assert.ErrorIs(t, err, service.ErrMissingFields)
	})
}
