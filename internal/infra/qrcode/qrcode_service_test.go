package qrcode

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestGeneratePromotionQR_ReturnsPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://shop.example.com/")

	png, err := svc.GeneratePromotionQR("promo-123")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic), "expected PNG magic bytes")
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X", "https://shop.example.com")

	png, err := svc.GeneratePromotionQR("promo-456")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
