// Package qrcode renders promotion share links as QR code images.
package qrcode

import (
	"strings"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSuffix(baseURL, "/"),
	}
}

// GeneratePromotionQR generates a PNG QR code encoding the promotion's
// public share URL.
func (s *qrcodeService) GeneratePromotionQR(promotionID string) ([]byte, error) {
	shareURL := s.baseURL + "/promotions/" + promotionID

	qrCode, err := qrcode.New(shareURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "generate PNG")
	}

	return pngBytes, nil
}
