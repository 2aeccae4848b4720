package service

// QRCodeService renders share-link QR codes for promotions.
type QRCodeService interface {
	// GeneratePromotionQR returns a PNG image encoding the public share URL
	// of the promotion.
	GeneratePromotionQR(promotionID string) ([]byte, error)
}
