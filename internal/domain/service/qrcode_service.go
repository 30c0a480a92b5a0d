package service

// QRCodeService renders share codes for survey links.
type QRCodeService interface {
	// GenerateShareQR encodes url as a PNG QR code.
	GenerateShareQR(url string) ([]byte, error)
}
