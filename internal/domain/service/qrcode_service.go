package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateTableQR generates a QR code image that opens the menu for a table.
	GenerateTableQR(tableID string) ([]byte, error)

	// ParseTableQR parses QR code data and returns the table number.
	ParseTableQR(qrData string) (string, error)
}
