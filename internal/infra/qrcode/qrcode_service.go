// Package qrcode renders the table QR codes that open the menu.
package qrcode

import (
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"github.com/ahmedabdelhady55/cafe-ordering-system/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. The encoded
// payload is the menu deep link with the table number as a query
// parameter, so any phone camera opens the right table directly.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
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
		baseURL:              baseURL,
	}
}

// GenerateTableQR generates a QR code image that opens the menu for a table.
func (s *qrcodeService) GenerateTableQR(tableID string) ([]byte, error) {
	link := fmt.Sprintf("%s?table=%s", s.baseURL, url.QueryEscape(tableID))

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseTableQR parses QR code data and returns the table number.
func (s *qrcodeService) ParseTableQR(qrData string) (string, error) {
	parsed, err := url.Parse(qrData)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR link")
	}

	tableID := parsed.Query().Get("table")
	if tableID == "" {
		return "", errors.New("QR link has no table parameter")
	}

	return tableID, nil
}
