package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateAndParse(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://cafe.example.com/menu")

	png, err := svc.GenerateTableQR("12")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG signature
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])

	tableID, err := svc.ParseTableQR("https://cafe.example.com/menu?table=12")
	require.NoError(t, err)
	assert.Equal(t, "12", tableID)
}

func TestQRCodeService_ParseRejectsMissingTable(t *testing.T) {
	svc := NewQRCodeService(256, "M", "https://cafe.example.com/menu")

	_, err := svc.ParseTableQR("https://cafe.example.com/menu")
	assert.Error(t, err)
}
