package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedText_DisplayFallbackOrder(t *testing.T) {
	assert.Equal(t, "قهوة", LocalizedText{AR: "قهوة", EN: "Coffee"}.Display("منتج"))
	assert.Equal(t, "Coffee", LocalizedText{EN: "Coffee"}.Display("منتج"))
	assert.Equal(t, "منتج", LocalizedText{}.Display("منتج"))
}

func TestLocalizedText_UnmarshalBothShapes(t *testing.T) {
	var record LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`{"ar":"شاي","en":"Tea"}`), &record))
	assert.Equal(t, "شاي", record.AR)
	assert.Equal(t, "Tea", record.EN)

	var plain LocalizedText
	require.NoError(t, json.Unmarshal([]byte(`"إسبريسو"`), &plain))
	assert.Equal(t, "إسبريسو", plain.AR)
	assert.Empty(t, plain.EN)
}

func TestValidTableNumber(t *testing.T) {
	assert.True(t, ValidTableNumber("1", 999))
	assert.True(t, ValidTableNumber("999", 999))
	assert.False(t, ValidTableNumber("0", 999))
	assert.False(t, ValidTableNumber("1000", 999))
	assert.False(t, ValidTableNumber("12a", 999))
	assert.False(t, ValidTableNumber("", 999))
}
