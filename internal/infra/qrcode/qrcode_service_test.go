package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePropertyShareQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GeneratePropertyShareQR([]uuid.UUID{uuid.New(), uuid.New()})
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestParsePropertyShareQR_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	raw, err := json.Marshal(QRCodeData{
		PropertyIDs: []string{ids[0].String(), ids[1].String()},
		Type:        "property_share",
	})
	require.NoError(t, err)

	parsed, err := svc.ParsePropertyShareQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, ids, parsed)
}

func TestParsePropertyShareQR_RejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	raw, err := json.Marshal(QRCodeData{Type: "subscription"})
	require.NoError(t, err)

	_, err = svc.ParsePropertyShareQR(string(raw))
	assert.Error(t, err)
}

func TestParsePropertyShareQR_RejectsGarbage(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParsePropertyShareQR("not json")
	assert.Error(t, err)
}
