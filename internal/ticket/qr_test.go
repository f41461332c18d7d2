package ticket

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/uuid"
	"github.com/screenline/cinebook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	booking := &domain.Booking{
		Reference:  uuid.MustParse("8f0a2c4e-5b6d-4e1f-9a3b-7c8d9e0f1a2b"),
		ShowtimeID: 12,
		Seats:      []int{5, 6},
	}

	assert.Equal(t, "CINEBOOK|8f0a2c4e-5b6d-4e1f-9a3b-7c8d9e0f1a2b|12|5,6", Payload(booking))
}

func TestQRCode(t *testing.T) {
	booking := domain.NewBooking(1, 12, []int{1, 2, 3})

	data, err := QRCode(booking, DefaultSize)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, DefaultSize, bounds.Dx())
	assert.Equal(t, DefaultSize, bounds.Dy())
}
