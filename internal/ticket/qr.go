// Package ticket renders the scannable code printed on a booking ticket.
package ticket

import (
	"bytes"
	"fmt"
	"image/png"
	"strconv"
	"strings"

	"github.com/screenline/cinebook/internal/domain"
	"github.com/skip2/go-qrcode"
)

const DefaultSize = 256

// Payload is the text encoded in the QR code of a booking, for example
// "CINEBOOK|2d1f...|12|5,6".
func Payload(booking *domain.Booking) string {
	seats := make([]string, len(booking.Seats))
	for i, seat := range booking.Seats {
		seats[i] = strconv.Itoa(seat)
	}

	return fmt.Sprintf("CINEBOOK|%s|%d|%s", booking.Reference, booking.ShowtimeID, strings.Join(seats, ","))
}

// QRCode returns a PNG of size x size pixels encoding the booking payload.
func QRCode(booking *domain.Booking, size int) ([]byte, error) {
	qr, err := qrcode.New(Payload(booking), qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode ticket: %w", err)
	}

	buf := new(bytes.Buffer)
	err = png.Encode(buf, qr.Image(size))
	if err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	return buf.Bytes(), nil
}
