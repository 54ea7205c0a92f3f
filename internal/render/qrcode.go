package render

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DrawQRCode encodes payload as a QR code and composites it as a size x size
// square at (x, y), through the same flatten-and-paste path as any other
// bitmap. Encoding fails only for payloads beyond QR capacity.
func (c *Canvas) DrawQRCode(payload string, x, y, size int) error {
	qrCode, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("encode qr payload: %w", err)
	}
	c.CompositeImage(qrCode.Image(size), x, y, size)
	return nil
}
