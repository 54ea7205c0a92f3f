//go:build !linux || !cgo

package render

import "errors"

// PreviewFramebuffer requires a Linux framebuffer device.
func PreviewFramebuffer(c *Canvas) error {
	return errors.New("framebuffer preview is only supported on linux")
}
