// Package qrcode renders sign-in URLs as QR codes for signing in from another device.
package qrcode

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// Renderer draws QR codes with half-block characters, two modules per text row.
type Renderer struct {
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewRenderer creates a renderer for the given error correction level (L, M, Q or H).
func NewRenderer(errorCorrectionLevel string) *Renderer {
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
		level = qrcode.Low
	}

	return &Renderer{errorCorrectionLevel: level}
}

// Terminal returns content as a QR code drawn in text. Dark modules are drawn as blocks,
// so the code scans on terminals with a dark background.
func (r *Renderer) Terminal(content string) (string, error) {
	code, err := qrcode.New(content, r.errorCorrectionLevel)
	if err != nil {
		return "", errors.Wrap(err, "failed to create QR code")
	}

	return render(code.Bitmap()), nil
}

// render maps each pair of bitmap rows to one line. true in the bitmap is a dark module,
// which is printed as blank so light blocks form the code on a dark terminal.
func render(bitmap [][]bool) string {
	var b strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := !bitmap[y][x]
			bottom := y+1 < len(bitmap) && !bitmap[y+1][x]
			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
