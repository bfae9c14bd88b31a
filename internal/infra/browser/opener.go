// Package browser hands authorization URLs to the user.
package browser

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/browser"
)

// qrRenderer draws a URL as a scannable code.
type qrRenderer interface {
	Terminal(content string) (string, error)
}

// Opener prints the URL and, unless disabled, launches the system browser on it.
type Opener struct {
	out       io.Writer
	logger    *slog.Logger
	launch    func(url string) error
	noBrowser bool
	qr        qrRenderer
}

// NewOpener writes the sign-in prompt to out.
func NewOpener(out io.Writer, logger *slog.Logger, noBrowser bool) *Opener {
	// pkg/browser forwards the launcher's own output; keep it off the terminal UI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &Opener{
		out:       out,
		logger:    logger,
		launch:    browser.OpenURL,
		noBrowser: noBrowser,
	}
}

// WithQRCode also prints the URL as a QR code when no browser is launched, for signing in
// from a phone.
func (o *Opener) WithQRCode(r qrRenderer) *Opener {
	o.qr = r

	return o
}

// Open never fails because the browser is missing: the printed URL still works.
func (o *Opener) Open(url string) error {
	if _, err := fmt.Fprintf(o.out, "Open this URL to sign in:\n\n  %s\n\n", url); err != nil {
		return err
	}
	if o.noBrowser {
		o.printQRCode(url)

		return nil
	}

	if err := o.launch(url); err != nil {
		o.logger.Warn("Could not launch a browser", slog.Any("error", err))
	}

	return nil
}

func (o *Opener) printQRCode(url string) {
	if o.qr == nil {
		return
	}

	code, err := o.qr.Terminal(url)
	if err != nil {
		o.logger.Warn("Could not render sign-in QR code", slog.Any("error", err))

		return
	}
	_, _ = fmt.Fprintf(o.out, "%s\n", code)
}
