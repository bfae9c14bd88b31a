// Package util holds small formatting helpers shared by the CLI and the TUI.
package util

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatExpiry describes how long a credential stays valid.
func FormatExpiry(expiresAt, now time.Time) string {
	switch {
	case expiresAt.IsZero():
		return "no expiry"
	case !now.Before(expiresAt):
		return "expired"
	default:
		return "expires in " + FormatDuration(expiresAt.Sub(now))
	}
}

// Preview returns the first line of content cut to width runes.
func Preview(content []byte, width int) string {
	if !utf8.Valid(content) {
		return "[binary]"
	}

	line, _, more := strings.Cut(string(content), "\n")
	line = strings.TrimRight(line, "\r")
	if width > 0 && utf8.RuneCountInString(line) > width {
		runes := []rune(line)
		if width == 1 {
			return "…"
		}

		return string(runes[:width-1]) + "…"
	}
	if more {
		return line + " …"
	}

	return line
}
