package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxKeyLength bounds series keys; they end up in element ids and cache keys.
const maxKeyLength = 256

// ValidateKey validates a series key.
//
// Keys identify a series across the legend, focus sets and the drawing
// layer, so the rules are conservative:
//   - No empty keys
//   - No control characters or null bytes
//   - No whitespace (keys are used as element ids)
//   - Maximum length of 256 characters
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "series key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidInput, "series key too long (max %d characters)", maxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "series key %q contains control characters", key)
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "series key %q contains whitespace", key)
		}
	}

	return nil
}

// hexColorRegex matches #rgb, #rgba, #rrggbb and #rrggbbaa.
var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// namedColorRegex matches CSS color keywords such as "steelblue".
var namedColorRegex = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)

// ValidateColor validates a series color.
// Empty colors are allowed (the renderer picks one from its palette).
func ValidateColor(color string) error {
	if color == "" {
		return nil
	}
	if strings.HasPrefix(color, "#") {
		if !hexColorRegex.MatchString(color) {
			return New(ErrCodeInvalidInput, "invalid hex color: %q", color)
		}
		return nil
	}
	if !namedColorRegex.MatchString(color) {
		return New(ErrCodeInvalidInput, "invalid color: %q", color)
	}
	return nil
}

// ValidateFormat checks that format is one of the allowed output formats.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)", format, strings.Join(allowed, ", "))
}
