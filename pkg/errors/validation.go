package errors

import (
	"strings"
	"unicode"
)

// ValidateRoom checks room dimensions against the configured bounds.
// Both dimensions are millimeters; min and max are inclusive.
func ValidateRoom(w, d, min, max int) error {
	if w <= 0 || d <= 0 {
		return New(ErrCodeInvalidRoom, "room dimensions must be positive, got %dx%d", w, d)
	}
	if w < min || d < min {
		return New(ErrCodeInvalidRoom, "room %dx%dmm below minimum %dmm", w, d, min)
	}
	if w > max || d > max {
		return New(ErrCodeInvalidRoom, "room %dx%dmm above maximum %dmm", w, d, max)
	}
	return nil
}

// ValidateSeats rejects negative seat requests. Zero is allowed: an
// equipment-only plan is a valid request.
func ValidateSeats(seats int) error {
	if seats < 0 {
		return New(ErrCodeInvalidInput, "seats required cannot be negative, got %d", seats)
	}
	return nil
}

// ValidateFurnitureKey validates a catalog key for safety and correctness.
// Keys end up in labels, cache keys, and export filenames, so the rules are
// intentionally conservative:
//   - No empty keys
//   - No control characters or whitespace
//   - No path separators or traversal sequences
//   - Maximum length of 64 characters
func ValidateFurnitureKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidCatalog, "furniture key cannot be empty")
	}

	if len(key) > 64 {
		return New(ErrCodeInvalidCatalog, "furniture key too long (max 64 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidCatalog, "furniture key %q contains invalid characters", key)
		}
	}

	dangerous := []string{"..", "/", "\\", "\x00"}
	for _, pattern := range dangerous {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidCatalog, "furniture key %q contains invalid sequence %q", key, pattern)
		}
	}

	return nil
}

// ValidateDoorWidth rejects non-positive door widths. The upper bound is the
// room span the door sits on, checked later when the wall is known.
func ValidateDoorWidth(width int) error {
	if width <= 0 {
		return New(ErrCodeInvalidDoor, "door width must be positive, got %d", width)
	}
	return nil
}
