package models

import (
	"strconv"
	"strings"
)

// ParseID parses a path parameter into a positive integer id.
// Empty, non-numeric and non-positive values return ErrInvalidID.
func ParseID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidID
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}
