package common

import (
	"strconv"
	"strings"
)

// ParseID parses a positive integer identifier from a path or query value.
func ParseID(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
