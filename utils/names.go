package utils

import "strings"

// DisplayName derives a human-facing name from a user identifier.
// Identifiers look like "user_mary" or "mary"; the last underscore
// segment is title-cased.
func DisplayName(userID string) string {
	name := userID
	if idx := strings.LastIndex(name, "_"); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" {
		return "there"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
