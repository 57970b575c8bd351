package utils

import "strings"

// NormalizePlate canonicalizes a license plate for storage and matching:
// uppercase, no surrounding whitespace, no interior spaces. The camera and
// the booking form both pass through this so lookups are exact-match.
func NormalizePlate(plate string) string {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	return strings.ReplaceAll(plate, " ", "")
}
