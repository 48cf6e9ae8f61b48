package utils

import (
	"strings"
	"unicode"
)

// NameFromEmail derives a display name from an email address: the local
// part with dots and underscores as word breaks, each word capitalized.
// "jane.doe@x.com" becomes "Jane Doe".
func NameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}

	parts := strings.Split(strings.ReplaceAll(local, "_", "."), ".")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
