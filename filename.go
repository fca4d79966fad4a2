package policydoc

import (
	"strings"
	"unicode"
)

// MaxFilenameLength caps the length of names produced by SafeFilename.
const MaxFilenameLength = 50

// SafeFilename reduces a policy name to characters that are safe in a file
// name: letters, numbers, space, hyphen and underscore. Surrounding whitespace
// is trimmed and the result is truncated to maxLen runes. The extension is
// left to the caller.
func SafeFilename(name string, maxLen int) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := []rune(strings.TrimSpace(b.String()))
	if maxLen > 0 && len(safe) > maxLen {
		safe = safe[:maxLen]
	}
	return string(safe)
}
