package internal

import "strings"

// Truncate shortens a string to at most max runes for log display,
// appending "..." when anything was cut off.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// LanguageSuffix derives a filename-safe suffix from a target language
// name, e.g. "Simplified Chinese" -> "simplified-chinese". Used when
// naming translated files in standalone mode.
func LanguageSuffix(language string) string {
	result := ""
	for _, r := range strings.ToLower(strings.TrimSpace(language)) {
		if r == ' ' || r == '_' {
			result += "-"
		} else if isFilenameSafe(r) {
			result += string(r)
		}
	}
	return strings.Trim(result, "-")
}

// isFilenameSafe checks if a rune can appear in a language suffix
func isFilenameSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
}
