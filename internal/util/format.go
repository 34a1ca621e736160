package util

// TruncateContent shortens s to at most maxLength characters, marking the cut
// with "...". Multi-byte characters are never split.
func TruncateContent(s string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return string(runes[:maxLength])
	}
	return string(runes[:maxLength-3]) + "..."
}

func StringPointer(s string) *string {
	return &s
}
