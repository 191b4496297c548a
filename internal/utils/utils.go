package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var invalidFileNameChars = regexp.MustCompile(`[\/\?<>\\:\*\|"\x00-\x1f]`)

func StringNotEmptyCoalesce(args ...string) string {
	for _, elem := range args {
		if len(strings.TrimSpace(elem)) > 0 {
			return elem
		}
	}

	return ""
}

// SanitizeFileName заменяет недопустимые в Windows/Android символы на подчёркивания
func SanitizeFileName(name string) string {
	name = invalidFileNameChars.ReplaceAllString(name, "_")

	return strings.Trim(strings.TrimSpace(name), ".")
}

// TruncateRunes обрезает строку по рунам, а не по байтам
func TruncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}

	return s
}

func FormatSecondsToMMSS(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}

	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
