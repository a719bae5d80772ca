package util

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxFileNameLen caps the stored display name of an upload, in bytes.
const MaxFileNameLen = 255

var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName turns a client-supplied upload name into a safe display
// name: traversal is rejected, separators become underscores and control
// characters are dropped. Long names keep their extension.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	s = strings.TrimSpace(s)
	if s == "" || !utf8.ValidString(s) {
		return "", ErrInvalidFileName
	}
	if len(s) > MaxFileNameLen {
		s = truncateKeepExt(s, MaxFileNameLen)
	}
	return s, nil
}

func truncateKeepExt(s string, limit int) string {
	ext := ""
	if i := strings.LastIndexByte(s, '.'); i > 0 && len(s)-i <= 10 {
		ext = s[i:]
		s = s[:i]
	}
	keep := limit - len(ext)
	for keep > 0 && !utf8.RuneStart(s[keep]) {
		keep--
	}
	return s[:keep] + ext
}
