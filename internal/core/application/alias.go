package application

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Alias derives a filesystem- and node-safe identifier from a wallet's
// display name: lowercased, spaces collapsed to underscores, anything
// else outside [a-z0-9_] dropped.
func Alias(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	buf := strings.Builder{}
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			buf.WriteRune(r)
		case unicode.IsSpace(r), r == '-':
			buf.WriteRune('_')
		}
	}
	if buf.Len() <= 0 {
		return "wallet"
	}
	return buf.String()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
