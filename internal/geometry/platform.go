package geometry

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

const envInsets = "CASCADE_VIEWPORT_INSETS"

// PlatformInsets returns the viewport insets for the current platform family.
// Terminal emulators differ in how much of the reported window is actually
// usable; the environment variable CASCADE_VIEWPORT_INSETS ("top,right,
// bottom,left") overrides the built-in defaults.
func PlatformInsets() Insets {
	if v := os.Getenv(envInsets); v != "" {
		if insets, ok := parseInsets(v); ok {
			return insets
		}
	}
	switch runtime.GOOS {
	case "windows":
		// conhost reserves the final row; writing to it scrolls the screen.
		return Insets{Bottom: 1}
	default:
		return Insets{}
	}
}

func parseInsets(v string) (Insets, bool) {
	parts := strings.Split(v, ",")
	if len(parts) != 4 {
		return Insets{}, false
	}
	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return Insets{}, false
		}
		vals[i] = n
	}
	return Insets{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, true
}
