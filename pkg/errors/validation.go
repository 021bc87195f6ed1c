package errors

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	hexColorRe   = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)
	namedColorRe = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
)

var rankDirs = map[string]bool{"TB": true, "BT": true, "LR": true, "RL": true}

// ValidateColor validates a Graphviz color attribute.
// Accepted forms are X11 color names ("green", "gray40") and
// RGB or RGBA hex strings ("#00aa00", "#00aa0080").
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidConfig, "color cannot be empty")
	}
	if hexColorRe.MatchString(color) || namedColorRe.MatchString(color) {
		return nil
	}
	return New(ErrCodeInvalidConfig, "invalid color %q (use a color name or #rrggbb)", color)
}

// ValidateRankDir validates a Graphviz rankdir value.
func ValidateRankDir(dir string) error {
	if rankDirs[strings.ToUpper(dir)] {
		return nil
	}
	return New(ErrCodeInvalidConfig, "invalid rankdir %q (use TB, BT, LR or RL)", dir)
}

// ValidateOutputPath validates an output file path.
// The special value "-" (stdout) is accepted.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidInput, "output path %q names a directory", path)
	}

	return nil
}
