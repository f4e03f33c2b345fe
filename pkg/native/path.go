package native

import (
	"fmt"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
)

// Separator is the native directory separator.
const Separator = '\\'

// Mode selects how POSIX path text is interpreted.
type Mode int

const (
	// ModeLegacy treats path bytes as the single-byte code page and produces
	// narrow native paths.
	ModeLegacy Mode = iota
	// ModeUTF8 treats path bytes as UTF-8 and produces wide native paths.
	ModeUTF8
)

func (m Mode) String() string {
	switch m {
	case ModeLegacy:
		return "legacy"
	case ModeUTF8:
		return "utf8"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "legacy" or "utf8" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "legacy", "ansi":
		return ModeLegacy, nil
	case "utf8", "utf-8":
		return ModeUTF8, nil
	}
	return 0, fmt.Errorf("unknown encoding mode %q", s)
}

// Path is native path text: narrow code-page units or wide UTF-16 units.
// The zero value is an empty narrow path.
type Path struct {
	narrow []byte
	wide   []uint16
	isWide bool
}

// NarrowPath wraps narrow units. The slice is not copied.
func NarrowPath(b []byte) Path {
	return Path{narrow: b}
}

// WidePath wraps wide units. The slice is not copied.
func WidePath(u []uint16) Path {
	return Path{wide: u, isWide: true}
}

// WideString encodes s as a wide path.
func WideString(s string) Path {
	return WidePath(utf16.Encode([]rune(s)))
}

// IsWide reports whether p holds UTF-16 units.
func (p Path) IsWide() bool { return p.isWide }

// Narrow returns the narrow units, or nil for a wide path.
func (p Path) Narrow() []byte { return p.narrow }

// Wide returns the wide units, or nil for a narrow path.
func (p Path) Wide() []uint16 { return p.wide }

// Len returns the length in native units.
func (p Path) Len() int {
	if p.isWide {
		return len(p.wide)
	}
	return len(p.narrow)
}

// Text returns p as a Go string. Narrow units are decoded with cp; a nil cp
// passes the bytes through unchanged.
func (p Path) Text(cp encoding.Encoding) (string, error) {
	if p.isWide {
		return string(utf16.Decode(p.wide)), nil
	}
	if cp == nil {
		return string(p.narrow), nil
	}
	b, err := cp.NewDecoder().Bytes(p.narrow)
	if err != nil {
		return "", ErrorNoUnicodeTranslation
	}
	return string(b), nil
}

// String renders p for diagnostics.
func (p Path) String() string {
	s, _ := p.Text(nil)
	return s
}

// Like returns s re-encoded in the same width as p. Narrow results are
// encoded with cp; a nil cp copies the bytes of s.
func (p Path) Like(s string, cp encoding.Encoding) (Path, error) {
	if p.isWide {
		return WideString(s), nil
	}
	if cp == nil {
		return NarrowPath([]byte(s)), nil
	}
	b, err := cp.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return Path{}, ErrorNoUnicodeTranslation
	}
	return NarrowPath(b), nil
}
