// Package pathconv converts POSIX path text into native path text.
//
// The three entry points write into a caller-supplied buffer and return the
// number of units written. They never allocate or retain the buffer. Input is
// treated as NUL-terminated: anything after the first zero unit is ignored.
package pathconv

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/marmos91/posixshim/pkg/native"
)

// MaxPath is the default buffer capacity in native units.
const MaxPath = 260

// Unit is a native character unit: a code-page byte or a UTF-16 unit.
type Unit interface {
	~byte | ~uint16
}

// Narrow converts legacy single-byte POSIX text into a narrow native path.
func Narrow(dst, src []byte) (int, native.Code) {
	return convert(dst, src)
}

// Wide converts wide POSIX text into a wide native path.
func Wide(dst, src []uint16) (int, native.Code) {
	return convert(dst, src)
}

// WideFromUTF8 transcodes UTF-8 POSIX text into a wide native path.
func WideFromUTF8(dst []uint16, src string) (int, native.Code) {
	n := 0
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size <= 1 {
			return 0, native.ErrorNoUnicodeTranslation
		}
		if r == 0 {
			break
		}
		i += size

		if r < 0x10000 {
			if n >= len(dst) {
				return 0, native.ErrorBufferOverflow
			}
			dst[n] = uint16(r)
			n++
			continue
		}
		if n+2 > len(dst) {
			return 0, native.ErrorBufferOverflow
		}
		hi, lo := utf16.EncodeRune(r)
		dst[n], dst[n+1] = uint16(hi), uint16(lo)
		n += 2
	}
	rewrite(dst[:n])
	return n, native.ErrorSuccess
}

func convert[U Unit](dst, src []U) (int, native.Code) {
	n := terminated(src)
	if n > len(dst) {
		return 0, native.ErrorBufferOverflow
	}
	copy(dst, src[:n])
	rewrite(dst[:n])
	return n, native.ErrorSuccess
}

func terminated[U Unit](src []U) int {
	for i, u := range src {
		if u == 0 {
			return i
		}
	}
	return len(src)
}

// rewrite replaces every POSIX separator with the native one in place.
// Drive and UNC prefixes need no special handling: "C:" has no separator and
// "//server/share" maps to "\\server\share" unit for unit.
func rewrite[U Unit](p []U) {
	for i, u := range p {
		if u == '/' {
			p[i] = native.Separator
		}
	}
}
