package pathconv

// IsSeparator reports whether u separates path components. The native layer
// accepts both forms.
func IsSeparator[U Unit](u U) bool {
	return u == '\\' || u == '/'
}

func isLetter[U Unit](u U) bool {
	return ('a' <= u && u <= 'z') || ('A' <= u && u <= 'Z')
}

// HasDrive reports whether p starts with a drive designator such as "C:".
func HasDrive[U Unit](p []U) bool {
	return len(p) >= 2 && isLetter(p[0]) && p[1] == ':'
}

// IsUNC reports whether p starts with two separators.
func IsUNC[U Unit](p []U) bool {
	return len(p) >= 2 && IsSeparator(p[0]) && IsSeparator(p[1])
}

// RootLen returns the length of the root prefix of p: "\", "C:", "C:\" or
// "\\server\share\". It is zero for a relative path.
func RootLen[U Unit](p []U) int {
	switch {
	case IsUNC(p):
		i := 2
		for seps := 0; i < len(p); i++ {
			if IsSeparator(p[i]) {
				seps++
				if seps == 2 {
					return i + 1
				}
			}
		}
		return len(p)
	case HasDrive(p):
		if len(p) > 2 && IsSeparator(p[2]) {
			return 3
		}
		return 2
	case len(p) > 0 && IsSeparator(p[0]):
		return 1
	}
	return 0
}

// IsRoot reports whether p consists of a root prefix only.
func IsRoot[U Unit](p []U) bool {
	n := RootLen(p)
	return n > 0 && n == len(p)
}

// IsAbs reports whether p is fully qualified or rooted on the current drive.
func IsAbs[U Unit](p []U) bool {
	if HasDrive(p) {
		return len(p) > 2 && IsSeparator(p[2])
	}
	return len(p) > 0 && IsSeparator(p[0])
}

// TrimTrailingSeparator removes exactly one trailing separator unless p is a
// root. The result aliases p.
func TrimTrailingSeparator[U Unit](p []U) []U {
	if len(p) == 0 || !IsSeparator(p[len(p)-1]) || IsRoot(p) {
		return p
	}
	return p[:len(p)-1]
}

// Dir returns everything before the final component of p, without the
// separator. The root prefix is always kept.
func Dir[U Unit](p []U) []U {
	root := RootLen(p)
	i := len(p) - 1
	for i >= root && !IsSeparator(p[i]) {
		i--
	}
	if i < root {
		return p[:root]
	}
	return p[:i]
}

// Base returns the final component of p.
func Base[U Unit](p []U) []U {
	p = TrimTrailingSeparator(p)
	root := RootLen(p)
	i := len(p) - 1
	for i >= root && !IsSeparator(p[i]) {
		i--
	}
	return p[i+1:]
}

// Join appends name to dir. A name that is absolute or carries a drive is
// returned as is. The result never aliases its inputs.
func Join[U Unit](dir, name []U) []U {
	if IsAbs(name) || HasDrive(name) || len(dir) == 0 {
		return append([]U(nil), name...)
	}
	out := make([]U, 0, len(dir)+1+len(name))
	out = append(out, dir...)
	if !IsSeparator(dir[len(dir)-1]) && !(len(dir) == 2 && HasDrive(dir)) {
		out = append(out, '\\')
	}
	return append(out, name...)
}
