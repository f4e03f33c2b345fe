package pathconv

import "strings"

var reservedDevices = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// DeviceName returns the reserved device name p refers to ("NUL", "COM1"...)
// and true. Like the native layer, the final component decides regardless of
// directory or extension.
func DeviceName(p string) (string, bool) {
	if strings.HasPrefix(p, `\\.\`) {
		p = p[4:]
	}
	base := string(Base([]byte(p)))
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	base = strings.ToUpper(strings.TrimRight(base, " "))
	if reservedDevices[base] {
		return base, true
	}
	return "", false
}

// Clean normalises a native path lexically, the way the full-path call does:
// separators become backslashes, repeated separators collapse, "." and ".."
// are resolved without climbing above the root, and trailing dots and spaces
// are dropped from each component. A trailing separator is kept.
func Clean(p string) string {
	if p == "" {
		return p
	}
	p = strings.ReplaceAll(p, "/", `\`)
	root := p[:RootLen([]byte(p))]
	rest := p[len(root):]
	trailing := strings.HasSuffix(rest, `\`)

	var parts []string
	for _, elem := range strings.Split(rest, `\`) {
		switch elem {
		case "", ".":
			continue
		case "..":
			if len(parts) > 0 && parts[len(parts)-1] != ".." {
				parts = parts[:len(parts)-1]
			} else if root == "" {
				parts = append(parts, elem)
			}
			continue
		}
		elem = strings.TrimRight(elem, ". ")
		if elem == "" {
			continue
		}
		parts = append(parts, elem)
	}

	out := root + strings.Join(parts, `\`)
	if trailing && len(parts) > 0 {
		out += `\`
	}
	if out == "" {
		return "."
	}
	return out
}

// Absolute resolves p against the absolute directory cwd and cleans the
// result. Drive-relative paths on another drive resolve against that drive's
// root. Reserved device names resolve to the device namespace.
func Absolute(cwd, p string) string {
	if name, ok := DeviceName(p); ok {
		return `\\.\` + name
	}

	b := []byte(p)
	switch {
	case IsUNC(b):
		return Clean(p)
	case HasDrive(b) && IsAbs(b):
		return Clean(p)
	case HasDrive(b):
		if HasDrive([]byte(cwd)) && strings.EqualFold(cwd[:2], p[:2]) {
			return Clean(cwd + `\` + p[2:])
		}
		return Clean(p[:2] + `\` + p[2:])
	case IsAbs(b):
		return Clean(cwd[:RootLen([]byte(cwd))] + p)
	}
	return Clean(cwd + `\` + p)
}
