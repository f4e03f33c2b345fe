package pathconv

import (
	"sort"
	"strings"
)

// Mount maps a POSIX path prefix onto a native one, e.g. "/tmp" onto
// "C:/Temp". Targets may use either separator; conversion rewrites them.
type Mount struct {
	Prefix string `mapstructure:"prefix" yaml:"prefix"`
	Target string `mapstructure:"target" yaml:"target"`
}

// Mounts is a prefix table. The longest matching prefix wins.
type Mounts []Mount

// DefaultMounts maps the POSIX null device onto the native one.
func DefaultMounts() Mounts {
	return Mounts{{Prefix: "/dev/null", Target: "NUL"}}
}

// Sorted returns a copy ordered longest prefix first.
func (m Mounts) Sorted() Mounts {
	out := append(Mounts(nil), m...)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].Prefix) > len(out[j].Prefix)
	})
	return out
}

// Apply rewrites p if it starts with a mount prefix at a component boundary.
// m must be sorted with Sorted.
func (m Mounts) Apply(p string) string {
	for _, mt := range m {
		prefix := strings.TrimSuffix(mt.Prefix, "/")
		if prefix == "" {
			continue
		}
		if p == prefix {
			return mt.Target
		}
		if strings.HasPrefix(p, prefix) && p[len(prefix)] == '/' {
			return strings.TrimSuffix(mt.Target, "/") + p[len(prefix):]
		}
	}
	return p
}
