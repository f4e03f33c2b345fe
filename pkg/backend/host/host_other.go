//go:build !linux

package host

import (
	"context"

	"golang.org/x/text/encoding"

	"github.com/marmos91/posixshim/pkg/native"
)

// Options configures the host backend.
type Options struct {
	Drives   map[string]string
	Cwd      string
	CodePage encoding.Encoding
}

// FS is unavailable on this platform.
type FS struct{}

func New(Options) (*FS, error) { return nil, ErrUnsupported }

func (*FS) Stat(context.Context, native.Path) (native.FileInfo, error) {
	return native.FileInfo{}, native.ErrorNotSupported
}

func (*FS) Stat64(context.Context, native.Path) (native.FileInfo, error) {
	return native.FileInfo{}, native.ErrorNotSupported
}

func (*FS) ReadLink(context.Context, native.Path) (native.Path, error) {
	return native.Path{}, native.ErrorNotSupported
}

func (*FS) FullPath(context.Context, native.Path) (native.Path, error) {
	return native.Path{}, native.ErrorNotSupported
}

func (*FS) Chdir(context.Context, native.Path) error {
	return native.ErrorNotSupported
}
