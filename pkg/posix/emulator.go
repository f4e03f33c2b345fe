// Package posix emulates POSIX filesystem calls on a native backend.
//
// Every call converts its POSIX path into native text, performs the native
// operation and, on failure, translates the native error into the calling
// Caller's errno. Native error codes never leave this package: failures are
// reported as *PathError carrying an errno.Errno.
package posix

import (
	"golang.org/x/text/encoding"

	"github.com/marmos91/posixshim/pkg/metrics"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
	"github.com/marmos91/posixshim/pkg/reparse"
)

// Options configures an Emulator. The zero value selects legacy narrow
// paths, MAX_PATH buffers, the default link limit and the default mounts.
type Options struct {
	// Mode selects how path text is interpreted. Fixed for the lifetime of
	// the Emulator.
	Mode native.Mode

	// MaxPath is the conversion buffer capacity in native units.
	MaxPath int

	// MaxLinkHops bounds link dereferencing. 1 follows a single level.
	MaxLinkHops int

	// Mounts rewrites POSIX prefixes before conversion. Nil selects
	// pathconv.DefaultMounts; use an empty non-nil slice for none.
	Mounts pathconv.Mounts

	// CodePage decodes narrow native results handed back as strings, such
	// as Realpath in legacy mode. Nil passes bytes through.
	CodePage encoding.Encoding

	Metrics metrics.EmulatorMetrics
}

// Emulator binds a native backend to an encoding mode. It is immutable and
// safe for concurrent use; per-caller error state lives in Caller.
type Emulator struct {
	fs       native.FS
	mode     native.Mode
	maxPath  int
	mounts   pathconv.Mounts
	codePage encoding.Encoding
	resolver *reparse.Resolver
	metrics  metrics.EmulatorMetrics
}

// New creates an Emulator over fs.
func New(fs native.FS, opts Options) *Emulator {
	if opts.MaxPath <= 0 {
		opts.MaxPath = pathconv.MaxPath
	}
	if opts.Mounts == nil {
		opts.Mounts = pathconv.DefaultMounts()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.NoopEmulatorMetrics()
	}

	return &Emulator{
		fs:       fs,
		mode:     opts.Mode,
		maxPath:  opts.MaxPath,
		mounts:   opts.Mounts.Sorted(),
		codePage: opts.CodePage,
		resolver: reparse.New(fs, opts.MaxLinkHops, opts.Metrics),
		metrics:  opts.Metrics,
	}
}

// Mode returns the encoding mode.
func (e *Emulator) Mode() native.Mode { return e.mode }

// FS returns the native backend.
func (e *Emulator) FS() native.FS { return e.fs }

// NewCaller returns a Caller with its own error state. Each goroutine issuing
// calls needs its own Caller.
func (e *Emulator) NewCaller() *Caller {
	return newCaller(e)
}

// convert applies the mounts and converts path according to the mode.
func (e *Emulator) convert(path string) (native.Path, native.Code) {
	path = e.mounts.Apply(path)

	if e.mode == native.ModeUTF8 {
		buf := make([]uint16, e.maxPath)
		n, code := pathconv.WideFromUTF8(buf, path)
		if code != native.ErrorSuccess {
			return native.Path{}, code
		}
		return native.WidePath(buf[:n]), native.ErrorSuccess
	}

	buf := make([]byte, e.maxPath)
	n, code := pathconv.Narrow(buf, []byte(path))
	if code != native.ErrorSuccess {
		return native.Path{}, code
	}
	return native.NarrowPath(buf[:n]), native.ErrorSuccess
}

func trimTrailing(p native.Path) native.Path {
	if p.IsWide() {
		return native.WidePath(pathconv.TrimTrailingSeparator(p.Wide()))
	}
	return native.NarrowPath(pathconv.TrimTrailingSeparator(p.Narrow()))
}
