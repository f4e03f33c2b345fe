package native

import "context"

// FS is the native filesystem substrate the emulator runs on.
//
// All methods return a Code (possibly wrapped) on failure. Paths passed in
// are only valid for the duration of the call.
type FS interface {
	// Stat returns metadata for p without following a link in the final
	// component. Intermediate links are followed.
	Stat(ctx context.Context, p Path) (FileInfo, error)

	// ReadLink returns the target stored in the link at p, in the same width
	// as p. It returns ErrorNotAReparsePoint when p is not a link.
	ReadLink(ctx context.Context, p Path) (Path, error)

	// FullPath resolves p against the current directory into an absolute
	// native path in the same width.
	FullPath(ctx context.Context, p Path) (Path, error)

	// Chdir changes the current directory.
	Chdir(ctx context.Context, p Path) error
}

// Stat64FS is implemented by backends with a native 64-bit metadata call.
type Stat64FS interface {
	FS
	Stat64(ctx context.Context, p Path) (FileInfo, error)
}

// WithoutStat64 hides the Stat64 capability of fs, modelling a host that
// lacks the 64-bit metadata call.
func WithoutStat64(fs FS) FS {
	return narrowOnly{fs}
}

type narrowOnly struct {
	fs FS
}

func (n narrowOnly) Stat(ctx context.Context, p Path) (FileInfo, error) {
	return n.fs.Stat(ctx, p)
}

func (n narrowOnly) ReadLink(ctx context.Context, p Path) (Path, error) {
	return n.fs.ReadLink(ctx, p)
}

func (n narrowOnly) FullPath(ctx context.Context, p Path) (Path, error) {
	return n.fs.FullPath(ctx, p)
}

func (n narrowOnly) Chdir(ctx context.Context, p Path) error {
	return n.fs.Chdir(ctx, p)
}
