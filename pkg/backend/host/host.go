//go:build linux

// Package host exposes directories of the host filesystem as native drives.
//
// Each configured drive letter maps to a host directory: with "C" mapped to
// "/srv/c", the native path "C:\docs\a.txt" names "/srv/c/docs/a.txt".
// Metadata comes from lstat(2), so a link in the final component is reported
// rather than followed while the kernel follows intermediate ones. Host
// errno values are turned back into native codes.
package host

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/text/encoding"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// Options configures the host backend.
type Options struct {
	// Drives maps drive letters ("C") to host directories.
	Drives map[string]string

	// Cwd is the initial native current directory. Default: the root of the
	// first drive in letter order.
	Cwd string

	// CodePage decodes narrow path text. Nil treats narrow bytes as UTF-8.
	CodePage encoding.Encoding
}

// FS implements native.FS and native.Stat64FS over host directories.
type FS struct {
	drives   map[string]string
	codePage encoding.Encoding

	mu  sync.RWMutex
	cwd string
}

// New creates a host backend. Every drive directory must exist.
func New(opts Options) (*FS, error) {
	if len(opts.Drives) == 0 {
		return nil, fmt.Errorf("at least one drive is required")
	}

	drives := make(map[string]string, len(opts.Drives))
	letters := make([]string, 0, len(opts.Drives))
	for letter, dir := range opts.Drives {
		letter = strings.ToUpper(strings.TrimRight(letter, `:\/`))
		if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
			return nil, fmt.Errorf("invalid drive letter %q", letter)
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("drive %s: %w", letter, err)
		}
		fi, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("drive %s: %w", letter, err)
		}
		if !fi.IsDir() {
			return nil, fmt.Errorf("drive %s: %s is not a directory", letter, abs)
		}
		drives[letter] = abs
		letters = append(letters, letter)
	}
	sort.Strings(letters)

	cwd := opts.Cwd
	if cwd == "" {
		cwd = letters[0] + `:\`
	}

	logger.Debug("host: drives %v", drives)
	return &FS{drives: drives, codePage: opts.CodePage, cwd: cwd}, nil
}

func (f *FS) Stat(ctx context.Context, p native.Path) (native.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return native.FileInfo{}, err
	}
	name, err := p.Text(f.codePage)
	if err != nil {
		return native.FileInfo{}, err
	}
	b := []byte(name)
	if len(b) > 0 && pathconv.IsSeparator(b[len(b)-1]) && !pathconv.IsRoot(b) {
		return native.FileInfo{}, native.ErrorInvalidName
	}
	if _, ok := pathconv.DeviceName(name); ok {
		return native.FileInfo{Attributes: native.FileAttributeDevice}, nil
	}

	hostPath, err := f.hostPath(f.absolute(name))
	if err != nil {
		return native.FileInfo{}, err
	}

	var st unix.Stat_t
	if err := unix.Lstat(hostPath, &st); err != nil {
		return native.FileInfo{}, mapError(err)
	}
	return infoOf(&st), nil
}

func (f *FS) Stat64(ctx context.Context, p native.Path) (native.FileInfo, error) {
	return f.Stat(ctx, p)
}

func (f *FS) ReadLink(ctx context.Context, p native.Path) (native.Path, error) {
	if err := ctx.Err(); err != nil {
		return native.Path{}, err
	}
	name, err := p.Text(f.codePage)
	if err != nil {
		return native.Path{}, err
	}
	hostPath, err := f.hostPath(f.absolute(name))
	if err != nil {
		return native.Path{}, err
	}

	target, err := os.Readlink(hostPath)
	if err != nil {
		if errors.Is(err, unix.EINVAL) {
			return native.Path{}, native.ErrorNotAReparsePoint
		}
		return native.Path{}, mapError(err)
	}

	nativeTarget, ok := f.nativeTarget(target)
	if !ok {
		logger.Debug("host: link %s points outside every drive: %s", hostPath, target)
		return native.Path{}, native.ErrorInvalidReparseData
	}
	return p.Like(nativeTarget, f.codePage)
}

func (f *FS) FullPath(_ context.Context, p native.Path) (native.Path, error) {
	name, err := p.Text(f.codePage)
	if err != nil {
		return native.Path{}, err
	}
	return p.Like(f.absolute(name), f.codePage)
}

func (f *FS) Chdir(ctx context.Context, p native.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := p.Text(f.codePage)
	if err != nil {
		return err
	}
	full := string(pathconv.TrimTrailingSeparator([]byte(f.absolute(name))))
	hostPath, err := f.hostPath(full)
	if err != nil {
		return err
	}

	fi, err := os.Stat(hostPath)
	if err != nil {
		return mapError(err)
	}
	if !fi.IsDir() {
		return native.ErrorDirectory
	}

	f.mu.Lock()
	f.cwd = full
	f.mu.Unlock()
	return nil
}

func (f *FS) absolute(name string) string {
	f.mu.RLock()
	cwd := f.cwd
	f.mu.RUnlock()
	return pathconv.Absolute(cwd, name)
}

// hostPath maps an absolute native path onto the host. The path is already
// clean, so it cannot climb above its drive directory.
func (f *FS) hostPath(full string) (string, error) {
	b := []byte(full)
	if !pathconv.HasDrive(b) {
		return "", native.ErrorPathNotFound
	}
	base, ok := f.drives[strings.ToUpper(full[:1])]
	if !ok {
		return "", native.ErrorPathNotFound
	}

	parts := []string{base}
	for _, c := range strings.Split(full[pathconv.RootLen(b):], `\`) {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return filepath.Join(parts...), nil
}

// nativeTarget converts a host link target into native path text. Relative
// targets keep their shape; absolute ones must fall inside a drive.
func (f *FS) nativeTarget(target string) (string, bool) {
	if !filepath.IsAbs(target) {
		return strings.ReplaceAll(target, "/", `\`), true
	}

	target = filepath.Clean(target)
	for letter, base := range f.drives {
		rel, err := filepath.Rel(base, target)
		if err != nil || rel == ".." || strings.HasPrefix(rel, "../") {
			continue
		}
		if rel == "." {
			rel = ""
		}
		return letter + `:\` + strings.ReplaceAll(rel, "/", `\`), true
	}
	return "", false
}

func infoOf(st *unix.Stat_t) native.FileInfo {
	var attrs native.FileAttr
	switch st.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		attrs = native.FileAttributeDirectory
	case unix.S_IFLNK:
		attrs = native.FileAttributeReparsePoint
	case unix.S_IFCHR, unix.S_IFBLK, unix.S_IFIFO, unix.S_IFSOCK:
		attrs = native.FileAttributeDevice
	default:
		attrs = native.FileAttributeArchive
	}
	if st.Mode&unix.S_IWUSR == 0 {
		attrs |= native.FileAttributeReadonly
	}

	return native.FileInfo{
		Attributes:   attrs,
		Size:         st.Size,
		AccessTime:   timeOf(st.Atim),
		WriteTime:    timeOf(st.Mtim),
		CreationTime: timeOf(st.Ctim),
		VolumeSerial: uint32(st.Dev),
		FileIndex:    uint64(st.Ino),
		Links:        uint32(st.Nlink),
	}
}

func timeOf(ts unix.Timespec) time.Time {
	sec, nsec := ts.Unix()
	return time.Unix(sec, nsec)
}

// hostCodes lists the host errno values with a direct native counterpart.
var hostCodes = map[unix.Errno]native.Code{
	unix.ENOENT:       native.ErrorFileNotFound,
	unix.ENOTDIR:      native.ErrorPathNotFound,
	unix.EACCES:       native.ErrorAccessDenied,
	unix.EPERM:        native.ErrorAccessDenied,
	unix.ELOOP:        native.ErrorCantResolveFilename,
	unix.ENAMETOOLONG: native.ErrorFilenameExcedRange,
	unix.EBUSY:        native.ErrorBusy,
	unix.EEXIST:       native.ErrorAlreadyExists,
	unix.EINVAL:       native.ErrorInvalidParameter,
	unix.EIO:          native.ErrorIODevice,
	unix.ENOMEM:       native.ErrorNotEnoughMemory,
	unix.EMFILE:       native.ErrorTooManyOpenFiles,
}

// mapError turns a host failure into a native code. Errno values without a
// native counterpart travel as pass-through codes carrying the emulated
// errno of the same name.
func mapError(err error) error {
	var e unix.Errno
	if !errors.As(err, &e) {
		return fmt.Errorf("%w: %v", native.ErrorIODevice, err)
	}
	if c, ok := hostCodes[e]; ok {
		return c
	}
	if en, ok := errno.Lookup(unix.ErrnoName(e)); ok {
		return native.FromErrno(int(en))
	}
	logger.Warn("host: unmapped errno %d (%v)", int(e), e)
	return fmt.Errorf("%w: %v", native.ErrorIODevice, err)
}
