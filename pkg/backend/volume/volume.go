package volume

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/encoding"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// DefaultMaxHops bounds intermediate link traversal within one lookup.
const DefaultMaxHops = 32

// Options configures a Volume.
type Options struct {
	// Roots lists the drive or share roots the volume serves, e.g. "C:\" or
	// "\\server\share". Default: "C:\".
	Roots []string

	// Cwd is the initial current directory. Default: the first root.
	Cwd string

	// CodePage decodes narrow path text. Nil treats narrow bytes as UTF-8.
	CodePage encoding.Encoding

	// MaxHops bounds intermediate link traversal. Default: DefaultMaxHops.
	MaxHops int
}

// Volume implements native.FS and native.Stat64FS over a Store.
type Volume struct {
	store    Store
	codePage encoding.Encoding
	maxHops  int

	mu  sync.RWMutex
	cwd string
}

// New creates a Volume, creating root directory entries that do not exist.
func New(ctx context.Context, store Store, opts Options) (*Volume, error) {
	if len(opts.Roots) == 0 {
		opts.Roots = []string{`C:\`}
	}
	if opts.MaxHops <= 0 {
		opts.MaxHops = DefaultMaxHops
	}

	v := &Volume{
		store:    store,
		codePage: opts.CodePage,
		maxHops:  opts.MaxHops,
	}

	now := time.Now().UnixNano()
	for _, name := range opts.Roots {
		root := rootOf(pathconv.Clean(name))
		if root == "" {
			return nil, fmt.Errorf("volume: %q is not a root", name)
		}
		key := keyOf(root)
		if _, err := store.GetEntry(ctx, key); err == nil {
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("volume: failed to read root %s: %w", root, err)
		}
		e := &Entry{Name: root, Kind: KindDir, CreationTime: now, WriteTime: now, AccessTime: now, Links: 1}
		if err := store.PutEntry(ctx, key, e); err != nil {
			return nil, fmt.Errorf("volume: failed to create root %s: %w", root, err)
		}
	}

	v.cwd = opts.Cwd
	if v.cwd == "" {
		v.cwd = rootOf(pathconv.Clean(opts.Roots[0]))
	}
	return v, nil
}

// Cwd returns the current directory.
func (v *Volume) Cwd() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cwd
}

// Count returns the number of entries on the volume, roots included. It
// fails with errors.ErrUnsupported when the store is not a Counter.
func (v *Volume) Count(ctx context.Context) (int, error) {
	c, ok := v.store.(Counter)
	if !ok {
		return 0, errors.ErrUnsupported
	}
	return c.Count(ctx)
}

// Stat implements native.FS.
func (v *Volume) Stat(ctx context.Context, p native.Path) (native.FileInfo, error) {
	name, err := v.text(p)
	if err != nil {
		return native.FileInfo{}, err
	}
	if hasTrailingSeparator(name) {
		return native.FileInfo{}, native.ErrorInvalidName
	}
	if _, ok := pathconv.DeviceName(name); ok {
		return native.FileInfo{Attributes: native.FileAttributeDevice}, nil
	}

	e, key, err := v.walk(ctx, v.absolute(name), false)
	if err != nil {
		return native.FileInfo{}, err
	}
	return v.info(ctx, key, e)
}

// Stat64 implements native.Stat64FS. Entries already carry 64-bit values.
func (v *Volume) Stat64(ctx context.Context, p native.Path) (native.FileInfo, error) {
	return v.Stat(ctx, p)
}

// ReadLink implements native.FS.
func (v *Volume) ReadLink(ctx context.Context, p native.Path) (native.Path, error) {
	name, err := v.text(p)
	if err != nil {
		return native.Path{}, err
	}
	name = string(pathconv.TrimTrailingSeparator([]byte(name)))
	if _, ok := pathconv.DeviceName(name); ok {
		return native.Path{}, native.ErrorNotAReparsePoint
	}

	e, _, err := v.walk(ctx, v.absolute(name), false)
	if err != nil {
		return native.Path{}, err
	}
	if e.Kind != KindLink {
		return native.Path{}, native.ErrorNotAReparsePoint
	}
	return p.Like(e.Target, v.codePage)
}

// FullPath implements native.FS. It is purely lexical, like the native call.
func (v *Volume) FullPath(_ context.Context, p native.Path) (native.Path, error) {
	name, err := v.text(p)
	if err != nil {
		return native.Path{}, err
	}
	return p.Like(v.absolute(name), v.codePage)
}

// Chdir implements native.FS.
func (v *Volume) Chdir(ctx context.Context, p native.Path) error {
	name, err := v.text(p)
	if err != nil {
		return err
	}
	full := v.absolute(name)

	e, _, err := v.walk(ctx, full, true)
	if err != nil {
		return err
	}
	if e.Kind != KindDir {
		return native.ErrorDirectory
	}

	v.mu.Lock()
	v.cwd = string(pathconv.TrimTrailingSeparator([]byte(full)))
	v.mu.Unlock()
	logger.Debug("volume: cwd %s", full)
	return nil
}

func (v *Volume) text(p native.Path) (string, error) {
	return p.Text(v.codePage)
}

func (v *Volume) absolute(name string) string {
	return pathconv.Absolute(v.Cwd(), name)
}

func (v *Volume) info(ctx context.Context, key string, e *Entry) (native.FileInfo, error) {
	serial, err := v.store.Serial(ctx)
	if err != nil {
		return native.FileInfo{}, storeError(err)
	}

	attrs := native.FileAttr(e.Attributes)
	switch e.Kind {
	case KindDir:
		attrs |= native.FileAttributeDirectory
	case KindLink:
		attrs |= native.FileAttributeReparsePoint
	case KindDevice:
		attrs |= native.FileAttributeDevice
	default:
		if attrs == 0 {
			attrs = native.FileAttributeArchive
		}
	}

	return native.FileInfo{
		Attributes:   attrs,
		Size:         e.Size,
		AccessTime:   fromNanos(e.AccessTime),
		WriteTime:    fromNanos(e.WriteTime),
		CreationTime: fromNanos(e.CreationTime),
		VolumeSerial: serial,
		FileIndex:    indexOf(key),
		Links:        e.Links,
	}, nil
}

func fromNanos(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}

// indexOf derives a stable file index from the entry key.
func indexOf(key string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return h.Sum64()
}

func keyOf(p string) string {
	return strings.ToLower(p)
}

func hasTrailingSeparator(p string) bool {
	b := []byte(p)
	return len(b) > 0 && pathconv.IsSeparator(b[len(b)-1]) && !pathconv.IsRoot(b)
}

// rootOf returns the root of p with a trailing separator, or "" when p is
// relative or drive-relative.
func rootOf(p string) string {
	n := pathconv.RootLen([]byte(p))
	root := p[:n]
	if n == 0 || (pathconv.HasDrive([]byte(root)) && n == 2) {
		return ""
	}
	if !strings.HasSuffix(root, `\`) {
		root += `\`
	}
	return root
}

// storeError wraps a store failure as a native I/O error.
func storeError(err error) error {
	return fmt.Errorf("%w: %v", native.ErrorIODevice, err)
}
