package posix

import (
	"hash/fnv"
	"math"
	"strings"
	"time"

	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// Mode bits, with the values of the native C runtime.
const (
	S_IFMT   = 0o170000
	S_IFDIR  = 0o040000
	S_IFCHR  = 0o020000
	S_IFIFO  = 0o010000
	S_IFREG  = 0o100000
	S_IFLNK  = 0o120000
	S_IREAD  = 0o000400
	S_IWRITE = 0o000200
	S_IEXEC  = 0o000100
)

// Stat mirrors struct stat: size and times are bounded to 32 bits.
type Stat struct {
	Dev   uint32
	Ino   uint16
	Mode  uint16
	Nlink int16
	UID   int16
	GID   int16
	Rdev  uint32
	Size  int32
	Atime int32
	Mtime int32
	Ctime int32
}

// Stat64 mirrors struct stat64: size and times are 64 bits.
type Stat64 struct {
	Dev   uint32
	Ino   uint16
	Mode  uint16
	Nlink int16
	UID   int16
	GID   int16
	Rdev  uint32
	Size  int64
	Atime int64
	Mtime int64
	Ctime int64
}

func (s Stat) IsDir() bool     { return s.Mode&S_IFMT == S_IFDIR }
func (s Stat) IsRegular() bool { return s.Mode&S_IFMT == S_IFREG }
func (s Stat) IsLink() bool    { return s.Mode&S_IFMT == S_IFLNK }

func (s Stat64) IsDir() bool     { return s.Mode&S_IFMT == S_IFDIR }
func (s Stat64) IsRegular() bool { return s.Mode&S_IFMT == S_IFREG }
func (s Stat64) IsLink() bool    { return s.Mode&S_IFMT == S_IFLNK }

// Widen converts a narrow record. Saturated values stay at the bound.
func (s Stat) Widen() Stat64 {
	return Stat64{
		Dev:   s.Dev,
		Ino:   s.Ino,
		Mode:  s.Mode,
		Nlink: s.Nlink,
		UID:   s.UID,
		GID:   s.GID,
		Rdev:  s.Rdev,
		Size:  int64(s.Size),
		Atime: int64(s.Atime),
		Mtime: int64(s.Mtime),
		Ctime: int64(s.Ctime),
	}
}

// modeOf derives mode bits the way the C runtime does: from the read-only
// attribute, the directory bit and the file extension. Owner bits are copied
// to group and other.
func modeOf(fi native.FileInfo, name string) uint16 {
	var mode uint16 = S_IREAD
	if !fi.Attributes.IsReadonly() {
		mode |= S_IWRITE
	}

	switch {
	case fi.Attributes.IsReparse():
		mode = S_IFLNK | S_IREAD | S_IWRITE | S_IEXEC
	case fi.Attributes.IsDir():
		mode |= S_IFDIR | S_IEXEC
	case fi.Attributes.IsDevice():
		mode |= S_IFCHR
	default:
		mode |= S_IFREG
		if native.IsExecutableName(name) {
			mode |= S_IEXEC
		}
	}

	perm := mode & 0o700
	return mode | perm>>3 | perm>>6
}

// devOf returns the drive number (A: is 0) or, for paths without a drive,
// the volume serial.
func devOf(fi native.FileInfo, p string) uint32 {
	b := []byte(p)
	if pathconv.HasDrive(b) {
		return uint32(strings.ToUpper(p[:1])[0] - 'A')
	}
	return fi.VolumeSerial
}

// inoOf folds the native file index into 16 bits, falling back to a hash of
// the path when the backend has no index.
func inoOf(fi native.FileInfo, p string) uint16 {
	idx := fi.FileIndex
	if idx == 0 {
		h := fnv.New64a()
		_, _ = h.Write([]byte(strings.ToLower(p)))
		idx = h.Sum64()
	}
	ino := uint16(idx ^ idx>>16 ^ idx>>32 ^ idx>>48)
	if ino == 0 {
		ino = 1
	}
	return ino
}

func nlinkOf(fi native.FileInfo) int16 {
	switch {
	case fi.Links == 0:
		return 1
	case fi.Links > math.MaxInt16:
		return math.MaxInt16
	}
	return int16(fi.Links)
}

func unixTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// saturate bounds v to the int32 range.
func saturate(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}

// pack64 builds a wide record from a native 64-bit metadata call.
func pack64(fi native.FileInfo, p string) Stat64 {
	dev := devOf(fi, p)
	return Stat64{
		Dev:   dev,
		Ino:   inoOf(fi, p),
		Mode:  modeOf(fi, string(pathconv.Base([]byte(p)))),
		Nlink: nlinkOf(fi),
		Rdev:  dev,
		Size:  fi.Size,
		Atime: unixTime(fi.AccessTime),
		Mtime: unixTime(fi.WriteTime),
		Ctime: unixTime(fi.CreationTime),
	}
}

// pack builds a narrow record. Size and times saturate instead of wrapping.
func pack(fi native.FileInfo, p string) Stat {
	w := pack64(fi, p)
	return Stat{
		Dev:   w.Dev,
		Ino:   w.Ino,
		Mode:  w.Mode,
		Nlink: w.Nlink,
		UID:   w.UID,
		GID:   w.GID,
		Rdev:  w.Rdev,
		Size:  saturate(w.Size),
		Atime: saturate(w.Atime),
		Mtime: saturate(w.Mtime),
		Ctime: saturate(w.Ctime),
	}
}
