package native

import (
	"strings"
	"time"
)

// FileAttr holds FILE_ATTRIBUTE_* bits.
type FileAttr uint32

const (
	FileAttributeReadonly     FileAttr = 0x00000001
	FileAttributeHidden       FileAttr = 0x00000002
	FileAttributeSystem       FileAttr = 0x00000004
	FileAttributeDirectory    FileAttr = 0x00000010
	FileAttributeArchive      FileAttr = 0x00000020
	FileAttributeDevice       FileAttr = 0x00000040
	FileAttributeNormal       FileAttr = 0x00000080
	FileAttributeTemporary    FileAttr = 0x00000100
	FileAttributeSparseFile   FileAttr = 0x00000200
	FileAttributeReparsePoint FileAttr = 0x00000400
	FileAttributeCompressed   FileAttr = 0x00000800
	FileAttributeOffline      FileAttr = 0x00001000
)

func (a FileAttr) IsDir() bool      { return a&FileAttributeDirectory != 0 }
func (a FileAttr) IsReadonly() bool { return a&FileAttributeReadonly != 0 }
func (a FileAttr) IsReparse() bool  { return a&FileAttributeReparsePoint != 0 }
func (a FileAttr) IsDevice() bool   { return a&FileAttributeDevice != 0 }

// FileInfo is what a native metadata call reports about one entry. Sizes and
// times hold the true values; narrowing is the caller's concern.
type FileInfo struct {
	Attributes FileAttr
	Size       int64

	AccessTime   time.Time
	WriteTime    time.Time
	CreationTime time.Time

	// VolumeSerial and FileIndex identify the entry. FileIndex is zero when
	// the backend cannot supply one.
	VolumeSerial uint32
	FileIndex    uint64
	Links        uint32
}

var execExts = []string{".exe", ".com", ".cmd", ".bat"}

// IsExecutableName reports whether name carries an extension the C runtime
// marks executable.
func IsExecutableName(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range execExts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
