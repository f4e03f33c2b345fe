// Package volume emulates a native volume on top of a key-value Store.
//
// It behaves like the native metadata calls the emulator targets: names are
// case-insensitive, paths use backslashes and drive or UNC roots, links are
// reparse entries that the metadata call reports without following, and a
// trailing separator on a non-root path is rejected with ERROR_INVALID_NAME.
// Intermediate links are always followed.
package volume

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store for a missing key.
var ErrNotFound = errors.New("volume: entry not found")

// Kind is the type of an entry.
type Kind uint32

const (
	KindFile Kind = iota
	KindDir
	KindLink
	KindDevice
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDir:
		return "dir"
	case KindLink:
		return "link"
	case KindDevice:
		return "device"
	default:
		return "unknown"
	}
}

// Entry is one stored name. Times are Unix nanoseconds.
//
// The field set is restricted to types the XDR codec of the badger store
// can encode.
type Entry struct {
	Name         string
	Kind         Kind
	Attributes   uint32
	Size         int64
	AccessTime   int64
	WriteTime    int64
	CreationTime int64
	Links        uint32
	Target       string
}

// Store persists entries under normalized keys: absolute native paths in
// lower case, with roots ending in a separator ("c:\", "c:\dir\file").
//
// Implementations must be safe for concurrent use.
type Store interface {
	// GetEntry returns the entry at key, or ErrNotFound.
	GetEntry(ctx context.Context, key string) (*Entry, error)

	// PutEntry creates or replaces the entry at key.
	PutEntry(ctx context.Context, key string, e *Entry) error

	// DeleteEntry removes the entry at key. Missing keys are not an error.
	DeleteEntry(ctx context.Context, key string) error

	// Serial returns the volume serial number.
	Serial(ctx context.Context) (uint32, error)
}

// Counter is implemented by stores that can report how many entries they
// hold.
type Counter interface {
	Count(ctx context.Context) (int, error)
}
