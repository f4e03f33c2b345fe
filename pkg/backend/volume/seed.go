package volume

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// The methods below populate the volume. They take native path text
// relative to the current directory and fail with native codes.

// Mkdir creates a directory. The parent must exist.
func (v *Volume) Mkdir(ctx context.Context, path string) error {
	now := time.Now().UnixNano()
	return v.create(ctx, path, &Entry{
		Kind:         KindDir,
		CreationTime: now,
		WriteTime:    now,
		AccessTime:   now,
		Links:        1,
	})
}

// MkdirAll creates a directory and any missing parents. Existing
// directories are not an error.
func (v *Volume) MkdirAll(ctx context.Context, path string) error {
	full := string(pathconv.TrimTrailingSeparator([]byte(v.absolute(path))))
	root := pathconv.RootLen([]byte(full))

	for i := root; i <= len(full); i++ {
		if i < len(full) && full[i] != '\\' {
			continue
		}
		if i == root {
			continue
		}
		prefix := full[:i]
		e, _, err := v.walk(ctx, prefix, true)
		switch {
		case err == nil && e.Kind == KindDir:
			continue
		case err == nil:
			return native.ErrorAlreadyExists
		case errors.Is(err, native.ErrorFileNotFound):
			if err := v.Mkdir(ctx, prefix); err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}

// CreateFile creates or replaces a regular file with the given size and
// write time.
func (v *Volume) CreateFile(ctx context.Context, path string, size int64, mtime time.Time) error {
	ns := mtime.UnixNano()
	if mtime.IsZero() {
		ns = time.Now().UnixNano()
	}
	return v.put(ctx, path, &Entry{
		Kind:         KindFile,
		Attributes:   uint32(native.FileAttributeArchive),
		Size:         size,
		CreationTime: ns,
		WriteTime:    ns,
		AccessTime:   ns,
		Links:        1,
	}, true)
}

// Symlink creates a link at path whose target is stored verbatim.
func (v *Volume) Symlink(ctx context.Context, target, path string) error {
	if target == "" {
		return native.ErrorInvalidParameter
	}
	now := time.Now().UnixNano()
	return v.create(ctx, path, &Entry{
		Kind:         KindLink,
		Size:         int64(len(target)),
		CreationTime: now,
		WriteTime:    now,
		AccessTime:   now,
		Links:        1,
		Target:       target,
	})
}

// SetAttributes replaces the FILE_ATTRIBUTE_* bits stored for path. The
// type bits are derived from the entry kind and are ignored here.
func (v *Volume) SetAttributes(ctx context.Context, path string, attrs native.FileAttr) error {
	e, key, err := v.walk(ctx, v.absolute(path), false)
	if err != nil {
		return err
	}
	updated := *e
	updated.Attributes = uint32(attrs &^ (native.FileAttributeDirectory | native.FileAttributeReparsePoint | native.FileAttributeDevice))
	if err := v.store.PutEntry(ctx, key, &updated); err != nil {
		return storeError(err)
	}
	return nil
}

// Remove deletes the entry at path. A link is removed, not its target.
// Entries below a removed directory stay in the store but become
// unreachable.
func (v *Volume) Remove(ctx context.Context, path string) error {
	full := v.absolute(path)
	if pathconv.IsRoot([]byte(full)) {
		return native.ErrorAccessDenied
	}
	_, key, err := v.walk(ctx, full, false)
	if err != nil {
		return err
	}
	if err := v.store.DeleteEntry(ctx, key); err != nil {
		return storeError(err)
	}
	return nil
}

func (v *Volume) create(ctx context.Context, path string, e *Entry) error {
	return v.put(ctx, path, e, false)
}

// put stores e under path inside its resolved parent directory. Unless
// replace is set, an existing entry fails with ERROR_ALREADY_EXISTS.
func (v *Volume) put(ctx context.Context, path string, e *Entry, replace bool) error {
	full := string(pathconv.TrimTrailingSeparator([]byte(v.absolute(path))))
	if pathconv.IsRoot([]byte(full)) {
		return native.ErrorAlreadyExists
	}
	if _, ok := pathconv.DeviceName(full); ok {
		return native.ErrorAccessDenied
	}

	name := string(pathconv.Base([]byte(full)))
	parent, parentKey, err := v.walk(ctx, string(pathconv.Dir([]byte(full))), true)
	if err != nil {
		if errors.Is(err, native.ErrorFileNotFound) {
			return native.ErrorPathNotFound
		}
		return err
	}
	if parent.Kind != KindDir {
		return native.ErrorPathNotFound
	}

	key := parentKey
	if !strings.HasSuffix(key, `\`) {
		key += `\`
	}
	key += keyOf(name)

	existing, err := v.store.GetEntry(ctx, key)
	switch {
	case err == nil && !replace:
		return native.ErrorAlreadyExists
	case err == nil && existing.Kind == KindDir:
		return native.ErrorAccessDenied
	case err != nil && !errors.Is(err, ErrNotFound):
		return storeError(err)
	}

	e.Name = name
	if err := v.store.PutEntry(ctx, key, e); err != nil {
		return storeError(err)
	}
	return nil
}
