//go:build linux

package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
)

func newHost(t *testing.T) (*FS, string) {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "a.txt"), []byte("hello"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ro.txt"), nil, 0o444))
	require.NoError(t, os.Symlink("a.txt", filepath.Join(dir, "docs", "rel")))
	require.NoError(t, os.Symlink(filepath.Join(dir, "docs"), filepath.Join(dir, "abs")))
	require.NoError(t, os.Symlink("/", filepath.Join(dir, "escape")))

	fs, err := New(Options{Drives: map[string]string{"c": dir}})
	require.NoError(t, err)
	return fs, dir
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{Drives: map[string]string{"CC": t.TempDir()}})
	assert.Error(t, err)

	_, err = New(Options{Drives: map[string]string{"C": filepath.Join(t.TempDir(), "missing")}})
	assert.Error(t, err)
}

func TestStat(t *testing.T) {
	fs, _ := newHost(t)
	ctx := context.Background()

	fi, err := fs.Stat(ctx, native.WideString(`C:\docs\a.txt`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), fi.Size)
	assert.NotZero(t, fi.FileIndex)
	assert.Equal(t, uint32(1), fi.Links)

	fi, err = fs.Stat(ctx, native.WideString(`c:/docs`))
	require.NoError(t, err)
	assert.True(t, fi.Attributes.IsDir())

	fi, err = fs.Stat(ctx, native.WideString(`C:\ro.txt`))
	require.NoError(t, err)
	assert.True(t, fi.Attributes.IsReadonly())

	fi, err = fs.Stat(ctx, native.WideString(`C:\docs\rel`))
	require.NoError(t, err)
	assert.True(t, fi.Attributes.IsReparse())

	// Intermediate links are followed by the host.
	fi, err = fs.Stat(ctx, native.WideString(`C:\abs\a.txt`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), fi.Size)
}

func TestStat_Errors(t *testing.T) {
	fs, _ := newHost(t)
	ctx := context.Background()

	_, err := fs.Stat(ctx, native.WideString(`C:\nope`))
	assert.ErrorIs(t, err, native.ErrorFileNotFound)

	_, err = fs.Stat(ctx, native.WideString(`C:\docs\a.txt\x`))
	assert.ErrorIs(t, err, native.ErrorPathNotFound)

	_, err = fs.Stat(ctx, native.WideString(`C:\docs\`))
	assert.ErrorIs(t, err, native.ErrorInvalidName)

	_, err = fs.Stat(ctx, native.WideString(`Z:\x`))
	assert.ErrorIs(t, err, native.ErrorPathNotFound)
}

func TestReadLink(t *testing.T) {
	fs, _ := newHost(t)
	ctx := context.Background()

	target, err := fs.ReadLink(ctx, native.WideString(`C:\docs\rel`))
	require.NoError(t, err)
	assert.Equal(t, "a.txt", target.String())

	target, err = fs.ReadLink(ctx, native.NarrowPath([]byte(`C:\abs`)))
	require.NoError(t, err)
	assert.Equal(t, []byte(`C:\docs`), target.Narrow())

	_, err = fs.ReadLink(ctx, native.WideString(`C:\docs\a.txt`))
	assert.ErrorIs(t, err, native.ErrorNotAReparsePoint)

	_, err = fs.ReadLink(ctx, native.WideString(`C:\escape`))
	assert.ErrorIs(t, err, native.ErrorInvalidReparseData)
}

func TestChdir(t *testing.T) {
	fs, _ := newHost(t)
	ctx := context.Background()

	require.NoError(t, fs.Chdir(ctx, native.WideString(`C:\abs`)))
	fi, err := fs.Stat(ctx, native.WideString(`a.txt`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), fi.Size)

	p, err := fs.FullPath(ctx, native.WideString(`sub`))
	require.NoError(t, err)
	assert.Equal(t, `C:\abs\sub`, p.String())

	assert.ErrorIs(t, fs.Chdir(ctx, native.WideString(`C:\ro.txt`)), native.ErrorDirectory)
}

func TestMapError(t *testing.T) {
	assert.Equal(t, native.ErrorFileNotFound, mapError(unix.ENOENT))
	assert.Equal(t, native.ErrorCantResolveFilename, mapError(&os.PathError{Op: "lstat", Path: "/x", Err: unix.ELOOP}))

	// No direct counterpart: the emulated errno travels as a pass-through.
	got := mapError(unix.EROFS)
	code, ok := got.(native.Code)
	require.True(t, ok)
	e, ok := code.Errno()
	require.True(t, ok)
	assert.Equal(t, int(errno.EROFS), e)
}
