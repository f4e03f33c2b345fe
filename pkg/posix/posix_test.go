package posix

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/posixshim/pkg/backend/volume"
	"github.com/marmos91/posixshim/pkg/backend/volume/memory"
	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// newVolume builds the tree used by most tests:
//
//	C:\Users\ann\notes.txt   42 bytes
//	C:\Users\ann\big.iso     8 GiB, written after 2038
//	C:\Users\ann\tool.exe
//	C:\Users\ann\ro.txt      read-only
//	C:\home -> Users\ann
//	C:\a\b\                  directory
//	C:\dangling -> C:\missing
//	C:\loop1 <-> C:\loop2
func newVolume(t *testing.T) *volume.Volume {
	t.Helper()
	ctx := context.Background()

	v, err := volume.New(ctx, memory.NewWithSerial(7), volume.Options{})
	require.NoError(t, err)

	require.NoError(t, v.MkdirAll(ctx, `C:\Users\ann`))
	require.NoError(t, v.MkdirAll(ctx, `C:\a\b`))
	require.NoError(t, v.CreateFile(ctx, `C:\Users\ann\notes.txt`, 42, time.Unix(1700000000, 0)))
	require.NoError(t, v.CreateFile(ctx, `C:\Users\ann\big.iso`, 8<<30, time.Unix(1<<33, 0)))
	require.NoError(t, v.CreateFile(ctx, `C:\Users\ann\tool.exe`, 1, time.Time{}))
	require.NoError(t, v.CreateFile(ctx, `C:\Users\ann\ro.txt`, 1, time.Time{}))
	require.NoError(t, v.SetAttributes(ctx, `C:\Users\ann\ro.txt`, native.FileAttributeReadonly))
	require.NoError(t, v.Symlink(ctx, `Users\ann`, `C:\home`))
	require.NoError(t, v.Symlink(ctx, `C:\missing`, `C:\dangling`))
	require.NoError(t, v.Symlink(ctx, `C:\loop2`, `C:\loop1`))
	require.NoError(t, v.Symlink(ctx, `C:\loop1`, `C:\loop2`))
	return v
}

func testCaller(t *testing.T, fs native.FS, opts Options) *Caller {
	t.Helper()
	return New(fs, opts).NewCaller()
}

func assertErrno(t *testing.T, c *Caller, want errno.Errno, err error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, want)
	assert.Equal(t, want, c.Errno())

	var pe *PathError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, want, pe.Err)
}

// ============================================================================
// Path conversion
// ============================================================================

func TestNativePath_UTF8(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{Mode: native.ModeUTF8})

	p, err := c.NativePath(context.Background(), "/tmp/x", false)
	require.NoError(t, err)
	require.True(t, p.IsWide())
	assert.Equal(t, utf16.Encode([]rune(`\tmp\x`)), p.Wide())
}

func TestNativePath_Legacy(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})

	p, err := c.NativePath(context.Background(), "C:/Users/ann/", false)
	require.NoError(t, err)
	assert.False(t, p.IsWide())
	assert.Equal(t, []byte(`C:\Users\ann\`), p.Narrow())
}

func TestNativePath_Deref(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{Mode: native.ModeUTF8})

	p, err := c.NativePath(context.Background(), "/home", true)
	require.NoError(t, err)
	assert.Equal(t, `\Users\ann`, p.String())
}

func TestNativePath_Mounts(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	p, err := c.NativePath(ctx, "/dev/null", false)
	require.NoError(t, err)
	assert.Equal(t, "NUL", p.String())

	c = testCaller(t, newVolume(t), Options{
		Mounts: pathconv.Mounts{{Prefix: "/home", Target: "C:/Users"}},
	})
	p, err = c.NativePath(ctx, "/home/ann", false)
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\ann`, p.String())
}

func TestConversionErrors(t *testing.T) {
	ctx := context.Background()

	c := testCaller(t, newVolume(t), Options{})
	_, err := c.Stat(ctx, "")
	assertErrno(t, c, errno.ENOENT, err)

	c = testCaller(t, newVolume(t), Options{MaxPath: 8})
	_, err = c.Stat(ctx, "/Users/ann/notes.txt")
	assertErrno(t, c, errno.ENAMETOOLONG, err)

	c = testCaller(t, newVolume(t), Options{Mode: native.ModeUTF8})
	_, err = c.Stat(ctx, "/bad\xff")
	assertErrno(t, c, errno.EILSEQ, err)
}

// ============================================================================
// Metadata queries
// ============================================================================

func TestStat_TrailingSeparator(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})

	st, err := c.Stat(context.Background(), "/a/b/")
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestStat_RootKeepsSeparator(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})

	st, err := c.Stat(context.Background(), "C:/")
	require.NoError(t, err)
	assert.True(t, st.IsDir())
	assert.Equal(t, uint32(2), st.Dev)
}

func TestStat_File(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})

	st, err := c.Stat(context.Background(), "/Users/ann/notes.txt")
	require.NoError(t, err)
	assert.True(t, st.IsRegular())
	assert.Equal(t, int32(42), st.Size)
	assert.Equal(t, int32(1700000000), st.Mtime)
	assert.Equal(t, uint16(S_IFREG|0o666), st.Mode)
	assert.Equal(t, int16(1), st.Nlink)
	assert.NotZero(t, st.Ino)
}

func TestStat_ModeBits(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	st, err := c.Stat(ctx, "/Users/ann/tool.exe")
	require.NoError(t, err)
	assert.Equal(t, uint16(S_IFREG|0o777), st.Mode)

	st, err = c.Stat(ctx, "/Users/ann/ro.txt")
	require.NoError(t, err)
	assert.Equal(t, uint16(S_IFREG|0o444), st.Mode)

	st, err = c.Stat(ctx, "/Users")
	require.NoError(t, err)
	assert.Equal(t, uint16(S_IFDIR|0o777), st.Mode)

	st, err = c.Stat(ctx, "/dev/null")
	require.NoError(t, err)
	assert.Equal(t, uint16(S_IFCHR), st.Mode&S_IFMT)
}

func TestStat_DerefVersusLstat(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	st, err := c.Stat(ctx, "/home")
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	lst, err := c.Lstat(ctx, "/home")
	require.NoError(t, err)
	assert.True(t, lst.IsLink())

	// Intermediate links are followed either way.
	lst, err = c.Lstat(ctx, "/home/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, int32(42), lst.Size)
}

func TestStat_LinkTargetWithTrailingSeparator(t *testing.T) {
	v := newVolume(t)
	ctx := context.Background()
	require.NoError(t, v.Symlink(ctx, `Users\ann\`, `C:\annlink`))

	for _, mode := range []native.Mode{native.ModeLegacy, native.ModeUTF8} {
		t.Run(mode.String(), func(t *testing.T) {
			c := testCaller(t, v, Options{Mode: mode})

			st, err := c.Stat(ctx, "/annlink")
			require.NoError(t, err)
			assert.True(t, st.IsDir())

			st64, err := c.Stat64(ctx, "/annlink/")
			require.NoError(t, err)
			assert.True(t, st64.IsDir())

			p, err := c.NativePath(ctx, "/annlink", true)
			require.NoError(t, err)
			assert.Equal(t, `\Users\ann`, p.String())

			lst, err := c.Lstat(ctx, "/annlink/notes.txt")
			require.NoError(t, err)
			assert.Equal(t, int32(42), lst.Size)
		})
	}
}

func TestStat_LinkErrors(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	_, err := c.Stat(ctx, "/dangling")
	assertErrno(t, c, errno.ENOENT, err)

	_, err = c.Stat(ctx, "/loop1")
	assertErrno(t, c, errno.ELOOP, err)

	// Lstat reports the link itself.
	st, err := c.Lstat(ctx, "/dangling")
	require.NoError(t, err)
	assert.True(t, st.IsLink())
}

func TestStat_SingleLevelLinks(t *testing.T) {
	v := newVolume(t)
	ctx := context.Background()
	require.NoError(t, v.Symlink(ctx, `C:\home`, `C:\alias`))

	c := testCaller(t, v, Options{MaxLinkHops: 1})
	st, err := c.Stat(ctx, "/alias")
	require.NoError(t, err)
	assert.True(t, st.IsLink())

	c = testCaller(t, v, Options{})
	st, err = c.Stat(ctx, "/alias")
	require.NoError(t, err)
	assert.True(t, st.IsDir())
}

func TestStat_NotFound(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	_, err := c.Stat(ctx, "/nope")
	assertErrno(t, c, errno.ENOENT, err)

	_, err = c.Stat(ctx, "/Users/ann/notes.txt/x")
	assertErrno(t, c, errno.ENOENT, err)

	assert.Equal(t, "stat /Users/ann/notes.txt/x: No such file or directory", err.Error())
}

func TestErrnoSurvivesSuccess(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	_, err := c.Stat(ctx, "/nope")
	require.Error(t, err)
	_, err = c.Stat(ctx, "/Users")
	require.NoError(t, err)
	assert.Equal(t, errno.ENOENT, c.Errno())
}

func TestCallersHaveIndependentErrno(t *testing.T) {
	em := New(newVolume(t), Options{})
	a, b := em.NewCaller(), em.NewCaller()
	ctx := context.Background()

	_, err := a.Stat(ctx, "/nope")
	require.Error(t, err)
	assert.Equal(t, errno.ENOENT, a.Errno())
	assert.Equal(t, errno.Errno(0), b.Errno())
}

// ============================================================================
// 64-bit records
// ============================================================================

func TestStat64_Native(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})

	st, err := c.Stat64(context.Background(), "/Users/ann/big.iso")
	require.NoError(t, err)
	assert.Equal(t, int64(8<<30), st.Size)
	assert.Equal(t, int64(1<<33), st.Mtime)
}

func TestStat_NarrowSaturates(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})

	st, err := c.Stat(context.Background(), "/Users/ann/big.iso")
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), st.Size)
	assert.Equal(t, int32(math.MaxInt32), st.Mtime)
}

func TestStat64_FallbackClamps(t *testing.T) {
	c := testCaller(t, native.WithoutStat64(newVolume(t)), Options{})
	ctx := context.Background()

	st, err := c.Stat64(ctx, "/Users/ann/big.iso")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt32), st.Size)
	assert.Equal(t, int64(math.MaxInt32), st.Mtime)

	// Values within range pass through untouched.
	st, err = c.Lstat64(ctx, "/Users/ann/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(42), st.Size)
	assert.Equal(t, int64(1700000000), st.Mtime)
}

func TestLstat64_Link(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{Mode: native.ModeUTF8})

	st, err := c.Lstat64(context.Background(), "/home")
	require.NoError(t, err)
	assert.True(t, st.IsLink())
}

// ============================================================================
// Chdir and Realpath
// ============================================================================

func TestChdirRealpath(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	require.NoError(t, c.Chdir(ctx, "/Users/"))
	got, err := c.Realpath(ctx, "ann/../ann/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, `C:\Users\ann\notes.txt`, got)

	st, err := c.Stat(ctx, "ann/notes.txt")
	require.NoError(t, err)
	assert.Equal(t, int32(42), st.Size)
}

func TestChdir_Errors(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx := context.Background()

	err := c.Chdir(ctx, "/Users/ann/notes.txt")
	assertErrno(t, c, errno.ENOTDIR, err)

	err = c.Chdir(ctx, "/nope")
	assertErrno(t, c, errno.ENOENT, err)
}

// ============================================================================
// Process-wide initialization and context
// ============================================================================

func resetDefault() {
	defaultMu.Lock()
	defaultEmu = nil
	defaultMu.Unlock()
}

func TestInit(t *testing.T) {
	resetDefault()
	t.Cleanup(resetDefault)

	assert.False(t, Initialized())

	em, err := Init(newVolume(t), Options{Mode: native.ModeUTF8})
	require.NoError(t, err)
	assert.Same(t, em, Default())
	assert.Equal(t, native.ModeUTF8, em.Mode())

	_, err = Init(newVolume(t), Options{Mode: native.ModeLegacy})
	assert.ErrorIs(t, err, ErrAlreadyInitialized)
	assert.Equal(t, native.ModeUTF8, Default().Mode())
}

func TestContext(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})

	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	got, ok := FromContext(NewContext(context.Background(), c))
	require.True(t, ok)
	assert.Same(t, c, got)
}

func TestCanceledContext(t *testing.T) {
	c := testCaller(t, newVolume(t), Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Lstat(ctx, "/Users")
	assertErrno(t, c, errno.EINTR, err)
}
