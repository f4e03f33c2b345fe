package native

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestFromErrno(t *testing.T) {
	c := FromErrno(13)
	e, ok := c.Errno()
	require.True(t, ok)
	assert.Equal(t, 13, e)

	_, ok = ErrorAccessDenied.Errno()
	assert.False(t, ok)
}

func TestCodeError(t *testing.T) {
	assert.Equal(t, "native: ERROR_SHARING_VIOLATION (32)", ErrorSharingViolation.Error())
	assert.Equal(t, "native: error 65000", Code(65000).Error())
	assert.Equal(t, "native: errno 2", FromErrno(2).Error())
	assert.Equal(t, "ERROR_NOT_A_REPARSE_POINT", ErrorNotAReparsePoint.Name())
	assert.Equal(t, "WSAECONNRESET", WSAECONNRESET.Name())
}

func TestCodeIsSyscallErrno(t *testing.T) {
	var err error = ErrorFileNotFound
	assert.True(t, errors.Is(err, syscall.Errno(2)))
	assert.False(t, errors.Is(err, syscall.Errno(3)))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("UTF-8")
	require.NoError(t, err)
	assert.Equal(t, ModeUTF8, m)

	m, err = ParseMode("legacy")
	require.NoError(t, err)
	assert.Equal(t, ModeLegacy, m)
	assert.Equal(t, "legacy", m.String())

	_, err = ParseMode("ebcdic")
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	t.Run("Wide", func(t *testing.T) {
		p := WideString(`C:\tmp\é`)
		assert.True(t, p.IsWide())
		assert.Equal(t, 8, p.Len())
		assert.Equal(t, `C:\tmp\é`, p.String())
	})

	t.Run("NarrowCodePage", func(t *testing.T) {
		p := NarrowPath([]byte{'c', 'a', 'f', 0xE9})
		s, err := p.Text(charmap.Windows1252)
		require.NoError(t, err)
		assert.Equal(t, "café", s)

		back, err := p.Like("thé", charmap.Windows1252)
		require.NoError(t, err)
		assert.Equal(t, []byte{'t', 'h', 0xE9}, back.Narrow())
	})
}

func TestExecutableName(t *testing.T) {
	assert.True(t, IsExecutableName("RUN.EXE"))
	assert.True(t, IsExecutableName("x.bat"))
	assert.False(t, IsExecutableName("readme.txt"))
}

func TestHRESULT(t *testing.T) {
	h := HRESULTFromWin32(ErrorAccessDenied)
	assert.Equal(t, EAccessDenied, h)

	c, ok := h.Win32()
	require.True(t, ok)
	assert.Equal(t, ErrorAccessDenied, c)

	_, ok = EFail.Win32()
	assert.False(t, ok)
	assert.False(t, SOk.Failed())
}

type stat64Stub struct{ FS }

func (stat64Stub) Stat64(context.Context, Path) (FileInfo, error) { return FileInfo{}, nil }

func TestWithoutStat64(t *testing.T) {
	var fs FS = stat64Stub{}
	_, ok := fs.(Stat64FS)
	require.True(t, ok)

	_, ok = WithoutStat64(fs).(Stat64FS)
	assert.False(t, ok)
}
