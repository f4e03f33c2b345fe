package pathconv

import (
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
)

func TestTrimTrailingSeparator(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`C:\a\b\`, `C:\a\b`},
		{`C:\a\b\\`, `C:\a\b\`},
		{`a\`, `a`},
		{`\`, `\`},
		{`C:\`, `C:\`},
		{`\\srv\share\`, `\\srv\share\`},
		{`\\srv\share\x\`, `\\srv\share\x`},
		{`C:\a`, `C:\a`},
		{``, ``},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, string(TrimTrailingSeparator([]byte(tt.in))))

			wide := TrimTrailingSeparator(utf16.Encode([]rune(tt.in)))
			assert.Equal(t, tt.want, string(utf16.Decode(wide)))
		})
	}
}

func TestRoots(t *testing.T) {
	assert.True(t, IsRoot([]byte(`\`)))
	assert.True(t, IsRoot([]byte(`C:\`)))
	assert.True(t, IsRoot([]byte(`\\srv\share`)))
	assert.True(t, IsRoot([]byte(`\\srv\share\`)))
	assert.False(t, IsRoot([]byte(`C:\a`)))
	assert.False(t, IsRoot([]byte(`a`)))

	assert.Equal(t, 2, RootLen([]byte(`C:foo`)))
	assert.Equal(t, 12, RootLen([]byte(`\\srv\share\x`)))
}

func TestIsAbs(t *testing.T) {
	assert.True(t, IsAbs([]byte(`C:\x`)))
	assert.True(t, IsAbs([]byte(`\x`)))
	assert.True(t, IsAbs([]byte(`\\srv\share`)))
	assert.False(t, IsAbs([]byte(`C:x`)))
	assert.False(t, IsAbs([]byte(`x\y`)))
}

func TestDirBaseJoin(t *testing.T) {
	assert.Equal(t, `C:\a`, string(Dir([]byte(`C:\a\b`))))
	assert.Equal(t, `C:\`, string(Dir([]byte(`C:\a`))))
	assert.Equal(t, `C:`, string(Dir([]byte(`C:a`))))
	assert.Equal(t, ``, string(Dir([]byte(`a`))))
	assert.Equal(t, `\\srv\share\`, string(Dir([]byte(`\\srv\share\x`))))

	assert.Equal(t, `b`, string(Base([]byte(`C:\a\b\`))))
	assert.Equal(t, `a`, string(Base([]byte(`a`))))

	assert.Equal(t, `C:\a\t`, string(Join([]byte(`C:\a`), []byte(`t`))))
	assert.Equal(t, `C:\t`, string(Join([]byte(`C:\`), []byte(`t`))))
	assert.Equal(t, `C:t`, string(Join([]byte(`C:`), []byte(`t`))))
	assert.Equal(t, `D:\t`, string(Join([]byte(`C:\a`), []byte(`D:\t`))))
	assert.Equal(t, `\t`, string(Join([]byte(`C:\a`), []byte(`\t`))))
}

func TestJoinDoesNotAlias(t *testing.T) {
	dir := make([]uint16, 2, 16)
	copy(dir, utf16.Encode([]rune(`\a`)))
	out := Join(dir, utf16.Encode([]rune("b")))
	out[0] = 'X'
	assert.Equal(t, uint16('\\'), dir[0])
}
