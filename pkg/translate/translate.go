// Package translate maps native error codes onto POSIX error numbers and
// keeps the per-caller error state emulated calls report through.
package translate

import (
	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
)

// Documented fallbacks for codes no table knows.
const (
	DefaultErrno     = errno.ESTALE
	DefaultHostErrno = errno.NoRecovery
)

// Errno maps a native code through the general table. Success maps to 0 and
// pass-through codes (native.FromErrno) keep their value. Unknown codes map
// to DefaultErrno; mapped is false in that case.
func Errno(c native.Code) (e errno.Errno, mapped bool) {
	if c == native.ErrorSuccess {
		return 0, true
	}
	if v, ok := c.Errno(); ok {
		return errno.Errno(v), true
	}
	if e, ok := nativeTable[c]; ok {
		return e, true
	}
	if e, ok := winsockTable[c]; ok {
		return e, true
	}
	return DefaultErrno, false
}

// WinsockErrno maps a socket error code. Codes outside the socket range go
// through the general table.
func WinsockErrno(c native.Code) (errno.Errno, bool) {
	if e, ok := winsockTable[c]; ok {
		return e, true
	}
	return Errno(c)
}

// HostErrno maps a resolver error code onto h_errno. Unknown codes map to
// DefaultHostErrno.
func HostErrno(c native.Code) (errno.HostErrno, bool) {
	if c == native.ErrorSuccess {
		return errno.NetdbSuccess, true
	}
	if h, ok := hostTable[c]; ok {
		return h, true
	}
	return DefaultHostErrno, false
}

// HRESULTErrno maps a COM status. Win32-facility values are unwrapped and go
// through the general table.
func HRESULTErrno(h native.HRESULT) (errno.Errno, bool) {
	if !h.Failed() {
		return 0, true
	}
	if c, ok := h.Win32(); ok {
		return Errno(c)
	}
	if e, ok := hresultTable[h]; ok {
		return e, true
	}
	return DefaultErrno, false
}
