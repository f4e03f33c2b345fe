// Package errno defines the POSIX error number namespace seen by emulated
// callers.
//
// The standard codes use the values of the native C runtime. Codes the
// runtime does not define are allocated above ExtendedBase, following the
// numbering other POSIX emulation layers (Cygwin) use, so that values stay
// stable across builds and can be exchanged with code compiled against the
// same headers.
package errno

import (
	"fmt"
	"io/fs"
)

// Errno is a POSIX error number.
//
// The zero value means "no error". Errno implements error so it can be
// returned directly from emulated operations.
type Errno int

// ExtendedBase is the offset added to the Cygwin numbering for codes the
// native C runtime does not define.
const ExtendedBase = 110

// Standard codes defined by the native C runtime.
const (
	EPERM        Errno = 1
	ENOENT       Errno = 2
	ESRCH        Errno = 3
	EINTR        Errno = 4
	EIO          Errno = 5
	ENXIO        Errno = 6
	E2BIG        Errno = 7
	ENOEXEC      Errno = 8
	EBADF        Errno = 9
	ECHILD       Errno = 10
	EAGAIN       Errno = 11
	ENOMEM       Errno = 12
	EACCES       Errno = 13
	EFAULT       Errno = 14
	EBUSY        Errno = 16
	EEXIST       Errno = 17
	EXDEV        Errno = 18
	ENODEV       Errno = 19
	ENOTDIR      Errno = 20
	EISDIR       Errno = 21
	EINVAL       Errno = 22
	ENFILE       Errno = 23
	EMFILE       Errno = 24
	ENOTTY       Errno = 25
	EFBIG        Errno = 27
	ENOSPC       Errno = 28
	ESPIPE       Errno = 29
	EROFS        Errno = 30
	EMLINK       Errno = 31
	EPIPE        Errno = 32
	EDOM         Errno = 33
	ERANGE       Errno = 34
	EDEADLK      Errno = 36
	ENAMETOOLONG Errno = 38
	ENOLCK       Errno = 39
	ENOSYS       Errno = 40
	ENOTEMPTY    Errno = 41
	EILSEQ       Errno = 42

	EDEADLOCK   = EDEADLK
	EWOULDBLOCK = EAGAIN
)

// Extended codes.
const (
	ENOCSI          Errno = 43 + ExtendedBase
	EL2HLT          Errno = 44 + ExtendedBase
	EBADE           Errno = 50 + ExtendedBase
	EBADR           Errno = 51 + ExtendedBase
	EXFULL          Errno = 52 + ExtendedBase
	ENOANO          Errno = 53 + ExtendedBase
	EBADRQC         Errno = 54 + ExtendedBase
	EBADSLT         Errno = 55 + ExtendedBase
	EBFONT          Errno = 57 + ExtendedBase
	ENOSTR          Errno = 60 + ExtendedBase
	ENODATA         Errno = 61 + ExtendedBase
	ETIME           Errno = 62 + ExtendedBase
	ENOSR           Errno = 63 + ExtendedBase
	ENONET          Errno = 64 + ExtendedBase
	ENOPKG          Errno = 65 + ExtendedBase
	EREMOTE         Errno = 66 + ExtendedBase
	ENOLINK         Errno = 67 + ExtendedBase
	EADV            Errno = 68 + ExtendedBase
	ESRMNT          Errno = 69 + ExtendedBase
	ECOMM           Errno = 70 + ExtendedBase
	EPROTO          Errno = 71 + ExtendedBase
	EMULTIHOP       Errno = 74 + ExtendedBase
	ELBIN           Errno = 75 + ExtendedBase
	EDOTDOT         Errno = 76 + ExtendedBase
	EBADMSG         Errno = 77 + ExtendedBase
	ENOTUNIQ        Errno = 80 + ExtendedBase
	EBADFD          Errno = 81 + ExtendedBase
	EREMCHG         Errno = 82 + ExtendedBase
	ELIBACC         Errno = 83 + ExtendedBase
	ELIBBAD         Errno = 84 + ExtendedBase
	ELIBSCN         Errno = 85 + ExtendedBase
	ELIBMAX         Errno = 86 + ExtendedBase
	ELIBEXEC        Errno = 87 + ExtendedBase
	ENMFILE         Errno = 89 + ExtendedBase
	ELOOP           Errno = 92 + ExtendedBase
	EOPNOTSUPP      Errno = 95 + ExtendedBase
	EPFNOSUPPORT    Errno = 96 + ExtendedBase
	ECONNRESET      Errno = 104 + ExtendedBase
	ENOBUFS         Errno = 105 + ExtendedBase
	EAFNOSUPPORT    Errno = 106 + ExtendedBase
	EPROTOTYPE      Errno = 107 + ExtendedBase
	ENOTSOCK        Errno = 108 + ExtendedBase
	ENOPROTOOPT     Errno = 109 + ExtendedBase
	ESHUTDOWN       Errno = 110 + ExtendedBase
	ECONNREFUSED    Errno = 111 + ExtendedBase
	EADDRINUSE      Errno = 112 + ExtendedBase
	ECONNABORTED    Errno = 113 + ExtendedBase
	ENETUNREACH     Errno = 114 + ExtendedBase
	ENETDOWN        Errno = 115 + ExtendedBase
	ETIMEDOUT       Errno = 116 + ExtendedBase
	EHOSTDOWN       Errno = 117 + ExtendedBase
	EHOSTUNREACH    Errno = 118 + ExtendedBase
	EINPROGRESS     Errno = 119 + ExtendedBase
	EALREADY        Errno = 120 + ExtendedBase
	EDESTADDRREQ    Errno = 121 + ExtendedBase
	EMSGSIZE        Errno = 122 + ExtendedBase
	EPROTONOSUPPORT Errno = 123 + ExtendedBase
	ESOCKTNOSUPPORT Errno = 124 + ExtendedBase
	EADDRNOTAVAIL   Errno = 125 + ExtendedBase
	ENETRESET       Errno = 126 + ExtendedBase
	EISCONN         Errno = 127 + ExtendedBase
	ENOTCONN        Errno = 128 + ExtendedBase
	ETOOMANYREFS    Errno = 129 + ExtendedBase
	EPROCLIM        Errno = 130 + ExtendedBase
	EUSERS          Errno = 131 + ExtendedBase
	EDQUOT          Errno = 132 + ExtendedBase
	ESTALE          Errno = 133 + ExtendedBase
	ENOTSUP         Errno = 134 + ExtendedBase
	ENOMEDIUM       Errno = 135 + ExtendedBase
	ENOSHARE        Errno = 136 + ExtendedBase
	ECASECLASH      Errno = 137 + ExtendedBase
	EOVERFLOW       Errno = 139 + ExtendedBase
)

// Error returns the strerror text of e.
func (e Errno) Error() string {
	return Strerror(e)
}

// Name returns the symbolic name of e, such as "ENOENT".
// Unknown values are rendered as "errno(N)".
func (e Errno) Name() string {
	if d, ok := table[e]; ok {
		return d.name
	}
	return fmt.Sprintf("errno(%d)", int(e))
}

// Is lets errors.Is match an Errno against the io/fs sentinel errors.
func (e Errno) Is(target error) bool {
	switch target {
	case fs.ErrPermission:
		return e == EACCES || e == EPERM
	case fs.ErrExist:
		return e == EEXIST || e == ENOTEMPTY
	case fs.ErrNotExist:
		return e == ENOENT
	case fs.ErrInvalid:
		return e == EINVAL
	}
	return false
}

// Timeout reports whether e is a timeout condition.
func (e Errno) Timeout() bool {
	return e == ETIMEDOUT || e == ETIME
}

// Temporary reports whether retrying the failed call may succeed.
func (e Errno) Temporary() bool {
	return e == EINTR || e == EAGAIN || e == EBUSY || e.Timeout()
}

// Strerror returns the message for e, like strerror(3).
func Strerror(e Errno) string {
	if e == 0 {
		return "No error"
	}
	if d, ok := table[e]; ok {
		return d.msg
	}
	return fmt.Sprintf("Unknown error %d", int(e))
}

// Lookup returns the Errno for a symbolic name such as "ENOENT".
func Lookup(name string) (Errno, bool) {
	e, ok := byName[name]
	return e, ok
}

// Known reports whether e is part of the namespace.
func Known(e Errno) bool {
	_, ok := table[e]
	return ok
}
