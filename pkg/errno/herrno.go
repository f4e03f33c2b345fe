package errno

import "fmt"

// HostErrno is a name-resolution error number (h_errno).
//
// It is a separate namespace from Errno: HostNotFound and EPERM share the
// value 1 but mean different things.
type HostErrno int

const (
	NetdbSuccess HostErrno = 0
	HostNotFound HostErrno = 1
	TryAgain     HostErrno = 2
	NoRecovery   HostErrno = 3
	NoAddress    HostErrno = 4

	NoData = NoAddress
)

// Error returns the hstrerror text of h.
func (h HostErrno) Error() string {
	switch h {
	case NetdbSuccess:
		return "Resolver Error 0 (no error)"
	case HostNotFound:
		return "Unknown host"
	case TryAgain:
		return "Host name lookup failure"
	case NoRecovery:
		return "Unknown server error"
	case NoAddress:
		return "No address associated with name"
	}
	return fmt.Sprintf("Resolver internal error %d", int(h))
}

// Name returns the symbolic name of h.
func (h HostErrno) Name() string {
	switch h {
	case NetdbSuccess:
		return "NETDB_SUCCESS"
	case HostNotFound:
		return "HOST_NOT_FOUND"
	case TryAgain:
		return "TRY_AGAIN"
	case NoRecovery:
		return "NO_RECOVERY"
	case NoAddress:
		return "NO_ADDRESS"
	}
	return fmt.Sprintf("h_errno(%d)", int(h))
}
