package posix

import "github.com/marmos91/posixshim/pkg/errno"

// PathError records a failed emulated call.
type PathError struct {
	Op   string
	Path string
	Err  errno.Errno
}

func (e *PathError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *PathError) Unwrap() error {
	return e.Err
}
