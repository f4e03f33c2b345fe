package translate

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/metrics"
	"github.com/marmos91/posixshim/pkg/native"
)

// State is the error cell of one caller: the errno and h_errno left by its
// most recent failing call. A State must not be shared between goroutines.
type State struct {
	errno   errno.Errno
	herrno  errno.HostErrno
	metrics metrics.EmulatorMetrics
}

// NewState returns an empty State. m may be nil.
func NewState(m metrics.EmulatorMetrics) *State {
	if m == nil {
		m = metrics.NoopEmulatorMetrics()
	}
	return &State{metrics: m}
}

// Errno returns the current errno.
func (s *State) Errno() errno.Errno { return s.errno }

// HostErrno returns the current h_errno.
func (s *State) HostErrno() errno.HostErrno { return s.herrno }

// Set installs e directly, for failures detected before any native call.
func (s *State) Set(e errno.Errno) { s.errno = e }

// SetFromNative translates c through the general table and installs the
// result. The caller's source location is logged at debug level.
func (s *State) SetFromNative(c native.Code) {
	s.setNative(c, 1)
}

// SetFromWinsock translates a socket error code and installs the result.
func (s *State) SetFromWinsock(c native.Code) {
	e, mapped := WinsockErrno(c)
	s.metrics.RecordTranslation("winsock", mapped)
	s.trace(c, e, 1)
	s.errno = e
}

// SetHostFromNative translates a resolver error code into h_errno. The
// general errno is left alone.
func (s *State) SetHostFromNative(c native.Code) {
	h, mapped := HostErrno(c)
	s.metrics.RecordTranslation("host", mapped)
	if logger.Enabled(logger.LevelDebug) {
		file, line := caller(1)
		logger.Debug("h_errno %s from %s at %s:%d", h.Name(), c, file, line)
	}
	s.herrno = h
}

// SetFromHRESULT translates a COM status and installs the result.
func (s *State) SetFromHRESULT(h native.HRESULT) {
	e, mapped := HRESULTErrno(h)
	s.metrics.RecordTranslation("hresult", mapped)
	if logger.Enabled(logger.LevelDebug) {
		file, line := caller(1)
		logger.Debug("errno %s from %s at %s:%d", e.Name(), h, file, line)
	}
	s.errno = e
}

// SetFromError installs the errno for any error a backend returned: an
// errno.Errno as is, a native.Code or HRESULT through the tables, a context
// error as EINTR or ETIMEDOUT, anything else as EIO.
func (s *State) SetFromError(err error) {
	var (
		e    errno.Errno
		code native.Code
		hr   native.HRESULT
	)
	switch {
	case err == nil:
		s.errno = 0
	case errors.As(err, &e):
		s.errno = e
	case errors.As(err, &code):
		s.setNative(code, 1)
	case errors.As(err, &hr):
		s.SetFromHRESULT(hr)
	case errors.Is(err, context.DeadlineExceeded):
		s.errno = errno.ETIMEDOUT
	case errors.Is(err, context.Canceled):
		s.errno = errno.EINTR
	default:
		logger.Error("untranslatable backend error: %v", err)
		s.errno = errno.EIO
	}
}

func (s *State) setNative(c native.Code, skip int) {
	e, mapped := Errno(c)
	s.metrics.RecordTranslation("native", mapped)
	s.trace(c, e, skip+1)
	s.errno = e
}

func (s *State) trace(c native.Code, e errno.Errno, skip int) {
	if !logger.Enabled(logger.LevelDebug) {
		return
	}
	file, line := caller(skip + 1)
	logger.Debug("errno %s from %s at %s:%d", e.Name(), c, file, line)
}

// caller reports the source location skip frames above its own caller.
func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "?", 0
	}
	return filepath.Base(file), line
}
