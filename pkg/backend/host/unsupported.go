package host

import "errors"

// ErrUnsupported is returned by New on platforms without the host backend.
var ErrUnsupported = errors.New("host backend is only available on linux")
