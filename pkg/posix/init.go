package posix

import (
	"errors"
	"sync"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/pkg/native"
)

// ErrAlreadyInitialized is returned by a second call to Init.
var ErrAlreadyInitialized = errors.New("posix: already initialized")

var (
	defaultMu  sync.RWMutex
	defaultEmu *Emulator
)

// Init creates the process-wide Emulator. The encoding mode it carries is
// fixed for the rest of the process: a second call fails and leaves the
// first Emulator in place.
func Init(fs native.FS, opts Options) (*Emulator, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEmu != nil {
		return nil, ErrAlreadyInitialized
	}
	defaultEmu = New(fs, opts)
	logger.Info("posix emulation initialized: mode=%s max_path=%d", defaultEmu.mode, defaultEmu.maxPath)
	return defaultEmu, nil
}

// Default returns the Emulator created by Init, or nil.
func Default() *Emulator {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEmu
}

// Initialized reports whether Init has succeeded.
func Initialized() bool {
	return Default() != nil
}
