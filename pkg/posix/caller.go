package posix

import (
	"context"
	"time"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/reparse"
	"github.com/marmos91/posixshim/pkg/translate"
)

// Caller issues emulated calls and owns the errno they leave behind. A Caller
// must not be used from more than one goroutine at a time.
type Caller struct {
	em    *Emulator
	state *translate.State
}

func newCaller(em *Emulator) *Caller {
	return &Caller{em: em, state: translate.NewState(em.metrics)}
}

// Errno returns the errno of the most recent failing call.
func (c *Caller) Errno() errno.Errno { return c.state.Errno() }

// HostErrno returns the h_errno of the most recent failing resolver call.
func (c *Caller) HostErrno() errno.HostErrno { return c.state.HostErrno() }

// State exposes the error cell, for collaborators such as socket or resolver
// shims that translate their own native failures.
func (c *Caller) State() *translate.State { return c.state }

// Stat returns metadata for path, following a link in the final component.
func (c *Caller) Stat(ctx context.Context, path string) (Stat, error) {
	var st Stat
	err := c.do("stat", path, func() error {
		fi, p, err := c.query(ctx, path, false, true)
		if err == nil {
			st = pack(fi, p)
		}
		return err
	})
	return st, err
}

// Lstat is Stat without following a link in the final component.
func (c *Caller) Lstat(ctx context.Context, path string) (Stat, error) {
	var st Stat
	err := c.do("lstat", path, func() error {
		fi, p, err := c.query(ctx, path, false, false)
		if err == nil {
			st = pack(fi, p)
		}
		return err
	})
	return st, err
}

// Stat64 returns metadata with 64-bit size and times, following a link in
// the final component. On backends without a 64-bit call the values come
// from the narrow call and are clamped to the int32 range.
func (c *Caller) Stat64(ctx context.Context, path string) (Stat64, error) {
	var st Stat64
	err := c.do("stat64", path, func() error {
		var err error
		st, err = c.query64(ctx, path, true)
		return err
	})
	return st, err
}

// Lstat64 is Stat64 without following a link in the final component.
func (c *Caller) Lstat64(ctx context.Context, path string) (Stat64, error) {
	var st Stat64
	err := c.do("lstat64", path, func() error {
		var err error
		st, err = c.query64(ctx, path, false)
		return err
	})
	return st, err
}

// Chdir changes the backend's current directory.
func (c *Caller) Chdir(ctx context.Context, path string) error {
	return c.do("chdir", path, func() error {
		p, err := c.convert(path)
		if err != nil {
			return err
		}
		if err := c.em.fs.Chdir(ctx, trimTrailing(p)); err != nil {
			c.state.SetFromError(err)
			return err
		}
		return nil
	})
}

// Realpath returns the absolute native form of path. The result is in the
// native syntax and, in legacy mode, decoded with the configured code page.
func (c *Caller) Realpath(ctx context.Context, path string) (string, error) {
	var out string
	err := c.do("realpath", path, func() error {
		p, err := c.convert(path)
		if err != nil {
			return err
		}
		full, err := c.em.fs.FullPath(ctx, p)
		if err != nil {
			c.state.SetFromError(err)
			return err
		}
		out, err = full.Text(c.em.codePage)
		if err != nil {
			c.state.SetFromError(err)
		}
		return err
	})
	return out, err
}

// NativePath converts path into native text, dereferencing links in the
// final component when deref is set.
func (c *Caller) NativePath(ctx context.Context, path string, deref bool) (native.Path, error) {
	var out native.Path
	err := c.do("convert", path, func() error {
		p, err := c.convert(path)
		if err != nil {
			return err
		}
		if deref {
			p, err = c.follow(ctx, trimTrailing(p))
			if err != nil {
				return err
			}
		}
		out = p
		return nil
	})
	return out, err
}

// do runs one emulated call, recording it and wrapping failures. The errno
// has already been installed by fn when it fails.
func (c *Caller) do(op, path string, fn func() error) error {
	start := time.Now()
	err := fn()
	if err == nil {
		c.em.metrics.RecordOperation(op, time.Since(start), 0)
		return nil
	}

	e := c.state.Errno()
	c.em.metrics.RecordOperation(op, time.Since(start), e)
	logger.Debug("%s %q: %s (%v)", op, path, e.Name(), err)
	return &PathError{Op: op, Path: path, Err: e}
}

func (c *Caller) convert(path string) (native.Path, error) {
	if path == "" {
		c.state.Set(errno.ENOENT)
		return native.Path{}, errno.ENOENT
	}
	p, code := c.em.convert(path)
	if code != native.ErrorSuccess {
		c.state.SetFromNative(code)
		return native.Path{}, code
	}
	return p, nil
}

// follow dereferences p. A path that is not a link is returned unchanged.
func (c *Caller) follow(ctx context.Context, p native.Path) (native.Path, error) {
	target, _, err := c.em.resolver.Follow(ctx, p)
	switch {
	case reparse.NotApplicable(err):
		return p, nil
	case err != nil:
		c.state.SetFromError(err)
		return native.Path{}, err
	}
	return target, nil
}

// query runs the metadata algorithm: convert, strip one trailing separator,
// optionally dereference, then call the backend. It returns the native path
// the metadata belongs to.
func (c *Caller) query(ctx context.Context, path string, wide, deref bool) (native.FileInfo, string, error) {
	p, err := c.convert(path)
	if err != nil {
		return native.FileInfo{}, "", err
	}
	p = trimTrailing(p)

	if deref {
		if p, err = c.follow(ctx, p); err != nil {
			return native.FileInfo{}, "", err
		}
	}

	var fi native.FileInfo
	if s64, ok := c.em.fs.(native.Stat64FS); ok && wide {
		fi, err = s64.Stat64(ctx, p)
	} else {
		fi, err = c.em.fs.Stat(ctx, p)
	}
	if err != nil {
		c.state.SetFromError(err)
		return native.FileInfo{}, "", err
	}
	return fi, p.String(), nil
}

func (c *Caller) query64(ctx context.Context, path string, deref bool) (Stat64, error) {
	fi, p, err := c.query(ctx, path, true, deref)
	if err != nil {
		return Stat64{}, err
	}
	if _, ok := c.em.fs.(native.Stat64FS); ok {
		return pack64(fi, p), nil
	}
	return pack(fi, p).Widen(), nil
}
