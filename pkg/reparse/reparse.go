// Package reparse dereferences link-equivalent entries (symbolic links and
// reparse points) on a native backend.
package reparse

import (
	"context"
	"errors"
	"strings"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/pkg/metrics"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// DefaultMaxHops bounds Follow when no limit is configured.
const DefaultMaxHops = 32

// NotApplicable reports whether err is the "not a link" condition. Callers
// treat it as success with the path unchanged.
func NotApplicable(err error) bool {
	return errors.Is(err, native.ErrorNotAReparsePoint)
}

// Resolver rewrites link paths into their targets. It holds no mutable state
// and is safe for concurrent use.
type Resolver struct {
	fs      native.FS
	maxHops int
	metrics metrics.EmulatorMetrics
}

// New creates a Resolver. maxHops <= 0 selects DefaultMaxHops; 1 gives the
// single-level behaviour where the target is never examined. m may be nil.
func New(fs native.FS, maxHops int, m metrics.EmulatorMetrics) *Resolver {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	if m == nil {
		m = metrics.NoopEmulatorMetrics()
	}
	return &Resolver{fs: fs, maxHops: maxHops, metrics: m}
}

// Resolve dereferences the final component of p once. Relative targets are
// resolved against the directory holding the link, and the result never ends
// in a separator unless it is a root. When p is not a link the
// error satisfies NotApplicable.
func (r *Resolver) Resolve(ctx context.Context, p native.Path) (native.Path, error) {
	target, err := r.fs.ReadLink(ctx, p)
	if err != nil {
		return native.Path{}, err
	}
	if target.IsWide() != p.IsWide() {
		return native.Path{}, native.ErrorInvalidReparseData
	}
	if target.IsWide() {
		return native.WidePath(anchor(p.Wide(), target.Wide())), nil
	}
	return native.NarrowPath(anchor(p.Narrow(), target.Narrow())), nil
}

// anchor resolves target against the directory holding link. Trailing
// separators are dropped so the result names the entry itself.
func anchor[U pathconv.Unit](link, target []U) []U {
	if len(target) == 0 {
		return target
	}
	out := pathconv.Join(pathconv.Dir(link), target)
	for {
		trimmed := pathconv.TrimTrailingSeparator(out)
		if len(trimmed) == len(out) {
			return out
		}
		out = trimmed
	}
}

// Follow dereferences p until the result is not a link, at most MaxHops
// times. It returns the final path and the number of links followed. When p
// itself is not a link the error satisfies NotApplicable. A cycle, or a chain
// longer than MaxHops, fails with ErrorCantResolveFilename.
func (r *Resolver) Follow(ctx context.Context, p native.Path) (native.Path, int, error) {
	cur := p
	seen := map[string]struct{}{key(p): {}}

	for hops := 0; hops < r.maxHops; hops++ {
		next, err := r.Resolve(ctx, cur)
		if NotApplicable(err) && hops > 0 {
			r.metrics.RecordLinkHops(hops)
			return cur, hops, nil
		}
		if err != nil {
			return native.Path{}, hops, err
		}

		logger.Debug("reparse: %s -> %s", cur, next)
		k := key(next)
		if _, loop := seen[k]; loop {
			logger.Debug("reparse: cycle at %s", next)
			return native.Path{}, hops + 1, native.ErrorCantResolveFilename
		}
		seen[k] = struct{}{}
		cur = next
	}

	if r.maxHops == 1 {
		r.metrics.RecordLinkHops(1)
		return cur, 1, nil
	}

	// The limit is only exceeded if the last target is itself a link.
	_, err := r.fs.ReadLink(ctx, cur)
	if NotApplicable(err) {
		r.metrics.RecordLinkHops(r.maxHops)
		return cur, r.maxHops, nil
	}
	if err != nil {
		return native.Path{}, r.maxHops, err
	}
	return native.Path{}, r.maxHops, native.ErrorCantResolveFilename
}

// key identifies a path for cycle detection. Native names compare
// case-insensitively.
func key(p native.Path) string {
	return strings.ToLower(pathconv.Clean(p.String()))
}
