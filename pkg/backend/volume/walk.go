package volume

import (
	"context"
	"errors"
	"strings"

	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// walk resolves the absolute native path full component by component.
//
// Links in intermediate components are always followed; a link in the final
// component is followed only when followLast is set. A relative link target
// is resolved against the directory holding the link. The walk restarts from
// the root of the substituted path after each hop and fails with
// ERROR_CANT_RESOLVE_FILENAME once more than maxHops links were taken.
//
// A missing final component yields ERROR_FILE_NOT_FOUND; a missing or
// non-directory intermediate component yields ERROR_PATH_NOT_FOUND.
func (v *Volume) walk(ctx context.Context, full string, followLast bool) (*Entry, string, error) {
	full = string(pathconv.TrimTrailingSeparator([]byte(full)))

	for hops := 0; ; hops++ {
		if hops > v.maxHops {
			return nil, "", native.ErrorCantResolveFilename
		}
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}

		e, key, next, err := v.walkOnce(ctx, full, followLast)
		if err != nil {
			return nil, "", err
		}
		if next == "" {
			return e, key, nil
		}
		full = next
	}
}

// walkOnce walks full until it reaches the final entry or a link it has to
// follow. In the latter case it returns the substituted path in next.
func (v *Volume) walkOnce(ctx context.Context, full string, followLast bool) (e *Entry, key, next string, err error) {
	root := rootOf(full)
	if root == "" {
		return nil, "", "", native.ErrorPathNotFound
	}
	e, err = v.get(ctx, keyOf(root))
	if err != nil {
		if errors.Is(err, native.ErrorFileNotFound) {
			return nil, "", "", native.ErrorPathNotFound
		}
		return nil, "", "", err
	}

	comps := components(full[pathconv.RootLen([]byte(full)):])
	cur := root
	for i, name := range comps {
		last := i == len(comps)-1
		if e.Kind != KindDir {
			return nil, "", "", native.ErrorPathNotFound
		}

		child := cur + name
		ce, err := v.get(ctx, keyOf(child))
		if err != nil {
			if errors.Is(err, native.ErrorFileNotFound) && !last {
				return nil, "", "", native.ErrorPathNotFound
			}
			return nil, "", "", err
		}

		if ce.Kind == KindLink && (!last || followLast) {
			next = pathconv.Absolute(cur, ce.Target)
			if rest := comps[i+1:]; len(rest) > 0 {
				next = pathconv.Clean(next + `\` + strings.Join(rest, `\`))
			}
			return nil, "", string(pathconv.TrimTrailingSeparator([]byte(next))), nil
		}

		e = ce
		if last {
			cur = child
		} else {
			cur = child + `\`
		}
	}
	return e, keyOf(cur), "", nil
}

// get reads one entry, reporting a missing key as ERROR_FILE_NOT_FOUND and
// any other store failure as an I/O error.
func (v *Volume) get(ctx context.Context, key string) (*Entry, error) {
	e, err := v.store.GetEntry(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, native.ErrorFileNotFound
		}
		return nil, storeError(err)
	}
	return e, nil
}

func components(rest string) []string {
	var out []string
	for _, c := range strings.Split(rest, `\`) {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
