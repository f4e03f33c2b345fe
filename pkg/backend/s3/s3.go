// Package s3 exposes an S3 bucket (or S3-compatible store) as a native
// volume.
//
// Object keys mirror native paths below the configured drive root:
// "C:\docs\report.pdf" maps to "<prefix>docs/report.pdf". A directory is any
// key prefix with at least one object below it. A link is an object that
// carries the "reparse-target" user metadata; its value is the stored
// target.
//
// Object stores have no notion of links inside key prefixes, so only the
// final component of a path can be a link. Names are case-sensitive, as
// S3 keys are.
package s3

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/google/uuid"
	"golang.org/x/text/encoding"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/internal/ratelimiter"
	"github.com/marmos91/posixshim/pkg/metrics"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/pathconv"
)

// MetaReparseTarget is the user metadata key marking an object as a link.
const MetaReparseTarget = "reparse-target"

// ObjectAPI is the subset of the S3 client the backend uses.
type ObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Config contains configuration for the S3 backend.
type Config struct {
	// Client is the configured S3 client
	Client ObjectAPI

	// Bucket is the S3 bucket name
	Bucket string

	// KeyPrefix is an optional prefix for all object keys
	// Example: "volumes/c/" results in keys like "volumes/c/docs/report.pdf"
	KeyPrefix string

	// Drive is the root the bucket is mounted at (default: "C:")
	Drive string

	// CodePage decodes narrow path text. Nil treats narrow bytes as UTF-8.
	CodePage encoding.Encoding

	// Metrics records S3 calls. Nil disables metrics.
	Metrics metrics.BackendMetrics

	// Limiter throttles S3 calls. Nil leaves them unthrottled.
	Limiter *ratelimiter.RateLimiter
}

// FS implements native.FS and native.Stat64FS on top of S3.
//
// Thread Safety:
// Safe for concurrent use. The current directory is guarded by a mutex;
// every other call is a stateless S3 request.
type FS struct {
	client    ObjectAPI
	bucket    string
	keyPrefix string
	root      string
	codePage  encoding.Encoding
	serial    uint32
	metrics   metrics.BackendMetrics
	limiter   *ratelimiter.RateLimiter

	mu  sync.RWMutex
	cwd string
}

// New creates an S3 backend. The bucket is not contacted until the first
// call.
func New(cfg Config) (*FS, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("S3 client is required")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	drive := cfg.Drive
	if drive == "" {
		drive = "C:"
	}
	root := strings.TrimRight(drive, `\/`) + `\`
	if !pathconv.IsRoot([]byte(root)) || !pathconv.HasDrive([]byte(root)) {
		return nil, fmt.Errorf("drive %q is not a drive designator", cfg.Drive)
	}

	keyPrefix := cfg.KeyPrefix
	if keyPrefix != "" && !strings.HasSuffix(keyPrefix, "/") {
		keyPrefix += "/"
	}

	m := cfg.Metrics
	if m == nil {
		m = metrics.NoopBackendMetrics()
	}

	// The serial only has to be stable for a given bucket and prefix.
	serial := uuid.NewSHA1(uuid.NameSpaceURL, []byte("s3://"+cfg.Bucket+"/"+keyPrefix)).ID()

	return &FS{
		client:    cfg.Client,
		bucket:    cfg.Bucket,
		keyPrefix: keyPrefix,
		root:      root,
		codePage:  cfg.CodePage,
		serial:    serial,
		metrics:   m,
		limiter:   cfg.Limiter,
		cwd:       root,
	}, nil
}

// ============================================================================
// native.FS
// ============================================================================

func (f *FS) Stat(ctx context.Context, p native.Path) (native.FileInfo, error) {
	name, err := p.Text(f.codePage)
	if err != nil {
		return native.FileInfo{}, err
	}
	b := []byte(name)
	if len(b) > 0 && pathconv.IsSeparator(b[len(b)-1]) && !pathconv.IsRoot(b) {
		return native.FileInfo{}, native.ErrorInvalidName
	}
	if _, ok := pathconv.DeviceName(name); ok {
		return native.FileInfo{Attributes: native.FileAttributeDevice}, nil
	}

	key, err := f.objectKey(f.absolute(name))
	if err != nil {
		return native.FileInfo{}, err
	}
	return f.stat(ctx, key)
}

func (f *FS) Stat64(ctx context.Context, p native.Path) (native.FileInfo, error) {
	return f.Stat(ctx, p)
}

func (f *FS) ReadLink(ctx context.Context, p native.Path) (native.Path, error) {
	name, err := p.Text(f.codePage)
	if err != nil {
		return native.Path{}, err
	}
	key, err := f.objectKey(f.absolute(name))
	if err != nil {
		return native.Path{}, err
	}
	if key == f.keyPrefix {
		return native.Path{}, native.ErrorNotAReparsePoint
	}

	out, err := f.headObject(ctx, key)
	if err != nil {
		if errors.Is(err, native.ErrorFileNotFound) {
			if _, derr := f.statDir(ctx, key); derr == nil {
				return native.Path{}, native.ErrorNotAReparsePoint
			}
		}
		return native.Path{}, err
	}
	target, ok := out.Metadata[MetaReparseTarget]
	if !ok || target == "" {
		return native.Path{}, native.ErrorNotAReparsePoint
	}
	return p.Like(target, f.codePage)
}

func (f *FS) FullPath(_ context.Context, p native.Path) (native.Path, error) {
	name, err := p.Text(f.codePage)
	if err != nil {
		return native.Path{}, err
	}
	return p.Like(f.absolute(name), f.codePage)
}

func (f *FS) Chdir(ctx context.Context, p native.Path) error {
	name, err := p.Text(f.codePage)
	if err != nil {
		return err
	}
	full := string(pathconv.TrimTrailingSeparator([]byte(f.absolute(name))))
	key, err := f.objectKey(full)
	if err != nil {
		return err
	}

	fi, err := f.stat(ctx, key)
	if err != nil {
		return err
	}
	if !fi.Attributes.IsDir() {
		return native.ErrorDirectory
	}

	f.mu.Lock()
	f.cwd = full
	f.mu.Unlock()
	return nil
}

// ============================================================================
// Helpers
// ============================================================================

func (f *FS) absolute(name string) string {
	f.mu.RLock()
	cwd := f.cwd
	f.mu.RUnlock()
	return pathconv.Absolute(cwd, name)
}

// objectKey maps an absolute native path to its object key. The drive root
// maps to the key prefix itself.
func (f *FS) objectKey(full string) (string, error) {
	n := pathconv.RootLen([]byte(full))
	root := full[:n]
	if !strings.HasSuffix(root, `\`) {
		root += `\`
	}
	if !strings.EqualFold(root, f.root) {
		return "", native.ErrorPathNotFound
	}
	rest := strings.Trim(full[n:], `\`)
	return f.keyPrefix + strings.ReplaceAll(rest, `\`, "/"), nil
}

func (f *FS) stat(ctx context.Context, key string) (native.FileInfo, error) {
	if key == f.keyPrefix {
		return native.FileInfo{
			Attributes:   native.FileAttributeDirectory,
			VolumeSerial: f.serial,
			Links:        1,
		}, nil
	}

	out, err := f.headObject(ctx, key)
	if err == nil {
		return f.objectInfo(out), nil
	}
	if !errors.Is(err, native.ErrorFileNotFound) {
		return native.FileInfo{}, err
	}

	if fi, err := f.statDir(ctx, key); err == nil {
		return fi, nil
	} else if !errors.Is(err, native.ErrorFileNotFound) {
		return native.FileInfo{}, err
	}

	// A missing parent prefix turns the miss into a path error.
	if parent := key[:strings.LastIndex(key, "/")+1]; parent != f.keyPrefix && len(parent) > len(f.keyPrefix) {
		if _, err := f.statDir(ctx, strings.TrimSuffix(parent, "/")); err != nil {
			if errors.Is(err, native.ErrorFileNotFound) {
				return native.FileInfo{}, native.ErrorPathNotFound
			}
			return native.FileInfo{}, err
		}
	}
	return native.FileInfo{}, native.ErrorFileNotFound
}

// statDir reports key as a directory when any object lives below it.
func (f *FS) statDir(ctx context.Context, key string) (native.FileInfo, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return native.FileInfo{}, mapError(err)
	}
	start := time.Now()
	out, err := f.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(f.bucket),
		Prefix:  aws.String(key + "/"),
		MaxKeys: aws.Int32(1),
	})
	f.metrics.RecordStorageOperation("list_objects", time.Since(start), err)
	if err != nil {
		return native.FileInfo{}, mapError(err)
	}
	if aws.ToInt32(out.KeyCount) == 0 && len(out.Contents) == 0 {
		return native.FileInfo{}, native.ErrorFileNotFound
	}
	return native.FileInfo{
		Attributes:   native.FileAttributeDirectory,
		VolumeSerial: f.serial,
		Links:        1,
	}, nil
}

func (f *FS) headObject(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, mapError(err)
	}
	start := time.Now()
	out, err := f.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	f.metrics.RecordStorageOperation("head_object", time.Since(start), err)
	if err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

func (f *FS) objectInfo(out *s3.HeadObjectOutput) native.FileInfo {
	mtime := aws.ToTime(out.LastModified)
	fi := native.FileInfo{
		Attributes:   native.FileAttributeArchive,
		Size:         aws.ToInt64(out.ContentLength),
		AccessTime:   mtime,
		WriteTime:    mtime,
		CreationTime: mtime,
		VolumeSerial: f.serial,
		Links:        1,
	}
	if _, ok := out.Metadata[MetaReparseTarget]; ok {
		fi.Attributes = native.FileAttributeReparsePoint
	}
	return fi
}

// mapError translates an S3 failure into a native code, keeping context
// errors intact.
func mapError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var respErr *smithyhttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return native.ErrorFileNotFound
		case http.StatusForbidden:
			return native.ErrorAccessDenied
		case http.StatusServiceUnavailable:
			return native.ErrorBusy
		}
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return native.ErrorFileNotFound
		case "AccessDenied", "Forbidden":
			return native.ErrorAccessDenied
		case "SlowDown":
			return native.ErrorBusy
		}
	}

	logger.Warn("s3: unmapped error: %v", err)
	return fmt.Errorf("%w: %v", native.ErrorIODevice, err)
}
