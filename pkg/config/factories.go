package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/internal/ratelimiter"
	"github.com/marmos91/posixshim/pkg/backend/host"
	s3backend "github.com/marmos91/posixshim/pkg/backend/s3"
	"github.com/marmos91/posixshim/pkg/backend/volume"
	"github.com/marmos91/posixshim/pkg/backend/volume/badger"
	"github.com/marmos91/posixshim/pkg/backend/volume/memory"
	"github.com/marmos91/posixshim/pkg/metrics"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/posix"
)

// Backend is a native backend together with the function releasing it.
type Backend struct {
	FS native.FS

	// Volume is set for emulated volume backends (memory, badger), which
	// can be populated through it.
	Volume *volume.Volume

	close func() error
}

// Close releases the backend's resources.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// CodePage resolves an IANA code page name such as "windows-1252".
func CodePage(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown code page %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("code page %q is not supported", name)
	}
	return enc, nil
}

// CreateEmulator builds the emulator described by cfg.
//
// Parameters:
//   - ctx: Context for backend initialization
//   - cfg: Complete, validated configuration
//   - m: Emulator metrics; nil disables them
//
// Returns:
//   - *posix.Emulator: Emulator ready to hand out callers
//   - *Backend: The backend, to be closed by the caller
//   - error: Configuration or initialization error
func CreateEmulator(ctx context.Context, cfg *Config, m metrics.EmulatorMetrics) (*posix.Emulator, *Backend, error) {
	opts, err := EmulatorOptions(cfg, m)
	if err != nil {
		return nil, nil, err
	}

	backend, err := CreateBackend(ctx, &cfg.Backend, opts.CodePage)
	if err != nil {
		return nil, nil, err
	}

	return posix.New(backend.FS, opts), backend, nil
}

// InitEmulator builds the backend described by cfg and installs the
// process-wide emulator with posix.Init. It fails with
// posix.ErrAlreadyInitialized when an emulator is already installed; the
// backend is closed in that case.
func InitEmulator(ctx context.Context, cfg *Config, m metrics.EmulatorMetrics) (*posix.Emulator, *Backend, error) {
	opts, err := EmulatorOptions(cfg, m)
	if err != nil {
		return nil, nil, err
	}

	backend, err := CreateBackend(ctx, &cfg.Backend, opts.CodePage)
	if err != nil {
		return nil, nil, err
	}

	em, err := posix.Init(backend.FS, opts)
	if err != nil {
		if cerr := backend.Close(); cerr != nil {
			logger.Warn("Failed to close backend: %v", cerr)
		}
		return nil, nil, err
	}
	return em, backend, nil
}

// EmulatorOptions translates the encoding, path and link sections into
// posix.Options.
func EmulatorOptions(cfg *Config, m metrics.EmulatorMetrics) (posix.Options, error) {
	mode, err := native.ParseMode(cfg.Encoding.Mode)
	if err != nil {
		return posix.Options{}, err
	}
	cp, err := CodePage(cfg.Encoding.LegacyCodepage)
	if err != nil {
		return posix.Options{}, err
	}

	return posix.Options{
		Mode:        mode,
		MaxPath:     cfg.Paths.MaxPath,
		MaxLinkHops: cfg.Links.MaxHops,
		Mounts:      cfg.Paths.Mounts,
		CodePage:    cp,
		Metrics:     m,
	}, nil
}

// CreateBackend creates a native backend based on configuration.
//
// This factory function uses the Type field to determine which backend
// implementation to create, then decodes the type-specific configuration
// from the corresponding map and passes it to the backend's constructor.
//
// Supported types:
//   - "memory": Emulated volume in process memory
//   - "badger": Emulated volume persisted in BadgerDB
//   - "s3": Amazon S3 or compatible object storage
//   - "host": Host directories mapped to drive letters (linux only)
func CreateBackend(ctx context.Context, cfg *BackendConfig, cp encoding.Encoding) (*Backend, error) {
	var (
		b   *Backend
		err error
	)

	switch cfg.Type {
	case "memory":
		b, err = createMemoryBackend(ctx, cfg, cp)
	case "badger":
		b, err = createBadgerBackend(ctx, cfg, cp)
	case "s3":
		b, err = createS3Backend(ctx, cfg.S3, cp)
	case "host":
		b, err = createHostBackend(cfg.Host, cp)
	default:
		return nil, fmt.Errorf("unknown backend type: %q", cfg.Type)
	}
	if err != nil {
		return nil, err
	}

	if cfg.DisableStat64 {
		b.FS = native.WithoutStat64(b.FS)
	}
	return b, nil
}

// createMemoryBackend creates an emulated volume over an in-memory store.
func createMemoryBackend(ctx context.Context, cfg *BackendConfig, cp encoding.Encoding) (*Backend, error) {
	type MemoryBackendConfig struct {
		Serial uint32 `mapstructure:"serial"`
		Cwd    string `mapstructure:"cwd"`
	}

	var memCfg MemoryBackendConfig
	if err := mapstructure.Decode(cfg.Memory, &memCfg); err != nil {
		return nil, fmt.Errorf("failed to decode memory backend config: %w", err)
	}

	store := memory.New()
	if memCfg.Serial != 0 {
		store = memory.NewWithSerial(memCfg.Serial)
	}

	v, err := volume.New(ctx, store, volume.Options{
		Roots:    cfg.Roots,
		Cwd:      memCfg.Cwd,
		CodePage: cp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create memory volume: %w", err)
	}

	logger.Info("Memory backend initialized: roots=%v", cfg.Roots)
	return &Backend{FS: v, Volume: v}, nil
}

// createBadgerBackend creates an emulated volume persisted in BadgerDB.
func createBadgerBackend(ctx context.Context, cfg *BackendConfig, cp encoding.Encoding) (*Backend, error) {
	type BadgerBackendConfig struct {
		badger.Config `mapstructure:",squash"`
		Cwd           string `mapstructure:"cwd"`
	}

	var badgerCfg BadgerBackendConfig
	if err := mapstructure.Decode(cfg.Badger, &badgerCfg); err != nil {
		return nil, fmt.Errorf("failed to decode badger backend config: %w", err)
	}

	if badgerCfg.DBPath == "" && !badgerCfg.InMemory {
		return nil, fmt.Errorf("badger backend: db_path is required")
	}

	store, err := badger.New(ctx, badgerCfg.Config, metrics.NewBackendMetrics("badger"))
	if err != nil {
		return nil, fmt.Errorf("failed to create badger store: %w", err)
	}

	v, err := volume.New(ctx, store, volume.Options{
		Roots:    cfg.Roots,
		Cwd:      badgerCfg.Cwd,
		CodePage: cp,
	})
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to create badger volume: %w", err)
	}

	logger.Info("Badger backend initialized: path=%s, roots=%v", badgerCfg.DBPath, cfg.Roots)
	return &Backend{FS: v, Volume: v, close: store.Close}, nil
}

// createS3Backend creates an S3 backend.
func createS3Backend(ctx context.Context, options map[string]any, cp encoding.Encoding) (*Backend, error) {
	type S3BackendConfig struct {
		Region          string `mapstructure:"region"`
		Bucket          string `mapstructure:"bucket"`
		Endpoint        string `mapstructure:"endpoint"`
		KeyPrefix       string `mapstructure:"key_prefix"`
		Drive           string `mapstructure:"drive"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		MaxRetries      int    `mapstructure:"max_retries"`

		// RequestsPerSecond throttles HEAD/LIST calls (0 = unlimited)
		RequestsPerSecond uint `mapstructure:"requests_per_second"`
		Burst             uint `mapstructure:"burst"`
	}

	var s3Cfg S3BackendConfig
	if err := mapstructure.Decode(options, &s3Cfg); err != nil {
		return nil, fmt.Errorf("failed to decode S3 backend config: %w", err)
	}

	if s3Cfg.Bucket == "" {
		return nil, fmt.Errorf("S3 backend: bucket is required")
	}
	if s3Cfg.Region == "" {
		return nil, fmt.Errorf("S3 backend: region is required")
	}

	// ========================================================================
	// Step 1: Build AWS Config
	// ========================================================================

	var configOptions []func(*awsConfig.LoadOptions) error
	configOptions = append(configOptions, awsConfig.WithRegion(s3Cfg.Region))

	// Set credentials if provided, otherwise use default credential chain
	if s3Cfg.AccessKeyID != "" && s3Cfg.SecretAccessKey != "" {
		credProvider := credentials.NewStaticCredentialsProvider(
			s3Cfg.AccessKeyID,
			s3Cfg.SecretAccessKey,
			"", // session token (empty for static credentials)
		)
		configOptions = append(configOptions, awsConfig.WithCredentialsProvider(credProvider))
	}

	maxRetries := s3Cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = 3
	}
	configOptions = append(configOptions, awsConfig.WithRetryer(func() aws.Retryer {
		return retry.NewStandard(func(o *retry.StandardOptions) {
			o.MaxAttempts = maxRetries
		})
	}))

	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, configOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	// ========================================================================
	// Step 2: Create S3 Client
	// ========================================================================

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// Custom endpoints (MinIO, Localstack) need path-style addressing
		if s3Cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3Cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	// ========================================================================
	// Step 3: Create S3 Backend
	// ========================================================================

	fs, err := s3backend.New(s3backend.Config{
		Client:    client,
		Bucket:    s3Cfg.Bucket,
		KeyPrefix: s3Cfg.KeyPrefix,
		Drive:     s3Cfg.Drive,
		CodePage:  cp,
		Metrics:   metrics.NewBackendMetrics("s3"),
		Limiter:   ratelimiter.New(s3Cfg.RequestsPerSecond, s3Cfg.Burst),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 backend: %w", err)
	}

	logger.Info("S3 backend initialized: bucket=%s, region=%s, prefix=%s",
		s3Cfg.Bucket, s3Cfg.Region, s3Cfg.KeyPrefix)

	return &Backend{FS: fs}, nil
}

// createHostBackend maps host directories to drive letters.
func createHostBackend(options map[string]any, cp encoding.Encoding) (*Backend, error) {
	type HostBackendConfig struct {
		Drives map[string]string `mapstructure:"drives"`
		Cwd    string            `mapstructure:"cwd"`
	}

	var hostCfg HostBackendConfig
	if err := mapstructure.Decode(options, &hostCfg); err != nil {
		return nil, fmt.Errorf("failed to decode host backend config: %w", err)
	}

	fs, err := host.New(host.Options{
		Drives:   hostCfg.Drives,
		Cwd:      hostCfg.Cwd,
		CodePage: cp,
	})
	if err != nil {
		if errors.Is(err, host.ErrUnsupported) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create host backend: %w", err)
	}

	drives := make([]string, 0, len(hostCfg.Drives))
	for letter, dir := range hostCfg.Drives {
		drives = append(drives, letter+"="+dir)
	}
	logger.Info("Host backend initialized: drives=%s", strings.Join(drives, ","))

	return &Backend{FS: fs}, nil
}
