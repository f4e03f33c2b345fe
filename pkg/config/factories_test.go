package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/posix"
)

func TestCodePage(t *testing.T) {
	cp, err := CodePage("windows-1252")
	if err != nil {
		t.Fatalf("Failed to resolve windows-1252: %v", err)
	}

	b, err := cp.NewEncoder().Bytes([]byte("é"))
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if len(b) != 1 || b[0] != 0xE9 {
		t.Errorf("Expected single byte 0xE9, got % X", b)
	}

	if _, err := CodePage("no-such-codepage"); err == nil {
		t.Error("Expected error for unknown code page")
	}
}

func TestCreateBackend_Memory(t *testing.T) {
	ctx := context.Background()
	cfg := &BackendConfig{
		Type:  "memory",
		Roots: []string{`C:\`, `D:\`},
		Memory: map[string]any{
			"serial": 0xBEEF,
		},
	}

	b, err := CreateBackend(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create memory backend: %v", err)
	}
	defer func() { _ = b.Close() }()

	if b.Volume == nil {
		t.Fatal("Expected memory backend to expose its volume")
	}

	fi, err := b.FS.Stat(ctx, native.WideString(`D:\`))
	if err != nil {
		t.Fatalf("Failed to stat D:\\: %v", err)
	}
	if !fi.Attributes.IsDir() {
		t.Error("Expected D:\\ to be a directory")
	}
	if fi.VolumeSerial != 0xBEEF {
		t.Errorf("Expected volume serial 0xBEEF, got 0x%X", fi.VolumeSerial)
	}
}

func TestCreateBackend_MemoryInvalidRoot(t *testing.T) {
	cfg := &BackendConfig{
		Type:   "memory",
		Roots:  []string{`C:\Windows`},
		Memory: map[string]any{},
	}

	if _, err := CreateBackend(context.Background(), cfg, nil); err == nil {
		t.Fatal("Expected error for a root that is not a drive root")
	}
}

func TestCreateBackend_Badger(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "volume")
	cfg := &BackendConfig{
		Type:  "badger",
		Roots: []string{`C:\`},
		Badger: map[string]any{
			"db_path": dbPath,
		},
	}

	b, err := CreateBackend(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create badger backend: %v", err)
	}

	if err := b.Volume.CreateFile(ctx, `C:\kept.txt`, 5, time.Unix(1700000000, 0)); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Failed to close badger backend: %v", err)
	}

	// Reopen and check the entry survived
	b, err = CreateBackend(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Failed to reopen badger backend: %v", err)
	}
	defer func() { _ = b.Close() }()

	fi, err := b.FS.Stat(ctx, native.WideString(`C:\kept.txt`))
	if err != nil {
		t.Fatalf("Failed to stat persisted file: %v", err)
	}
	if fi.Size != 5 {
		t.Errorf("Expected size 5, got %d", fi.Size)
	}
}

func TestCreateBackend_BadgerMissingPath(t *testing.T) {
	cfg := &BackendConfig{
		Type:   "badger",
		Roots:  []string{`C:\`},
		Badger: map[string]any{},
	}

	_, err := CreateBackend(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("Expected error for missing db_path")
	}
	if !strings.Contains(err.Error(), "db_path is required") {
		t.Errorf("Expected 'db_path is required' error, got: %v", err)
	}
}

func TestCreateBackend_S3MissingBucket(t *testing.T) {
	cfg := &BackendConfig{
		Type: "s3",
		S3: map[string]any{
			"region": "us-east-1",
		},
	}

	_, err := CreateBackend(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("Expected error for missing bucket")
	}
	if !strings.Contains(err.Error(), "bucket is required") {
		t.Errorf("Expected 'bucket is required' error, got: %v", err)
	}
}

func TestCreateBackend_S3MissingRegion(t *testing.T) {
	cfg := &BackendConfig{
		Type: "s3",
		S3: map[string]any{
			"bucket": "volumes",
		},
	}

	_, err := CreateBackend(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("Expected error for missing region")
	}
	if !strings.Contains(err.Error(), "region is required") {
		t.Errorf("Expected 'region is required' error, got: %v", err)
	}
}

func TestCreateBackend_S3(t *testing.T) {
	// Building the client does not touch the network
	cfg := &BackendConfig{
		Type: "s3",
		S3: map[string]any{
			"bucket":              "volumes",
			"region":              "us-east-1",
			"endpoint":            "http://localhost:9000",
			"access_key_id":       "minio",
			"secret_access_key":   "minio123",
			"key_prefix":          "c/",
			"requests_per_second": 50,
		},
	}

	b, err := CreateBackend(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create S3 backend: %v", err)
	}
	if b.FS == nil {
		t.Fatal("Expected non-nil backend")
	}
	if b.Volume != nil {
		t.Error("S3 backend should not expose a volume")
	}
}

func TestCreateBackend_Host(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("host backend is linux only")
	}
	ctx := context.Background()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "hello.txt"), []byte("hi"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	cfg := &BackendConfig{
		Type: "host",
		Host: map[string]any{
			"drives": map[string]string{"C": dir},
		},
	}

	b, err := CreateBackend(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create host backend: %v", err)
	}

	fi, err := b.FS.Stat(ctx, native.WideString(`C:\hello.txt`))
	if err != nil {
		t.Fatalf("Failed to stat host file: %v", err)
	}
	if fi.Size != 2 {
		t.Errorf("Expected size 2, got %d", fi.Size)
	}
}

func TestCreateBackend_HostNoDrives(t *testing.T) {
	cfg := &BackendConfig{
		Type: "host",
		Host: map[string]any{},
	}

	if _, err := CreateBackend(context.Background(), cfg, nil); err == nil {
		t.Fatal("Expected error for host backend without drives")
	}
}

func TestCreateBackend_DisableStat64(t *testing.T) {
	cfg := &BackendConfig{
		Type:          "memory",
		Roots:         []string{`C:\`},
		DisableStat64: true,
		Memory:        map[string]any{},
	}

	b, err := CreateBackend(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create backend: %v", err)
	}
	if _, ok := b.FS.(native.Stat64FS); ok {
		t.Error("Expected the 64-bit metadata call to be hidden")
	}
}

func TestCreateBackend_UnknownType(t *testing.T) {
	cfg := &BackendConfig{Type: "unknown"}

	_, err := CreateBackend(context.Background(), cfg, nil)
	if err == nil {
		t.Fatal("Expected error for unknown backend type")
	}
	if !strings.Contains(err.Error(), "unknown backend type") {
		t.Errorf("Expected 'unknown backend type' error, got: %v", err)
	}
}

func TestEmulatorOptions(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Encoding.Mode = "legacy"
	cfg.Links.MaxHops = 1

	opts, err := EmulatorOptions(cfg, nil)
	if err != nil {
		t.Fatalf("Failed to build emulator options: %v", err)
	}
	if opts.Mode != native.ModeLegacy {
		t.Errorf("Expected legacy mode, got %v", opts.Mode)
	}
	if opts.MaxLinkHops != 1 {
		t.Errorf("Expected MaxLinkHops 1, got %d", opts.MaxLinkHops)
	}
	if opts.CodePage == nil {
		t.Error("Expected a code page")
	}
}

func TestCreateEmulator(t *testing.T) {
	ctx := context.Background()
	cfg := GetDefaultConfig()

	em, b, err := CreateEmulator(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Failed to create emulator: %v", err)
	}
	defer func() { _ = b.Close() }()

	if err := b.Volume.MkdirAll(ctx, `C:\Users\ann`); err != nil {
		t.Fatalf("Failed to seed volume: %v", err)
	}

	c := em.NewCaller()
	st, err := c.Stat(ctx, "C:/Users/ann")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !st.IsDir() {
		t.Error("Expected a directory")
	}

	_, err = c.Stat(ctx, "C:/Users/bob")
	if !errors.Is(err, errno.ENOENT) {
		t.Errorf("Expected ENOENT, got %v", err)
	}
	if c.Errno() != errno.ENOENT {
		t.Errorf("Expected caller errno ENOENT, got %v", c.Errno())
	}
}

func TestInitEmulator(t *testing.T) {
	ctx := context.Background()
	cfg := GetDefaultConfig()
	cfg.Encoding.Mode = "utf8"

	em, b, err := InitEmulator(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Failed to initialize emulator: %v", err)
	}
	defer func() { _ = b.Close() }()

	if posix.Default() != em {
		t.Error("Expected InitEmulator to install the process-wide emulator")
	}
	if em.Mode() != native.ModeUTF8 {
		t.Errorf("Expected mode utf8, got %s", em.Mode())
	}

	cfg.Encoding.Mode = "legacy"
	if _, _, err := InitEmulator(ctx, cfg, nil); !errors.Is(err, posix.ErrAlreadyInitialized) {
		t.Fatalf("Expected ErrAlreadyInitialized, got %v", err)
	}
	if posix.Default().Mode() != native.ModeUTF8 {
		t.Error("Expected the first emulator's mode to be kept")
	}
}
