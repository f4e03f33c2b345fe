package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/marmos91/posixshim/internal/logger"
	"github.com/marmos91/posixshim/pkg/backend/volume"
	"github.com/marmos91/posixshim/pkg/config"
	"github.com/marmos91/posixshim/pkg/errno"
	"github.com/marmos91/posixshim/pkg/native"
	"github.com/marmos91/posixshim/pkg/posix"
	"github.com/marmos91/posixshim/pkg/translate"
)

const usage = `posixshim - POSIX path, stat and errno emulation over native filesystems

Usage:
  posixshim [flags] <command> [args]

Commands:
  init [-force]          Write a default configuration file
  stat <path>            Follow links and print struct stat
  lstat <path>           Print struct stat without following a final link
  stat64 <path>          Like stat with 64-bit size and times
  lstat64 <path>         Like lstat with 64-bit size and times
  realpath <path>        Print the absolute native path of <path>
  convert <path>         Print the native path <path> converts to
  chdir <path>           Change directory and print the new one
  errno <code>           Translate a native code (decimal, 0x hex or HRESULT)
  batch                  Read "<command> <path>" lines from stdin

Flags:
`

func main() {
	os.Exit(realMain())
}

func realMain() int {
	configPath := flag.String("config", "", "Path to config file (default: $XDG_CONFIG_HOME/posixshim/config.yaml)")
	logLevel := flag.String("log-level", "", "Override log level (DEBUG, INFO, WARN, ERROR)")
	seed := flag.Bool("seed", false, "Populate an emulated volume with a sample tree")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return 2
	}

	// Commands that do not need a backend
	switch args[0] {
	case "init":
		return runInit(args[1:])
	case "errno":
		return runErrno(args[1:])
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *logLevel != "" {
		cfg.Logging.Level = strings.ToUpper(*logLevel)
	}

	closeLog, err := configureLogger(&cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}
	defer closeLog()

	// Create cancellable context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	metricsResult := config.InitializeMetrics(cfg)

	em, backend, err := config.InitEmulator(ctx, cfg, metricsResult.Emulator)
	if err != nil {
		logger.Error("Failed to create emulator: %v", err)
		return 1
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("Failed to close backend: %v", err)
		}
	}()

	logger.Debug("Emulator ready: mode=%s backend=%s", em.Mode(), cfg.Backend.Type)

	if *seed {
		if backend.Volume == nil {
			logger.Error("-seed needs an emulated volume backend (memory or badger), got %q", cfg.Backend.Type)
			return 1
		}
		if err := createInitialStructure(ctx, backend.Volume); err != nil {
			logger.Error("Failed to create initial structure: %v", err)
			return 1
		}
		n, err := backend.Volume.Count(ctx)
		if err != nil {
			logger.Warn("Failed to count volume entries: %v", err)
		}
		logger.Info("Initial file structure created: %d entries", n)
	}

	ctx = posix.NewContext(ctx, em.NewCaller())

	if args[0] == "batch" {
		if metricsResult.Server != nil {
			go func() {
				if err := metricsResult.Server.Start(ctx); err != nil {
					logger.Error("Metrics server error: %v", err)
				}
			}()
		}
		code := runBatch(ctx, os.Stdin, os.Stdout)
		if metricsResult.Server != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = metricsResult.Server.Stop(shutdownCtx)
			shutdownCancel()
		}
		return code
	}

	if len(args) != 2 {
		flag.Usage()
		return 2
	}
	if err := run(ctx, os.Stdout, args[0], args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "posixshim: %v\n", err)
		return 1
	}
	return 0
}

// errNoCaller is returned when a command runs without a caller in its
// context.
var errNoCaller = errors.New("no posix caller in context")

// run executes one path command for the caller carried by ctx and prints its
// result to w.
func run(ctx context.Context, w io.Writer, cmd, path string) error {
	c, ok := posix.FromContext(ctx)
	if !ok {
		return errNoCaller
	}

	switch cmd {
	case "stat", "lstat":
		stat := c.Stat
		if cmd == "lstat" {
			stat = c.Lstat
		}
		st, err := stat(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "dev=%d ino=%d mode=%#o nlink=%d size=%d atime=%d mtime=%d ctime=%d\n",
			st.Dev, st.Ino, st.Mode, st.Nlink, st.Size, st.Atime, st.Mtime, st.Ctime)

	case "stat64", "lstat64":
		stat := c.Stat64
		if cmd == "lstat64" {
			stat = c.Lstat64
		}
		st, err := stat(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "dev=%d ino=%d mode=%#o nlink=%d size=%d atime=%d mtime=%d ctime=%d\n",
			st.Dev, st.Ino, st.Mode, st.Nlink, st.Size, st.Atime, st.Mtime, st.Ctime)

	case "realpath":
		p, err := c.Realpath(ctx, path)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, p)

	case "convert":
		p, err := c.NativePath(ctx, path, false)
		if err != nil {
			return err
		}
		width := "narrow"
		if p.IsWide() {
			width = "wide"
		}
		fmt.Fprintf(w, "%s (%s, %d units)\n", p, width, p.Len())

	case "chdir":
		if err := c.Chdir(ctx, path); err != nil {
			return err
		}
		p, err := c.Realpath(ctx, ".")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, p)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// runBatch reads "<command> <path>" lines from r until EOF or cancellation.
// Failures are reported inline; the exit code is 1 if any line failed.
func runBatch(ctx context.Context, r io.Reader, w io.Writer) int {
	c, ok := posix.FromContext(ctx)
	if !ok {
		logger.Error("Batch: %v", errNoCaller)
		return 1
	}

	code := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			logger.Info("Batch interrupted")
			return 1
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, path, _ := strings.Cut(line, " ")
		if err := run(ctx, w, cmd, strings.TrimSpace(path)); err != nil {
			fmt.Fprintf(w, "error: %v (errno %d)\n", err, c.Errno())
			code = 1
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Failed to read input: %v", err)
		return 1
	}
	return code
}

func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing configuration file")
	_ = fs.Parse(args)

	path, err := config.InitConfig(*force)
	if err != nil {
		fmt.Fprintf(os.Stderr, "posixshim: %v\n", err)
		return 1
	}
	fmt.Printf("Configuration written to %s\n", path)
	return 0
}

// runErrno prints the errno a native code translates to. Values above the
// 16-bit range are read as HRESULTs.
func runErrno(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: posixshim errno <code>")
		return 2
	}
	v, err := strconv.ParseUint(args[0], 0, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "posixshim: invalid code %q\n", args[0])
		return 2
	}

	if v > 0xFFFF {
		h := native.HRESULT(v)
		e, mapped := translate.HRESULTErrno(h)
		fmt.Println(describe(fmt.Sprintf("HRESULT 0x%08X", uint32(h)), e, mapped))
		return 0
	}

	c := native.Code(v)
	e, mapped := translate.Errno(c)
	fmt.Println(describe(fmt.Sprintf("%s (%d)", c.Name(), uint32(c)), e, mapped))
	if h, ok := translate.HostErrno(c); ok {
		fmt.Printf("host: %s (%d)\n", h.Name(), int(h))
	}
	return 0
}

func describe(from string, e errno.Errno, mapped bool) string {
	s := fmt.Sprintf("%s -> %s (%d): %s", from, e.Name(), int(e), errno.Strerror(e))
	if !mapped {
		s += " [default]"
	}
	return s
}

// configureLogger applies the logging section. The returned function closes
// a log file, if one was opened.
func configureLogger(cfg *config.LoggingConfig) (func(), error) {
	logger.SetLevel(cfg.Level)
	logger.SetFormat(cfg.Format)

	switch cfg.Output {
	case "stdout":
		logger.SetOutput(os.Stdout)
	case "stderr":
		logger.SetOutput(os.Stderr)
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.SetOutput(f)
		return func() { _ = f.Close() }, nil
	}
	return func() {}, nil
}

// createInitialStructure seeds v with a small tree exercising files,
// directories, links and the special cases of the stat emulation.
func createInitialStructure(ctx context.Context, v *volume.Volume) error {
	now := time.Now()

	dirs := []string{
		`C:\Users\Public\Documents`,
		`C:\Temp`,
		`C:\Program Files\Tools`,
	}
	for _, d := range dirs {
		if err := v.MkdirAll(ctx, d); err != nil {
			return fmt.Errorf("failed to create %s: %w", d, err)
		}
	}

	files := []struct {
		path string
		size int64
	}{
		{`C:\Users\Public\Documents\readme.txt`, 44},
		{`C:\Users\Public\Documents\notes.txt`, 52},
		{`C:\Program Files\Tools\tool.exe`, 4096},
		{`C:\Temp\large.bin`, 5 << 30},
	}
	for _, f := range files {
		if err := v.CreateFile(ctx, f.path, f.size, now); err != nil && !errors.Is(err, native.ErrorAlreadyExists) {
			return fmt.Errorf("failed to create %s: %w", f.path, err)
		}
	}

	if err := v.SetAttributes(ctx, `C:\Users\Public\Documents\notes.txt`, native.FileAttributeReadonly); err != nil {
		return fmt.Errorf("failed to mark notes.txt read-only: %w", err)
	}

	links := []struct {
		target, path string
	}{
		{`Users\Public\Documents`, `C:\docs`},
		{`C:\Temp`, `C:\tmp`},
		{`C:\nowhere`, `C:\dangling`},
	}
	for _, l := range links {
		if err := v.Symlink(ctx, l.target, l.path); err != nil && !errors.Is(err, native.ErrorAlreadyExists) {
			return fmt.Errorf("failed to create link %s: %w", l.path, err)
		}
	}

	return nil
}
