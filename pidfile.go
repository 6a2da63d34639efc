package aura

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
)

var (
	ErrNotRunning   = errors.New("bot is not running")
	ErrStalePIDFile = errors.New("pid file points at another program")
)

// WritePIDFile records the current process so `stop` can find it. The
// returned func removes the file.
func WritePIDFile(path string) (func(), error) {
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("write pid file: %w", err)
	}
	return func() { _ = os.Remove(path) }, nil
}

func ReadPIDFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotRunning
		}
		return 0, fmt.Errorf("read pid file: %w", err)
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("pid file %s is corrupt", path)
	}
	return pid, nil
}

// Stop asks the process recorded in path to shut down. On Linux it refuses
// to signal a pid whose command line does not name this executable.
func Stop(path string) (int, error) {
	pid, err := ReadPIDFile(path)
	if err != nil {
		return 0, err
	}

	if err := checkPIDOwner(pid); err != nil {
		if errors.Is(err, ErrNotRunning) {
			_ = os.Remove(path)
		}
		return pid, err
	}

	proc, err := os.FindProcess(pid)
	if err != nil {
		return pid, err
	}
	if err := proc.Signal(syscall.SIGTERM); err != nil {
		if errors.Is(err, os.ErrProcessDone) || errors.Is(err, syscall.ESRCH) {
			_ = os.Remove(path)
			return pid, ErrNotRunning
		}
		return pid, fmt.Errorf("signal %d: %w", pid, err)
	}
	return pid, nil
}

func checkPIDOwner(pid int) error {
	if runtime.GOOS != "linux" {
		return nil
	}

	raw, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "cmdline"))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotRunning
		}
		return fmt.Errorf("inspect pid %d: %w", pid, err)
	}

	argv0, _, _ := strings.Cut(string(raw), "\x00")
	self, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	if filepath.Base(argv0) != filepath.Base(self) {
		return fmt.Errorf("%w: pid %d is %s", ErrStalePIDFile, pid, filepath.Base(argv0))
	}
	return nil
}
