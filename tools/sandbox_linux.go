//go:build linux

package tools

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"
	"unsafe"

	"github.com/reusee/taiact/logs"
	"golang.org/x/sys/unix"
)

// applySandbox keeps reads unrestricted and allows writes beneath dir,
// the temp dir and /dev (for /dev/null and terminals).
func applySandbox(dir string, logger logs.Logger) error {
	abi, _, errNo := unix.Syscall(
		unix.SYS_LANDLOCK_CREATE_RULESET,
		0, 0, unix.LANDLOCK_CREATE_RULESET_VERSION,
	)
	if errNo != 0 {
		switch errNo {
		case unix.ENOSYS, unix.EOPNOTSUPP, unix.ENOPKG, unix.EINVAL:
			logger.Warn("landlock unavailable, running without filesystem sandbox",
				"error", errNo,
			)
			return nil
		}
		return fmt.Errorf("landlock abi version: %w", errNo)
	}
	if abi < 1 {
		logger.Warn("landlock abi 0, running without filesystem sandbox")
		return nil
	}

	readRights := uint64(unix.LANDLOCK_ACCESS_FS_EXECUTE |
		unix.LANDLOCK_ACCESS_FS_READ_FILE |
		unix.LANDLOCK_ACCESS_FS_READ_DIR)
	writeRights := uint64(unix.LANDLOCK_ACCESS_FS_WRITE_FILE |
		unix.LANDLOCK_ACCESS_FS_REMOVE_DIR |
		unix.LANDLOCK_ACCESS_FS_REMOVE_FILE |
		unix.LANDLOCK_ACCESS_FS_MAKE_CHAR |
		unix.LANDLOCK_ACCESS_FS_MAKE_DIR |
		unix.LANDLOCK_ACCESS_FS_MAKE_REG |
		unix.LANDLOCK_ACCESS_FS_MAKE_SOCK |
		unix.LANDLOCK_ACCESS_FS_MAKE_FIFO |
		unix.LANDLOCK_ACCESS_FS_MAKE_BLOCK |
		unix.LANDLOCK_ACCESS_FS_MAKE_SYM)
	if abi >= 2 {
		writeRights |= unix.LANDLOCK_ACCESS_FS_REFER
	}
	if abi >= 3 {
		writeRights |= unix.LANDLOCK_ACCESS_FS_TRUNCATE
	}

	attr := unix.LandlockRulesetAttr{
		Access_fs: readRights | writeRights,
	}
	ruleset, _, errNo := unix.Syscall(
		unix.SYS_LANDLOCK_CREATE_RULESET,
		uintptr(unsafe.Pointer(&attr)),
		unsafe.Sizeof(attr),
		0,
	)
	if errNo != 0 {
		return fmt.Errorf("landlock create ruleset: %w", errNo)
	}
	defer unix.Close(int(ruleset))

	addRule := func(path string, access uint64) error {
		fd, err := unix.Open(path, unix.O_PATH|unix.O_CLOEXEC, 0)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer unix.Close(fd)
		rule := unix.LandlockPathBeneathAttr{
			Parent_fd:      int32(fd),
			Allowed_access: access,
		}
		if _, _, errNo := unix.Syscall(
			unix.SYS_LANDLOCK_ADD_RULE,
			ruleset,
			unix.LANDLOCK_RULE_PATH_BENEATH,
			uintptr(unsafe.Pointer(&rule)),
		); errNo != 0 {
			return fmt.Errorf("landlock rule for %s: %w", path, errNo)
		}
		return nil
	}

	if err := addRule("/", readRights); err != nil {
		return err
	}
	if err := addRule(dir, readRights|writeRights); err != nil {
		return err
	}
	for _, path := range []string{os.TempDir(), "/dev"} {
		if err := addRule(path, readRights|writeRights); err != nil && !errors.Is(err, unix.ENOENT) {
			return err
		}
	}

	// landlock domains are per thread, so every runtime thread is restricted
	syscall6 := syscall.AllThreadsSyscall6
	if _, _, errNo := syscall6(
		unix.SYS_PRCTL,
		unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0, 0,
	); errNo != 0 {
		if errNo != unix.ENOTSUP {
			return fmt.Errorf("prctl no_new_privs: %w", errNo)
		}
		// cgo binaries: only the calling thread, and the caller stays on it.
		// Tools run from the caller's goroutine, so their writes and
		// subprocesses are covered.
		runtime.LockOSThread()
		syscall6 = unix.Syscall6
		if err := unix.Prctl(unix.PR_SET_NO_NEW_PRIVS, 1, 0, 0, 0); err != nil {
			return fmt.Errorf("prctl no_new_privs: %w", err)
		}
	}
	if _, _, errNo := syscall6(
		unix.SYS_LANDLOCK_RESTRICT_SELF,
		ruleset,
		0, 0, 0, 0, 0,
	); errNo != 0 {
		return fmt.Errorf("landlock restrict self: %w", errNo)
	}

	logger.Info("filesystem sandbox applied",
		"abi", abi,
		"write_scope", dir,
	)
	return nil
}
