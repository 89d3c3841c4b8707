//go:build linux

package sink

import (
	"os/exec"
	"syscall"
)

// setPlatformSpecificAttrs kills the player with the notifier if the notifier dies first.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
