//go:build !linux

package sink

import "os/exec"

// Pdeathsig is Linux only, elsewhere the player stops with the context of exec.CommandContext.
func setPlatformSpecificAttrs(_ *exec.Cmd) {}
