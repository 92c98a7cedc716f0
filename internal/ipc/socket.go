package ipc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// SocketPath resolves the window manager's IPC socket. The environment
// wins (I3SOCK, then SWAYSOCK); otherwise the running compositor is
// asked directly via --get-socketpath.
func SocketPath(ctx context.Context) (string, error) {
	for _, env := range []string{"I3SOCK", "SWAYSOCK"} {
		if path := strings.TrimSpace(os.Getenv(env)); path != "" {
			return path, nil
		}
	}

	var errs []error
	for _, wm := range []string{"i3", "sway"} {
		out, err := exec.CommandContext(ctx, wm, "--get-socketpath").Output()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s --get-socketpath: %w", wm, err))
			continue
		}
		if path := strings.TrimSpace(string(out)); path != "" {
			return path, nil
		}
		errs = append(errs, fmt.Errorf("%s --get-socketpath returned nothing", wm))
	}
	return "", fmt.Errorf("ipc: no socket path: set I3SOCK or SWAYSOCK (%w)", errors.Join(errs...))
}
