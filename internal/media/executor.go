package media

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// maxStderrReport bounds how much captured ffmpeg stderr ends up in an error
// message.
const maxStderrReport = 512

// runFFmpeg executes the binary with the given arguments, capturing stderr
// for error reporting. ffmpeg's own output is suppressed on success.
func runFFmpeg(ctx context.Context, bin string, args []string) error {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		msg := tailOf(stderrBuf.String())
		if msg == "" {
			return fmt.Errorf("%s: %w", bin, err)
		}
		return fmt.Errorf("%s: %w: %s", bin, err, msg)
	}
	return nil
}

// tailOf returns the trailing portion of captured stderr, trimmed for error
// messages.
func tailOf(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxStderrReport {
		s = s[len(s)-maxStderrReport:]
	}
	return s
}
