package shell

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

type Service struct{}

func NewService() *Service {
	return new(Service)
}

// ExecOutput runs command and returns its stdout. Stderr is attached to returned error.
func (s *Service) ExecOutput(ctx context.Context, name string, args ...string) (output []byte, err error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Trace().
		Str("command", name).
		Strs("args", args).
		Msg("ExecOutput")

	if err = cmd.Run(); err != nil {
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return output, fmt.Errorf("ExecOutput: %s %s: %w: %s", name, strings.Join(args, " "), err, errMsg)
		}

		return output, fmt.Errorf("ExecOutput: %s %s: %w", name, strings.Join(args, " "), err)
	}

	return stdout.Bytes(), nil
}
