//go:build !unix

package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// replaceProcess approximates exec where process-image replacement is
// unavailable: run the command as a child with inherited streams and
// environment, then exit with its status.
func replaceProcess(path string, argv []string, environ []string) error {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    environ,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	os.Exit(0)
	return nil
}
