package launcher

import (
	"errors"
	"fmt"
	"os/exec"
)

// Exec hands the process over to argv. On success it never returns:
// the replacement inherits this process's environment, standard streams
// and open file descriptors, and its exit code becomes the container's.
// An error comes back only when the handoff itself fails.
func Exec(argv []string, environ []string) error {
	if len(argv) == 0 {
		return errors.New("no command provided")
	}
	path, err := exec.LookPath(argv[0])
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return fmt.Errorf("looking up %q: %w", argv[0], err)
	}
	return replaceProcess(path, argv, environ)
}
