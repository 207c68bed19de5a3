//go:build unix

package launcher

import (
	"fmt"
	"syscall"
)

// replaceProcess swaps in the new program image. argv is forwarded
// verbatim, including argv[0].
func replaceProcess(path string, argv []string, environ []string) error {
	if err := syscall.Exec(path, argv, environ); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
