//go:build !linux

package commands

import "fmt"

// loadPlugin is a stub on platforms where Go's plugin package is
// unsupported (it requires ELF + cgo linking, available only on Linux).
// Builtins and, on Linux, on-disk command modules remain the two
// resolution paths spec §4.7 requires; this build simply only has the
// former.
func loadPlugin(dir, verb string) (Handler, error) {
	return nil, fmt.Errorf("dynamic command modules are not supported on this platform")
}
