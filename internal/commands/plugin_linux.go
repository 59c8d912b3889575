//go:build linux

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"plugin"
)

// loadPlugin realizes spec §9's Design Note option (a): a command module is
// a Go plugin (commands/<verb>.so) exposing a `Run` symbol matching the
// Handler contract. It is loaded by file path rather than by package name
// lookup on the standard search path, as spec §4.7 Caching requires ("must
// use a module-loading mechanism that does not conflict with the host
// language's own standard library namespace").
func loadPlugin(dir, verb string) (Handler, error) {
	path := filepath.Join(dir, verb+pluginExt)
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading command %s: %w", verb, err)
	}

	sym, err := p.Lookup("Run")
	if err != nil {
		return nil, fmt.Errorf("command %s.so missing 'Run' symbol: %w", verb, err)
	}

	handler, ok := sym.(func([]string, *HostAPI) bool)
	if !ok {
		return nil, fmt.Errorf("command %s.so's Run symbol has the wrong signature", verb)
	}

	return Handler(handler), nil
}
