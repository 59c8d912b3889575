package commands

import (
	"os"
	"path/filepath"
	"sort"
)

// pluginExt is the file extension a loadable command module carries on
// disk, realizing spec §4.7's "command module file named V.<ext>" with the
// Go-native dynamic-library convention (Design Notes §9, option a).
const pluginExt = ".so"

// Dispatcher resolves a verb to a Handler and memoizes the result for the
// remainder of the process (spec §4.7 Caching).
type Dispatcher struct {
	dir      string
	builtins map[string]Handler
	cache    map[string]Handler
}

// NewDispatcher creates a dispatcher that looks for on-disk command modules
// under dir (created on demand if missing, per spec §4.7) and falls back to
// the compiled-in builtin registry.
func NewDispatcher(dir string) *Dispatcher {
	if dir == "" {
		dir = "commands"
	}
	_ = os.MkdirAll(dir, 0o755)

	return &Dispatcher{
		dir:      dir,
		builtins: staticBuiltins(),
		cache:    make(map[string]Handler),
	}
}

// Resolve looks up the handler for verb: first the memoization cache, then
// an on-disk commands/<verb>.so plugin (which may shadow a builtin of the
// same name), then the compiled-in builtin registry. The chosen handler is
// cached for subsequent calls. ok is false when no handler resolves verb at
// all.
func (d *Dispatcher) Resolve(verb string) (Handler, bool) {
	if h, ok := d.cache[verb]; ok {
		return h, true
	}

	if h, err := loadPlugin(d.dir, verb); err == nil {
		d.cache[verb] = h
		return h, true
	}

	if h, ok := d.builtins[verb]; ok {
		d.cache[verb] = h
		return h, true
	}

	return nil, false
}

// Invoke resolves verb and, if found, calls its handler with tokens and api.
// found is false when no handler resolves verb, in which case the caller
// (the control-flow executor) reports an unresolved-verb syntax error.
func (d *Dispatcher) Invoke(verb string, tokens []string, api *HostAPI) (success bool, found bool) {
	handler, ok := d.Resolve(verb)
	if !ok {
		return false, false
	}
	return handler(tokens, api), true
}

// Verbs lists every verb currently resolvable: the compiled-in registry
// plus any command module files on disk, deduplicated and sorted. This
// backs the `spoke commands` CLI subcommand and restores, in spirit, what
// original_source/Interpreter/commands/Counter.py did by listing the
// contents of the commands directory.
func (d *Dispatcher) Verbs() []string {
	seen := make(map[string]bool, len(d.builtins))
	for name := range d.builtins {
		seen[name] = true
	}

	entries, err := os.ReadDir(d.dir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if filepath.Ext(name) != pluginExt {
				continue
			}
			seen[name[:len(name)-len(pluginExt)]] = true
		}
	}

	verbs := make([]string, 0, len(seen))
	for name := range seen {
		verbs = append(verbs, name)
	}
	sort.Strings(verbs)
	return verbs
}
