/*
File    : lux/std/module.go
Project : Lux language interpreter
*/

// Package std - module.go
// Module path resolution against the host filesystem, shared by the
// type checker and the evaluator so both see the same file for an
// import path.
package std

import (
	"os"
	"path/filepath"
)

// ResolveModule resolves an import path P against the search order:
// <currentDir>/P.lux, lib/P.lux, tools/P.lux, P.lux. The first path
// that exists wins. A currentDir of "" skips the first candidate. The
// boolean result reports whether any candidate existed.
func ResolveModule(currentDir, path string) (string, bool) {
	candidates := make([]string, 0, 4)
	if currentDir != "" {
		candidates = append(candidates, filepath.Join(currentDir, path+".lux"))
	}
	candidates = append(candidates,
		filepath.Join("lib", path+".lux"),
		filepath.Join("tools", path+".lux"),
		path+".lux",
	)

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
