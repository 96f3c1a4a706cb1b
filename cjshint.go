package main

import (
	"os"
	"path/filepath"
	"strings"
)

// siblingExtensionHinter implements resolver.CJSHinter, generalizing
// addFilePathToFilesAndExtensions/getModulePathWithExtension: where that
// pair precomputes a stem-to-extension map across the whole project up
// front, this scans just the failing specifier's own directory on demand,
// since a resolver failure is a rare, latency-tolerant path rather than a
// bulk-analysis hot loop.
type siblingExtensionHinter struct{}

var hintExtensions = []string{".js", ".mjs", ".cjs", ".json", ".node", ".ts", ".tsx", ".jsx"}

func (siblingExtensionHinter) Suggest(failedPath string) (string, bool) {
	dir := filepath.Dir(DenormalizePathForOS(failedPath))
	wantBase := strings.TrimSuffix(filepath.Base(failedPath), filepath.Ext(failedPath))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := filepath.Ext(name)
		base := strings.TrimSuffix(name, ext)

		if !isHintExtension(ext) {
			continue
		}

		if base == wantBase {
			return "./" + name, true
		}
		if strings.EqualFold(base, wantBase) {
			return "./" + name, true
		}
	}

	return "", false
}

func isHintExtension(ext string) bool {
	for _, e := range hintExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
