package main

import (
	"os"

	"esm-resolve-go/resolver"
)

// osFsProbe implements resolver.FsProbe over the real filesystem, routing
// every path through DenormalizePathForOS so the resolver's internal
// posix-style paths map correctly onto a Windows host, the same boundary
// pathutils.go already draws for path bookkeeping elsewhere in this repo.
type osFsProbe struct{}

func (osFsProbe) Stat(path string) resolver.StatResult {
	info, err := os.Stat(DenormalizePathForOS(path))
	if err != nil {
		return resolver.StatMissing
	}
	if info.IsDir() {
		return resolver.StatDirectory
	}
	return resolver.StatFile
}
