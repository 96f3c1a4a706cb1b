package main

import (
	"path/filepath"
	"sync"

	"esm-resolve-go/resolver"
)

// osRealpath implements resolver.RealpathResolver with filepath.EvalSymlinks,
// denormalizing to the OS path form at the boundary the same way osFsProbe
// does.
type osRealpath struct{}

func (osRealpath) Realpath(path string, cache resolver.RealpathCache) (string, error) {
	if cached, ok := cache.Get(path); ok {
		return cached, nil
	}
	resolved, err := filepath.EvalSymlinks(DenormalizePathForOS(path))
	if err != nil {
		return "", err
	}
	canonical := NormalizePathForInternal(resolved)
	cache.Set(path, canonical)
	return canonical, nil
}

// memRealpathCache is a process-lifetime, concurrency-safe realpath memo,
// the same sync.Map-shaped per-resolver caching approach as
// aliasesCache in resolveImports.go.
type memRealpathCache struct {
	mu sync.RWMutex
	m  map[string]string
}

func newRealpathCache() *memRealpathCache {
	return &memRealpathCache{m: make(map[string]string)}
}

func (c *memRealpathCache) Get(path string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[path]
	return v, ok
}

func (c *memRealpathCache) Set(path, canonical string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[path] = canonical
}
