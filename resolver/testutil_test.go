package resolver

import "strings"

// fakeFS is an in-memory FsProbe/RealpathResolver/PackageConfigReader
// stack for exercising C1-C10 without touching the real filesystem, the
// same small-explicit-fixtures-over-mocks habit resolveImports_test.go
// uses to drive its own resolver.
type fakeFS struct {
	files   map[string]bool // path -> is a regular file
	dirs    map[string]bool // path -> is a directory
	configs map[string]*PackageConfig
	symlink map[string]string // path -> canonical target
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:   map[string]bool{},
		dirs:    map[string]bool{},
		configs: map[string]*PackageConfig{},
		symlink: map[string]string{},
	}
}

func (f *fakeFS) addFile(path string) *fakeFS {
	f.files[path] = true
	return f
}

func (f *fakeFS) addDir(path string) *fakeFS {
	f.dirs[path] = true
	return f
}

func (f *fakeFS) Stat(path string) StatResult {
	if f.files[path] {
		return StatFile
	}
	if f.dirs[path] {
		return StatDirectory
	}
	return StatMissing
}

func (f *fakeFS) Realpath(path string, cache RealpathCache) (string, error) {
	if cached, ok := cache.Get(path); ok {
		return cached, nil
	}
	target := path
	if t, ok := f.symlink[path]; ok {
		target = t
	}
	cache.Set(path, target)
	return target, nil
}

func (f *fakeFS) Read(pjsonPath string) (*PackageConfig, error) {
	if cfg, ok := f.configs[pjsonPath]; ok {
		return cfg, nil
	}
	return &PackageConfig{Exists: false, PjsonPath: pjsonPath}, nil
}

type fakeCache struct{ m map[string]string }

func newFakeCache() *fakeCache { return &fakeCache{m: map[string]string{}} }

func (c *fakeCache) Get(path string) (string, bool) { v, ok := c.m[path]; return v, ok }
func (c *fakeCache) Set(path, canonical string)      { c.m[path] = canonical }

type fakeBuiltins struct{ names map[string]bool }

func (b fakeBuiltins) IsBuiltin(name string) bool { return b.names[name] }

type fakeFormat struct{}

func (fakeFormat) Probe(u string, _ ConditionSet) string {
	if strings.HasSuffix(u, ".mjs") {
		return "module"
	}
	if strings.HasSuffix(u, ".cjs") {
		return "commonjs"
	}
	return ""
}

func newTestResolver(fs *fakeFS) *Resolver {
	r := New(Options{}, fs, fs, fs, fakeBuiltins{names: map[string]bool{}}, fakeFormat{}, newFakeCache())
	r.Deprecate = NoopDeprecationSink{}
	r.Watch = NoopWatchReporter{}
	return r
}

// pkgDir registers a package.json at dir+"/package.json" with the given
// config (PjsonPath/PjsonDir/Exists are filled in automatically).
func (f *fakeFS) pkgDir(dir string, cfg PackageConfig) {
	cfg.Exists = true
	cfg.PjsonPath = dir + "/package.json"
	cfg.PjsonDir = dir
	f.configs[cfg.PjsonPath] = &cfg
	f.addDir(dir)
	f.addFile(cfg.PjsonPath)
}
