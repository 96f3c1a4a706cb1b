package resolver

// This file names the external collaborators kept out of scope for the
// resolver proper: package.json reading, filesystem probing,
// realpath canonicalization, the built-in module registry, format
// detection, the policy manifest, and the deprecation sink. Production
// implementations live in the root package (fsprobe.go, pkgconfigreader.go,
// realpath.go, builtins.go, formatprobe.go, policy.go, deprecation.go);
// tests in this package supply in-memory fakes.

// StatResult is the three-valued outcome of FsProbe.Stat.
type StatResult uint8

const (
	StatMissing StatResult = iota
	StatFile
	StatDirectory
)

// FsProbe decides file / directory / missing for a path. It reports on
// whatever the path points to but never rewrites the path — canonicalizing
// symlinks is RealpathResolver's job.
type FsProbe interface {
	Stat(path string) StatResult
}

// RealpathResolver canonicalizes a path, resolving symlinks, and memoizes
// results in cache for the lifetime of the process.
type RealpathResolver interface {
	Realpath(path string, cache RealpathCache) (string, error)
}

// RealpathCache is a process-wide, append-only memo from input path to
// canonical path.
type RealpathCache interface {
	Get(path string) (string, bool)
	Set(path, canonical string)
}

// PackageConfigReader reads and memoizes a package.json by absolute path.
// Implementations must preserve key order for Exports/Imports maps — see
// Target.MapKeys — because conditional selection is "first applicable
// condition wins" in source order, not alphabetical or any other order.
type PackageConfigReader interface {
	Read(pjsonPath string) (*PackageConfig, error)
}

// BuiltinChecker answers whether a bare specifier names a built-in module.
type BuiltinChecker interface {
	IsBuiltin(name string) bool
}

// FormatProbe determines the module format ("module" | "commonjs" | "") of
// a resolved file: URL, consulted both for the DEP0151 ESM-only gate in
// LegacyMainResolver and for the final ResolveResult.Format field.
type FormatProbe interface {
	Probe(resolvedURL string, conditions ConditionSet) string
}

// DeprecationSink receives deprecation notices. Implementations must
// deduplicate by (code, pjsonPath, match) where the caller supplies a
// match key.
type DeprecationSink interface {
	Emit(code, pjsonPath, match, message string)
}

// NoopDeprecationSink discards everything; useful in tests.
type NoopDeprecationSink struct{}

func (NoopDeprecationSink) Emit(code, pjsonPath, match, message string) {}

// WatchReporter receives a ModuleNotFound dependency notification when the
// watch-mode environment flag is set.
type WatchReporter interface {
	ReportMissing(path string)
}

// NoopWatchReporter discards everything; useful in tests.
type NoopWatchReporter struct{}

func (NoopWatchReporter) ReportMissing(path string) {}

// PolicyManifest is the optional dependency mapper/gate.
// GetDependencyMapper returns nil when no mapper applies to parentURL.
type PolicyManifest interface {
	GetDependencyMapper(parentURL string) DependencyMapper
}

// DependencyMapper may redirect a specifier to a concrete URL, or signal
// denial via ok=false (surfaced upstream as ManifestDependencyMissing).
type DependencyMapper interface {
	Resolve(specifier string) (redirect string, ok bool, handled bool)
}

// CJSHinter produces a "did you mean" suggestion for a failed resolution,
// used only to annotate error messages. A production
// implementation lives in cjshint.go; failures here are always ignored by
// the caller.
type CJSHinter interface {
	Suggest(failedPath string) (suggestion string, ok bool)
}
