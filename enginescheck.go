package main

import (
	"github.com/Masterminds/semver/v3"

	"esm-resolve-go/resolver"
)

// enginesChecker emits a non-fatal deprecation-sink warning when a resolved
// package declares an engines.node range the configured runtime version
// does not satisfy. This mirrors the advisory (not blocking) check npm and
// pnpm both perform; the resolve algorithm itself never sees it.
type enginesChecker struct {
	runtime *semver.Version
	sink    resolver.DeprecationSink
}

// newEnginesChecker returns nil when runtimeVersion is empty or unparsable,
// so callers can wire it unconditionally and skip nil checkers.
func newEnginesChecker(runtimeVersion string, sink resolver.DeprecationSink) *enginesChecker {
	if runtimeVersion == "" {
		return nil
	}
	v, err := semver.NewVersion(runtimeVersion)
	if err != nil {
		return nil
	}
	return &enginesChecker{runtime: v, sink: sink}
}

// Check inspects cfg.Engines["node"], if present, and reports through the
// deprecation sink when the running version falls outside the declared
// range. It never returns an error: an engines mismatch is advisory only.
func (c *enginesChecker) Check(cfg *resolver.PackageConfig) {
	if c == nil || cfg == nil || !cfg.Exists || cfg.Engines == nil {
		return
	}
	rangeStr, ok := cfg.Engines["node"]
	if !ok || rangeStr == "" {
		return
	}

	constraint, err := semver.NewConstraint(rangeStr)
	if err != nil {
		return
	}
	if constraint.Check(c.runtime) {
		return
	}

	c.sink.Emit(
		"ERR_ENGINE_INCOMPATIBLE",
		cfg.PjsonPath,
		rangeStr,
		"package "+cfg.Name+" requires node "+rangeStr+", running "+c.runtime.String(),
	)
}

// enginesCheckingConfigReader wraps a PackageConfigReader with the engines
// advisory, so every package.json the resolver consults gets checked
// without the pure resolver package ever knowing the check exists. The
// check runs on every Read, cached results included; repeat warnings for
// the same package.json and range are left to the sink's deduplication.
type enginesCheckingConfigReader struct {
	inner   resolver.PackageConfigReader
	checker *enginesChecker
}

func newEnginesCheckingConfigReader(inner resolver.PackageConfigReader, checker *enginesChecker) resolver.PackageConfigReader {
	if checker == nil {
		return inner
	}
	return &enginesCheckingConfigReader{inner: inner, checker: checker}
}

func (r *enginesCheckingConfigReader) Read(pjsonPath string) (*resolver.PackageConfig, error) {
	cfg, err := r.inner.Read(pjsonPath)
	if err != nil {
		return cfg, err
	}
	r.checker.Check(cfg)
	return cfg, nil
}
