package main

import (
	"os"

	"github.com/charmbracelet/log"

	"esm-resolve-go/resolver"
)

// resolverBundle bundles a configured *resolver.Resolver with the
// settings it was built from, which a CLI command reads directly (the
// condition list, for one).
type resolverBundle struct {
	Resolver *resolver.Resolver
	Settings resolverSettings
}

// newResolverBundle wires every collaborator a Resolver needs: real
// filesystem probing, ordered package.json parsing (wrapped with the
// engines.node advisory), symlink canonicalization, the built-in module
// registry, the esbuild-backed format probe, the policy manifest, the
// deprecation sink, the watch-mode reporter and the did-you-mean hinter.
func newResolverBundle(settings resolverSettings, logger *log.Logger) (*resolverBundle, error) {
	sink := newDeprecationSink(logger)

	rawConfigs := newPackageConfigReader()
	checker := newEnginesChecker(settings.EngineNodeVersion, sink)
	configs := newEnginesCheckingConfigReader(rawConfigs, checker)

	policy, err := loadPolicyManifest(settings.PolicyManifest)
	if err != nil {
		return nil, err
	}

	var watch resolver.WatchReporter
	if watchReportingEnabled() {
		watch = newWatchReporter(os.Stdout)
	} else {
		watch = resolver.NoopWatchReporter{}
	}

	opts := settings.toResolverOptions()

	r := resolver.New(opts, configs, osFsProbe{}, osRealpath{}, newBuiltinRegistry(), newFormatProbe(rawConfigs), newRealpathCache())
	r.Deprecate = sink
	r.Watch = watch
	r.Hinter = siblingExtensionHinter{}
	if policy != nil {
		r.Policy = policy
	}

	return &resolverBundle{Resolver: r, Settings: settings}, nil
}
