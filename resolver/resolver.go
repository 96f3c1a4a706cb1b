package resolver

// Options configures the environment-level switches enumerates.
type Options struct {
	PreserveSymlinks            bool
	PreserveSymlinksMain        bool
	ExperimentalNetworkImports  bool
	InputTypeSet                bool
	WatchReportDependencies     bool
	DefaultConditions           ConditionSet
	EngineNodeVersion           string // domain-stack addition: see enginescheck.go
}

// Resolver bundles the pure C1-C10 algorithm with its external
// collaborators. All resolution methods hang off this type so recursive
// calls (TargetResolver -> PackageResolver for "imports" indirection,
// PackageResolver -> ExportsResolver, ...) are plain method calls within
// one package rather than free functions threading eight parameters.
type Resolver struct {
	Configs   PackageConfigReader
	Fs        FsProbe
	Realpath  RealpathResolver
	Builtins  BuiltinChecker
	Format    FormatProbe
	Deprecate DeprecationSink
	Watch     WatchReporter
	Policy    PolicyManifest
	Hinter    CJSHinter

	Options Options

	cache RealpathCache
}

// New builds a Resolver. Deprecate and Watch start as no-op
// implementations; the other collaborators are stored as given. Configs
// and Fs are required, while a nil Realpath, Builtins or Format (and an
// unset Policy or Hinter) is tolerated and simply skips that step.
func New(opts Options, configs PackageConfigReader, fs FsProbe, realpath RealpathResolver, builtins BuiltinChecker, format FormatProbe, cache RealpathCache) *Resolver {
	if opts.DefaultConditions == nil {
		opts.DefaultConditions = DefaultConditions()
	}
	return &Resolver{
		Configs:   configs,
		Fs:        fs,
		Realpath:  realpath,
		Builtins:  builtins,
		Format:    format,
		Deprecate: NoopDeprecationSink{},
		Watch:     NoopWatchReporter{},
		Options:   opts,
		cache:     cache,
	}
}

func (r *Resolver) deprecate(code, pjsonPath, match, message string) {
	if r.Deprecate == nil {
		return
	}
	r.Deprecate.Emit(code, pjsonPath, match, message)
}
