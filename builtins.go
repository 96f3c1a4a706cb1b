package main

// builtinRegistry implements resolver.BuiltinChecker against the set of
// names Node.js ships as "node:" core modules. It is a plain set rather
// than a generated list pulled from a running runtime — the resolver
// never executes JS, so there is nothing to introspect at startup.
type builtinRegistry struct {
	names map[string]bool
}

func newBuiltinRegistry() *builtinRegistry {
	names := []string{
		"assert", "async_hooks", "buffer", "child_process", "cluster",
		"console", "constants", "crypto", "dgram", "diagnostics_channel",
		"dns", "domain", "events", "fs", "http", "http2", "https",
		"inspector", "module", "net", "os", "path", "perf_hooks",
		"process", "punycode", "querystring", "readline", "repl", "stream",
		"string_decoder", "sys", "timers", "tls", "trace_events", "tty",
		"url", "util", "v8", "vm", "wasi", "worker_threads", "zlib",
		"test", "sea", "sqlite",
	}
	reg := &builtinRegistry{names: make(map[string]bool, len(names)*2)}
	for _, n := range names {
		reg.names[n] = true
		reg.names["node:"+n] = true
	}
	return reg
}

func (b *builtinRegistry) IsBuiltin(name string) bool {
	return b.names[name]
}
