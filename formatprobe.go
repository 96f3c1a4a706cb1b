package main

import (
	"os"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"esm-resolve-go/resolver"
)

// heuristicFormatProbe implements resolver.FormatProbe. The cheap path is
// pure Go (extension plus the governing package.json "type" field, via
// configs); when a plain ".js" file gives no signal either way, it falls
// back to esbuild to actually parse the source.
type heuristicFormatProbe struct {
	configs *jsonPackageConfigReader
}

func newFormatProbe(configs *jsonPackageConfigReader) *heuristicFormatProbe {
	return &heuristicFormatProbe{configs: configs}
}

func (p *heuristicFormatProbe) Probe(resolvedURL string, _ resolver.ConditionSet) string {
	path, ok := resolver.FileURLPath(resolvedURL)
	if !ok {
		return ""
	}

	switch {
	case strings.HasSuffix(path, ".mjs"):
		return "module"
	case strings.HasSuffix(path, ".cjs"):
		return "commonjs"
	case strings.HasSuffix(path, ".json"), strings.HasSuffix(path, ".node"):
		return ""
	case !strings.HasSuffix(path, ".js"):
		return ""
	}

	if t := p.packageType(path); t != "" {
		return t
	}

	return p.esbuildProbe(path)
}

// packageType walks up from path looking for the governing package.json's
// "type" field, the same scope-walk ResolveImports/ResolveSelf use.
func (p *heuristicFormatProbe) packageType(path string) string {
	dir := dirOf(path)
	for {
		cfg, err := p.configs.Read(dir + "/package.json")
		if err == nil && cfg != nil && cfg.Exists {
			if cfg.Type == "module" {
				return "module"
			}
			return "commonjs"
		}
		next := dirOf(dir)
		if next == dir {
			return ""
		}
		dir = next
	}
}

// esbuildProbe transpiles the source to CommonJS output and checks for the
// "__esModule" interop marker esbuild injects only when the input actually
// contained ESM import/export syntax — a real parse-level signal rather
// than another heuristic layered on the cheap path above.
func (p *heuristicFormatProbe) esbuildProbe(path string) string {
	src, err := os.ReadFile(DenormalizePathForOS(path))
	if err != nil {
		return ""
	}

	result := api.Transform(string(src), api.TransformOptions{
		Loader: api.LoaderJS,
		Format: api.FormatCommonJS,
	})
	if len(result.Errors) > 0 {
		return ""
	}
	if strings.Contains(string(result.Code), "__esModule") {
		return "module"
	}
	return "commonjs"
}
