package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/tidwall/jsonc"

	"esm-resolve-go/resolver"
)

// jsonPackageConfigReader implements resolver.PackageConfigReader, parsing
// package.json (tolerating comments/trailing commas via jsonc, the same
// way config.go does for its own JSON-adjacent files) and memoizing by
// absolute path for the lifetime of the process.
type jsonPackageConfigReader struct {
	mu    sync.RWMutex
	cache map[string]*resolver.PackageConfig
}

func newPackageConfigReader() *jsonPackageConfigReader {
	return &jsonPackageConfigReader{cache: make(map[string]*resolver.PackageConfig)}
}

func (r *jsonPackageConfigReader) Read(pjsonPath string) (*resolver.PackageConfig, error) {
	r.mu.RLock()
	if cfg, ok := r.cache[pjsonPath]; ok {
		r.mu.RUnlock()
		return cfg, nil
	}
	r.mu.RUnlock()

	cfg, err := readPackageConfig(pjsonPath)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.cache[pjsonPath] = cfg
	r.mu.Unlock()
	return cfg, nil
}

func readPackageConfig(pjsonPath string) (*resolver.PackageConfig, error) {
	raw, err := os.ReadFile(DenormalizePathForOS(pjsonPath))
	if os.IsNotExist(err) {
		return &resolver.PackageConfig{Exists: false, PjsonPath: pjsonPath}, nil
	}
	if err != nil {
		return nil, err
	}

	var doc struct {
		Name    string            `json:"name"`
		Main    string            `json:"main"`
		Type    string            `json:"type"`
		Engines map[string]string `json:"engines"`
	}
	strict := jsonc.ToJSON(raw)
	if err := json.Unmarshal(strict, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pjsonPath, err)
	}

	cfg := &resolver.PackageConfig{
		Exists:    true,
		PjsonPath: pjsonPath,
		PjsonDir:  dirOf(pjsonPath),
		Name:      doc.Name,
		Main:      doc.Main,
		Type:      doc.Type,
		Engines:   doc.Engines,
	}

	exportsRaw, importsRaw, err := extractExportsImportsRaw(strict)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pjsonPath, err)
	}
	if exportsRaw != nil {
		target, err := decodeOrderedTarget(exportsRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s exports: %w", pjsonPath, err)
		}
		cfg.HasExports = true
		cfg.Exports = target
	}
	if importsRaw != nil {
		target, err := decodeOrderedTarget(importsRaw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s imports: %w", pjsonPath, err)
		}
		cfg.HasImports = true
		cfg.Imports = target
	}

	return cfg, nil
}

// extractExportsImportsRaw pulls the raw "exports"/"imports" values out of
// the top-level object without disturbing their internal key order, which
// json.Unmarshal into a map would not preserve.
func extractExportsImportsRaw(doc []byte) (exports, imports json.RawMessage, err error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, nil
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, nil, err
		}
		switch key {
		case "exports":
			exports = raw
		case "imports":
			imports = raw
		}
	}
	return exports, imports, nil
}

// decodeOrderedTarget decodes a single exports/imports/target JSON value
// into resolver.Target, preserving object key order via a token walk
// rather than json.Unmarshal into a Go map.
func decodeOrderedTarget(raw json.RawMessage) (resolver.Target, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return resolver.NullTarget(), nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return resolver.Target{}, err
		}
		return resolver.StringTarget(s), nil

	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return resolver.Target{}, err
		}
		targets := make([]resolver.Target, 0, len(items))
		for _, item := range items {
			t, err := decodeOrderedTarget(item)
			if err != nil {
				return resolver.Target{}, err
			}
			targets = append(targets, t)
		}
		return resolver.ListTarget(targets...), nil

	case '{':
		keys, values, err := orderedObjectEntries(trimmed)
		if err != nil {
			return resolver.Target{}, err
		}
		m := make(map[string]resolver.Target, len(keys))
		for _, k := range keys {
			t, err := decodeOrderedTarget(values[k])
			if err != nil {
				return resolver.Target{}, err
			}
			m[k] = t
		}
		return resolver.MapTarget(keys, m), nil

	default:
		return resolver.Target{}, fmt.Errorf("unsupported exports/imports value: %s", trimmed)
	}
}

func orderedObjectEntries(raw json.RawMessage) ([]string, map[string]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("expected an object")
	}

	var keys []string
	values := make(map[string]json.RawMessage)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := keyTok.(string)
		var v json.RawMessage
		if err := dec.Decode(&v); err != nil {
			return nil, nil, err
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = v
	}
	return keys, values, nil
}

func dirOf(p string) string {
	idx := -1
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return "/"
	}
	return p[:idx]
}
