package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestReadPackageConfigPreservesExportsKeyOrder(t *testing.T) {
	dir := t.TempDir()
	pjsonPath := writeTestFile(t, dir, "package.json", `{
		"name": "pkg",
		"type": "module",
		"exports": {
			"require": "./index.cjs",
			"import": "./index.mjs",
			"default": "./index.js"
		}
	}`)

	cfg, err := readPackageConfig(NormalizePathForInternal(pjsonPath))
	if err != nil {
		t.Fatalf("readPackageConfig: %v", err)
	}
	if !cfg.Exists || !cfg.HasExports {
		t.Fatalf("expected a parsed package with exports, got %+v", cfg)
	}

	want := []string{"require", "import", "default"}
	if len(cfg.Exports.MapKeys) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(cfg.Exports.MapKeys), len(want), cfg.Exports.MapKeys)
	}
	for i, k := range want {
		if cfg.Exports.MapKeys[i] != k {
			t.Errorf("key[%d] = %q, want %q (order not preserved)", i, cfg.Exports.MapKeys[i], k)
		}
	}
}

func TestReadPackageConfigMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	cfg, err := readPackageConfig(NormalizePathForInternal(filepath.Join(dir, "package.json")))
	if err != nil {
		t.Fatalf("unexpected error for a missing package.json: %v", err)
	}
	if cfg.Exists {
		t.Errorf("expected Exists=false for a missing file")
	}
}

func TestReadPackageConfigEngines(t *testing.T) {
	dir := t.TempDir()
	pjsonPath := writeTestFile(t, dir, "package.json", `{
		"name": "pkg",
		"engines": {"node": ">=18"}
	}`)

	cfg, err := readPackageConfig(NormalizePathForInternal(pjsonPath))
	if err != nil {
		t.Fatalf("readPackageConfig: %v", err)
	}
	if cfg.Engines["node"] != ">=18" {
		t.Errorf("engines.node = %q, want %q", cfg.Engines["node"], ">=18")
	}
}
