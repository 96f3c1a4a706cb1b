package main

import (
	"testing"

	"esm-resolve-go/resolver"
)

func TestPolicyManifestDeniesMatchingDependency(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "policy.json", `{
		"dependencies": {
			"*": {
				"deny": ["left-pad"]
			}
		}
	}`)

	manifest, err := loadPolicyManifest(path)
	if err != nil {
		t.Fatalf("loadPolicyManifest: %v", err)
	}

	parentURL := resolver.FileURLFromPath(NormalizePathForInternal(dir) + "/src/index.js")
	mapper := manifest.GetDependencyMapper(parentURL)
	if mapper == nil {
		t.Fatalf("expected a mapper for %q", parentURL)
	}

	_, ok, handled := mapper.Resolve("left-pad")
	if !handled || ok {
		t.Errorf("Resolve(left-pad) = (ok=%v, handled=%v), want (false, true)", ok, handled)
	}
}

func TestPolicyManifestAllowListImplicitlyDeniesOthers(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "policy.json", `{
		"dependencies": {
			"**/legacy/**": {
				"allow": ["lodash"]
			}
		}
	}`)

	manifest, err := loadPolicyManifest(path)
	if err != nil {
		t.Fatalf("loadPolicyManifest: %v", err)
	}

	parentURL := resolver.FileURLFromPath(NormalizePathForInternal(dir) + "/legacy/old.js")
	mapper := manifest.GetDependencyMapper(parentURL)
	if mapper == nil {
		t.Fatalf("expected a mapper for %q", parentURL)
	}

	if _, ok, handled := mapper.Resolve("lodash"); !ok || handled {
		t.Errorf("Resolve(lodash) = (ok=%v, handled=%v), want (true, false) — allowed edge must fall through to normal resolution", ok, handled)
	}
	if _, ok, handled := mapper.Resolve("moment"); ok || !handled {
		t.Errorf("Resolve(moment) = (ok=%v, handled=%v), want (false, true) — absent from the allow list", ok, handled)
	}
}

func TestPolicyManifestRedirect(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "policy.json", `{
		"dependencies": {
			"*": {
				"redirects": {"legacy-lib": "file:///vendored/legacy-lib/index.js"}
			}
		}
	}`)

	manifest, err := loadPolicyManifest(path)
	if err != nil {
		t.Fatalf("loadPolicyManifest: %v", err)
	}

	parentURL := resolver.FileURLFromPath(NormalizePathForInternal(dir) + "/src/index.js")
	mapper := manifest.GetDependencyMapper(parentURL)
	if mapper == nil {
		t.Fatalf("expected a mapper for %q", parentURL)
	}

	redirect, ok, handled := mapper.Resolve("legacy-lib")
	if !ok || !handled || redirect != "file:///vendored/legacy-lib/index.js" {
		t.Errorf("Resolve(legacy-lib) = (%q, %v, %v), want the redirect target", redirect, ok, handled)
	}
}

func TestPolicyManifestNoMatchingRuleReturnsNilMapper(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "policy.json", `{
		"dependencies": {
			"**/admin/**": {"deny": ["*"]}
		}
	}`)

	manifest, err := loadPolicyManifest(path)
	if err != nil {
		t.Fatalf("loadPolicyManifest: %v", err)
	}

	parentURL := resolver.FileURLFromPath(NormalizePathForInternal(dir) + "/src/index.js")
	if mapper := manifest.GetDependencyMapper(parentURL); mapper != nil {
		t.Errorf("expected a nil mapper when no importer-glob matches")
	}
}

func TestLoadPolicyManifestEmptyPathReturnsNil(t *testing.T) {
	manifest, err := loadPolicyManifest("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manifest != nil {
		t.Errorf("expected a nil manifest for an empty path")
	}
}
