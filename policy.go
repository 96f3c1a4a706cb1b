package main

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"esm-resolve-go/resolver"
)

type policyRule struct {
	Allow     []string          `json:"allow" yaml:"allow"`
	Deny      []string          `json:"deny" yaml:"deny"`
	Redirects map[string]string `json:"redirects" yaml:"redirects"`
}

type policyManifestFile struct {
	Dependencies map[string]policyRule `json:"dependencies" yaml:"dependencies"`
}

type compiledPolicyRule struct {
	importerMatchers []GlobMatcher
	allowMatchers    []GlobMatcher
	denyMatchers     []GlobMatcher
	redirects        map[string]string
}

// jsonPolicyManifest implements resolver.PolicyManifest, generalizing the
// deny-then-allow walk from restrictedImports.go/module_boundaries.go's
// lint-time check over an already-built dependency tree into a
// resolver-time gate consulted on every specifier.
type jsonPolicyManifest struct {
	rules []compiledPolicyRule
}

// loadPolicyManifest loads an optional JSON/JSONC or YAML manifest of the
// form {"dependencies": {"<importer-glob>": {"allow": [...], "deny": [...],
// "redirects": {...}}}}. An empty path means no manifest is configured.
func loadPolicyManifest(path string) (*jsonPolicyManifest, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc policyManifestFile
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
	} else if err := json.Unmarshal(jsonc.ToJSON(raw), &doc); err != nil {
		return nil, err
	}

	// Map iteration order is nondeterministic; sort the importer-glob keys
	// so the compiled rule set (and therefore which rules a given parentURL
	// matches) does not vary run to run.
	keys := make([]string, 0, len(doc.Dependencies))
	for k := range doc.Dependencies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	manifest := &jsonPolicyManifest{}
	for _, importerPattern := range keys {
		rule := doc.Dependencies[importerPattern]
		manifest.rules = append(manifest.rules, compiledPolicyRule{
			importerMatchers: CreateGlobMatchers([]string{importerPattern}, ""),
			allowMatchers:    CreateGlobMatchers(rule.Allow, ""),
			denyMatchers:     CreateGlobMatchers(rule.Deny, ""),
			redirects:        rule.Redirects,
		})
	}
	return manifest, nil
}

func (m *jsonPolicyManifest) GetDependencyMapper(parentURL string) resolver.DependencyMapper {
	if m == nil {
		return nil
	}
	path, ok := resolver.FileURLPath(parentURL)
	if !ok {
		return nil
	}

	var matched []compiledPolicyRule
	for _, rule := range m.rules {
		if MatchesAnyGlobMatcher(path, rule.importerMatchers, false) {
			matched = append(matched, rule)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	return &policyDependencyMapper{rules: matched}
}

type policyDependencyMapper struct {
	rules []compiledPolicyRule
}

// Resolve walks deny-then-allow like CheckModuleBoundariesFromTree: an
// explicit redirect wins outright, a deny match blocks the edge, and a
// non-empty allow list makes absence from it an implicit deny.
func (d *policyDependencyMapper) Resolve(specifier string) (redirect string, ok bool, handled bool) {
	for _, rule := range d.rules {
		if target, found := rule.redirects[specifier]; found {
			return target, true, true
		}
	}

	for _, rule := range d.rules {
		if MatchesAnyGlobMatcher(specifier, rule.denyMatchers, false) {
			return "", false, true
		}
	}

	hasAllowList := false
	for _, rule := range d.rules {
		if len(rule.allowMatchers) == 0 {
			continue
		}
		hasAllowList = true
		if MatchesAnyGlobMatcher(specifier, rule.allowMatchers, false) {
			return "", true, false
		}
	}
	if hasAllowList {
		return "", false, true
	}

	return "", false, false
}
