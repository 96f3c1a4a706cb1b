package main

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadResolverSettingsDefaults(t *testing.T) {
	settings, err := loadResolverSettings(viper.New(), "")
	if err != nil {
		t.Fatalf("loadResolverSettings: %v", err)
	}
	want := []string{"node", "import", "default"}
	if len(settings.Conditions) != len(want) {
		t.Fatalf("conditions = %v, want %v", settings.Conditions, want)
	}
	for i, c := range want {
		if settings.Conditions[i] != c {
			t.Errorf("conditions[%d] = %q, want %q", i, settings.Conditions[i], c)
		}
	}
	if settings.PreserveSymlinks {
		t.Errorf("expected PreserveSymlinks=false by default")
	}
}

func TestLoadResolverSettingsFromConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTestFile(t, dir, "resolve.jsonc", `{
		// trailing comments are tolerated via jsonc
		"preserve_symlinks": true,
		"policy_manifest": "policy.json",
		"conditions": ["node", "import", "default", "react-server"],
	}`)

	settings, err := loadResolverSettings(viper.New(), path)
	if err != nil {
		t.Fatalf("loadResolverSettings: %v", err)
	}
	if !settings.PreserveSymlinks {
		t.Errorf("expected preserve_symlinks to be read from the config file")
	}
	if settings.PolicyManifest != "policy.json" {
		t.Errorf("policy_manifest = %q, want %q", settings.PolicyManifest, "policy.json")
	}
	if len(settings.Conditions) != 4 || settings.Conditions[3] != "react-server" {
		t.Errorf("conditions = %v, want the file's 4-entry list", settings.Conditions)
	}
}

func TestResolverSettingsToResolverOptions(t *testing.T) {
	settings := defaultResolverSettings()
	settings.PreserveSymlinksMain = true
	opts := settings.toResolverOptions()
	if !opts.PreserveSymlinksMain {
		t.Errorf("expected PreserveSymlinksMain to carry through to resolver.Options")
	}
	if !opts.DefaultConditions.Has("node") {
		t.Errorf("expected default conditions to include \"node\"")
	}
}
