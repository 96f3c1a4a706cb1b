package main

import (
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/tidwall/jsonc"

	"esm-resolve-go/resolver"
)

// resolverSettings is the layered configuration for a Resolver instance:
// defaults, then an optional JSONC config file, then NODE_OPTIONS-style env
// vars, then CLI flags — the same precedence order applied by hand for
// --package-json/--tsconfig-json elsewhere in this repo, expressed here
// through viper.
type resolverSettings struct {
	Conditions                 []string `mapstructure:"conditions"`
	PreserveSymlinks           bool     `mapstructure:"preserve_symlinks"`
	PreserveSymlinksMain       bool     `mapstructure:"preserve_symlinks_main"`
	ExperimentalNetworkImports bool     `mapstructure:"experimental_network_imports"`
	InputTypeSet               bool     `mapstructure:"input_type_set"`
	PolicyManifest             string   `mapstructure:"policy_manifest"`
	EngineNodeVersion          string   `mapstructure:"engine_node_version"`
	LogLevel                   string   `mapstructure:"log_level"`
}

func defaultResolverSettings() resolverSettings {
	return resolverSettings{
		Conditions: []string{"node", "import", "default"},
		LogLevel:   "info",
	}
}

// loadResolverSettings builds a viper instance layered as defaults, then
// configFile (if non-empty; viper has no built-in JSONC parser, so the
// file is read and comment-stripped ahead of time and fed to viper via
// SetConfigType("json")), then RESOLVE_-prefixed env vars. CLI flags are
// not read here: buildResolver in main.go applies them on top of the
// returned settings.
func loadResolverSettings(v *viper.Viper, configFile string) (resolverSettings, error) {
	settings := defaultResolverSettings()
	v.SetDefault("conditions", settings.Conditions)
	v.SetDefault("preserve_symlinks", settings.PreserveSymlinks)
	v.SetDefault("preserve_symlinks_main", settings.PreserveSymlinksMain)
	v.SetDefault("experimental_network_imports", settings.ExperimentalNetworkImports)
	v.SetDefault("input_type_set", settings.InputTypeSet)
	v.SetDefault("policy_manifest", settings.PolicyManifest)
	v.SetDefault("engine_node_version", settings.EngineNodeVersion)
	v.SetDefault("log_level", settings.LogLevel)

	if configFile != "" {
		raw, err := loadJSONCFile(configFile)
		if err != nil {
			return settings, err
		}
		v.SetConfigType("json")
		if err := v.MergeConfig(strings.NewReader(string(raw))); err != nil {
			return settings, err
		}
	}

	v.SetEnvPrefix("RESOLVE")
	v.AutomaticEnv()

	if err := v.Unmarshal(&settings); err != nil {
		return settings, err
	}
	return settings, nil
}

// toResolverOptions converts settings into the pure resolver package's
// Options struct.
func (s resolverSettings) toResolverOptions() resolver.Options {
	return resolver.Options{
		PreserveSymlinks:           s.PreserveSymlinks,
		PreserveSymlinksMain:       s.PreserveSymlinksMain,
		ExperimentalNetworkImports: s.ExperimentalNetworkImports,
		InputTypeSet:               s.InputTypeSet,
		WatchReportDependencies:    watchReportingEnabled(),
		DefaultConditions:          resolver.NewConditionSet(s.Conditions...),
		EngineNodeVersion:          s.EngineNodeVersion,
	}
}

func loadJSONCFile(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return jsonc.ToJSON(raw), nil
}
