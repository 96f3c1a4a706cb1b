package main

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags; "dev" otherwise.
var Version = "dev"

var currentDir, _ = os.Getwd()

var rootCmd = &cobra.Command{
	Use:     "esm-resolve",
	Short:   "Resolve ECMAScript module specifiers the way Node.js does",
	Long:    `A standalone implementation of Node.js's package.json exports/imports-aware module resolution algorithm, exposed as a CLI for scripting and debugging import failures.`,
	Version: Version,
}

var docsCmd = &cobra.Command{
	Use:   "doc-gen",
	Short: "Generate CLI documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return doc.GenMarkdownTree(rootCmd, "./docs")
	},
}

// ---------------- shared flags ----------------

var (
	configFilePath     string
	policyManifestPath string
	conditionsFlag     []string
	preserveSymlinks   bool
	preserveMainSymlink bool
	networkImports     bool
	engineNodeVersion  string
)

func addSharedFlags(command *cobra.Command) {
	command.Flags().StringVar(&configFilePath, "config", "",
		"Path to a JSONC resolver config file")
	command.Flags().StringVar(&policyManifestPath, "policy-manifest", "",
		"Path to a JSON/JSONC or YAML dependency policy manifest")
	command.Flags().StringSliceVar(&conditionsFlag, "conditions", nil,
		"Extra exports/imports condition names, in addition to node/import/default")
	command.Flags().BoolVar(&preserveSymlinks, "preserve-symlinks", false,
		"Do not canonicalize symlinks for non-main resolutions")
	command.Flags().BoolVar(&preserveMainSymlink, "preserve-symlinks-main", false,
		"Do not canonicalize symlinks for the main entry point")
	command.Flags().BoolVar(&networkImports, "experimental-network-imports", false,
		"Allow http(s): specifiers to resolve")
	command.Flags().StringVar(&engineNodeVersion, "engine-node-version", "",
		"Runtime node version to check package engines.node ranges against")
}

func buildResolver(v *viper.Viper, logger *log.Logger) (*resolverBundle, error) {
	settings, err := loadResolverSettings(v, configFilePath)
	if err != nil {
		return nil, err
	}
	if len(conditionsFlag) > 0 {
		settings.Conditions = append(settings.Conditions, conditionsFlag...)
	}
	if preserveSymlinks {
		settings.PreserveSymlinks = true
	}
	if preserveMainSymlink {
		settings.PreserveSymlinksMain = true
	}
	if networkImports {
		settings.ExperimentalNetworkImports = true
	}
	if engineNodeVersion != "" {
		settings.EngineNodeVersion = engineNodeVersion
	}
	if policyManifestPath != "" {
		settings.PolicyManifest = policyManifestPath
	}

	return newResolverBundle(settings, logger)
}

func init() {
	addSharedFlags(resolveCmd)
	addSharedFlags(traceCmd)
	rootCmd.AddCommand(resolveCmd, traceCmd, docsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
