package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"esm-resolve-go/resolver"
)

var (
	resolveSpecifier string
	resolveParent    string
	resolveIsMain    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a single specifier against a parent module URL",
	Long: `Runs the ECMAScript module resolution algorithm for one
specifier/parent pair and prints the resulting URL and module format.`,
	Example: "esm-resolve resolve --specifier ./lib/util.js --parent ./src/index.js",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		bundle, err := buildResolver(viper.New(), logger)
		if err != nil {
			return err
		}

		parentURL, err := specifierArgToFileURL(resolveParent)
		if err != nil {
			return err
		}

		conditions := resolver.NewConditionSet(bundle.Settings.Conditions...)
		result, rerr := bundle.Resolver.Resolve(resolveSpecifier, parentURL, conditions, resolveIsMain)
		if rerr != nil {
			fmt.Println(color.RedString("%s: %s", resolveSpecifier, rerr.Error()))
			return rerr
		}

		fmt.Printf("%s\n", result.URL)
		if result.Format != "" {
			fmt.Printf("format: %s\n", result.Format)
		}
		return nil
	},
}

// specifierArgToFileURL turns a CLI-supplied path (relative to cwd, or
// already a URL) into the file: URL parentURL form the resolver expects.
func specifierArgToFileURL(arg string) (string, error) {
	if arg == "" {
		return resolver.FileURLFromPath(NormalizePathForInternal(currentDir) + "/"), nil
	}
	if resolver.ClassifySpecifier(arg) == resolver.KindURL {
		return arg, nil
	}
	abs, err := filepath.Abs(arg)
	if err != nil {
		return "", err
	}
	return resolver.FileURLFromPath(NormalizePathForInternal(abs)), nil
}

func init() {
	resolveCmd.Flags().StringVar(&resolveSpecifier, "specifier", "", "The module specifier to resolve (required)")
	resolveCmd.Flags().StringVar(&resolveParent, "parent", "", "Parent file path or URL the specifier is imported from (default: cwd)")
	resolveCmd.Flags().BoolVar(&resolveIsMain, "main", false, "Treat this resolution as the program's main entry point")
	resolveCmd.MarkFlagRequired("specifier")
}
