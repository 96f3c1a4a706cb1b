package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"esm-resolve-go/resolver"
)

var (
	traceSpecifier string
	traceParent    string
	traceIsMain    bool
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Resolve a specifier and print a step-by-step decision trace",
	Long: `Like resolve, but additionally prints the specifier's classified
kind, the conditions in effect, and any deprecation or "did you mean"
annotations attached to a failure.`,
	Example: "esm-resolve trace --specifier lodash/fp --parent ./src/index.js",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		bundle, err := buildResolver(viper.New(), logger)
		if err != nil {
			return err
		}

		parentURL, err := specifierArgToFileURL(traceParent)
		if err != nil {
			return err
		}

		kind := resolver.ClassifySpecifier(traceSpecifier)
		conditions := resolver.NewConditionSet(bundle.Settings.Conditions...)

		fmt.Printf("specifier:  %s\n", traceSpecifier)
		fmt.Printf("kind:       %s\n", specifierKindName(kind))
		fmt.Printf("parent:     %s\n", parentURL)
		fmt.Printf("conditions: %v\n", bundle.Settings.Conditions)

		result, rerr := bundle.Resolver.Resolve(traceSpecifier, parentURL, conditions, traceIsMain)
		if rerr != nil {
			fmt.Println(color.RedString("result:     FAILED (%s)", rerr.Kind))
			fmt.Printf("message:    %s\n", rerr.Message)
			if rerr.DidYouMean != "" {
				fmt.Println(color.YellowString("did you mean: %s", rerr.DidYouMean))
			}
			return rerr
		}

		fmt.Printf("result:     %s\n", result.URL)
		fmt.Printf("format:     %s\n", result.Format)
		return nil
	},
}

func specifierKindName(k resolver.SpecifierKind) string {
	switch k {
	case resolver.KindRelative:
		return "relative"
	case resolver.KindAbsolute:
		return "absolute"
	case resolver.KindPrivate:
		return "private"
	case resolver.KindBareName:
		return "bare-name"
	case resolver.KindURL:
		return "url"
	default:
		return "invalid"
	}
}

func init() {
	traceCmd.Flags().StringVar(&traceSpecifier, "specifier", "", "The module specifier to resolve (required)")
	traceCmd.Flags().StringVar(&traceParent, "parent", "", "Parent file path or URL the specifier is imported from (default: cwd)")
	traceCmd.Flags().BoolVar(&traceIsMain, "main", false, "Treat this resolution as the program's main entry point")
	traceCmd.MarkFlagRequired("specifier")
}
