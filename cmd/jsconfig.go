// File: cmd/jsconfig.go
package cmd

import (
	"codeindex/pkg/jsconfig"

	"github.com/spf13/cobra"
)

// jsconfigCmd represents the jsconfig command. It scans the fixed addon roots
// plus any extra roots named as arguments and writes a jsconfig.json with one
// path alias per module that ships a static/src directory.
var jsconfigCmd = &cobra.Command{
	Use:   "jsconfig [extraRoot...]",
	Short: "Generate a jsconfig.json with addon module path aliases",
	Long: `Jsconfig always scans community/addons and enterprise under the base
directory as permanent roots. Any additional directories passed as arguments
are scanned for modules with static/src, and aliases are added for those as
well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := cmd.Flags().GetString("base")
		if err != nil {
			return err
		}
		return jsconfig.Generate(base, args, logger)
	},
}

func init() {
	jsconfigCmd.Flags().StringP("base", "b", ".", "Project base directory containing the fixed addon roots")

	RootCmd.AddCommand(jsconfigCmd)
}
