// File: cmd/index.go
package cmd

import (
	"codeindex/pkg/index"

	"github.com/spf13/cobra"
)

// indexCmd represents the index command. It snapshots a source tree into a
// single Markdown document, or a sorted path list with --simple-list.
var indexCmd = &cobra.Command{
	Use:   "index [root]",
	Short: "Create an LLM-friendly index of a codebase",
	Long: `Index recursively enumerates a source tree, filters it through the default
and user-supplied exclusion patterns plus any .gitignore at the root, and
writes one fenced content block per file to the output artifact.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := &index.Arguments{Root: "."}
		if len(args) > 0 {
			a.Root = args[0]
		}

		var err error
		if a.Output, err = cmd.Flags().GetString("output"); err != nil {
			return err
		}
		if a.Excludes, err = cmd.Flags().GetStringArray("exclude"); err != nil {
			return err
		}
		if a.SimpleList, err = cmd.Flags().GetBool("simple-list"); err != nil {
			return err
		}
		if a.InputList, err = cmd.Flags().GetString("input-list"); err != nil {
			return err
		}

		return index.Run(a, logger)
	},
}

func init() {
	indexCmd.Flags().StringP("output", "o", index.DefaultOutput, "Output file path")
	indexCmd.Flags().StringArrayP("exclude", "e", nil, "Additional patterns to exclude (can be used multiple times)")
	indexCmd.Flags().Bool("simple-list", false, "Output a simple list of all files and folders (one per line, relative to root)")
	indexCmd.Flags().String("input-list", "", "Path to a file containing a list of files/folders to index (one per line, relative to root)")

	RootCmd.AddCommand(indexCmd)
}
