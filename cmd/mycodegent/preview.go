package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CarlvinJerry/MyCodegent/gen"
	"github.com/CarlvinJerry/MyCodegent/load"
)

func newPreviewCmd(opts *cliOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "preview <entity>",
		Short: "Print the artifacts one entity would generate, without writing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load.File(opts.modelFile)
			if err != nil {
				return err
			}
			name := normalizeEntityName(args[0])
			for _, e := range doc.Entities {
				if e.Name != name {
					continue
				}
				out, err := gen.Preview(e, doc.ResolvedConfig())
				if err != nil {
					return err
				}
				kinds := make([]string, 0, len(out))
				for k := range out {
					kinds = append(kinds, k)
				}
				sort.Strings(kinds)
				for _, k := range kinds {
					if kind != "" && k != kind {
						continue
					}
					color.Cyan("--- %s", k)
					fmt.Fprintln(cmd.OutOrStdout(), out[k])
				}
				return nil
			}
			return fmt.Errorf("entity %s is not declared in %s", name, opts.modelFile)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "limit output to one artifact kind")
	return cmd
}
