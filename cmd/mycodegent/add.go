package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/CarlvinJerry/MyCodegent/fswriter"
	"github.com/CarlvinJerry/MyCodegent/gen"
	"github.com/CarlvinJerry/MyCodegent/model"
	"github.com/CarlvinJerry/MyCodegent/vcs"
)

var titleCaser = cases.Title(language.English, cases.NoLower)

// normalizeEntityName upper-cases the first letter so "product" on the
// command line selects the Product model.
func normalizeEntityName(name string) string {
	return titleCaser.String(strings.TrimSpace(name))
}

func newAddCmd(opts *cliOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "add [entity...]",
		Short: "Add entities to an existing project without touching its files",
		Long: "Add runs an incremental generation: artifacts that already exist are\n" +
			"never overwritten, and the aggregate store is re-registered over every\n" +
			"entity found on disk. With no arguments every entity in the model file\n" +
			"is considered.",
		RunE: func(cmd *cobra.Command, args []string) error {
			entities, cfg, err := resolveRun(opts)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				wanted := make(map[string]bool, len(args))
				for _, a := range args {
					wanted[normalizeEntityName(a)] = true
				}
				var picked []model.EntityModel
				for _, e := range entities {
					if wanted[e.Name] {
						picked = append(picked, e)
						delete(wanted, e.Name)
					}
				}
				for name := range wanted {
					return fmt.Errorf("entity %s is not declared in %s", name, opts.modelFile)
				}
				entities = picked
			}

			if !force {
				if repo, err := vcs.Open(cfg.OutputPath); err == nil {
					dirty, err := repo.Dirty()
					if err != nil {
						return err
					}
					if dirty {
						return fmt.Errorf("%s has uncommitted changes; commit them or pass --force", cfg.OutputPath)
					}
				}
			}

			log, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			engine := gen.NewEngine(fswriter.New(cfg.OutputPath), log)
			res, err := engine.GenerateIncremental(cmd.Context(), entities, cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(res.EntitiesAdded) > 0 {
				color.Green("added entities: %s", strings.Join(res.EntitiesAdded, ", "))
			}
			fmt.Fprintf(out, "new: %d, updated: %d, skipped: %d\n",
				len(res.NewFiles), len(res.UpdatedFiles), len(res.SkippedFiles))
			for _, p := range res.SkippedFiles {
				color.Yellow("kept %s", p)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "run even when the project tree has uncommitted changes")
	return cmd
}
