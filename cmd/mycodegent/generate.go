package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CarlvinJerry/MyCodegent/fswriter"
	"github.com/CarlvinJerry/MyCodegent/gen"
	"github.com/CarlvinJerry/MyCodegent/load"
	"github.com/CarlvinJerry/MyCodegent/model"
	"github.com/CarlvinJerry/MyCodegent/vcs"
)

// resolveRun loads the model file and applies CLI overrides.
func resolveRun(opts *cliOptions) ([]model.EntityModel, model.GenerationConfig, error) {
	doc, err := load.File(opts.modelFile)
	if err != nil {
		return nil, model.GenerationConfig{}, err
	}
	cfg := doc.ResolvedConfig()
	if opts.outputDir != "" {
		cfg.OutputPath = opts.outputDir
	}
	return doc.Entities, cfg, nil
}

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	var gitInit bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a full project from the model file",
		RunE: func(cmd *cobra.Command, args []string) error {
			entities, cfg, err := resolveRun(opts)
			if err != nil {
				return err
			}
			log, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			engine := gen.NewEngine(fswriter.New(cfg.OutputPath), log)
			arts, err := engine.Generate(cmd.Context(), entities, cfg)
			if err != nil {
				return err
			}

			if gitInit {
				repo, err := vcs.Init(cfg.OutputPath)
				if err != nil {
					return err
				}
				hash, err := repo.CommitAll("Initial generated project")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "committed %s\n", hash[:8])
			}

			color.Green("generated %d files into %s", len(arts), cfg.OutputPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&gitInit, "git", false, "initialize a git repository and commit the result")
	return cmd
}
