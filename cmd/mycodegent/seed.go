package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/CarlvinJerry/MyCodegent/dbseed"
	"github.com/CarlvinJerry/MyCodegent/load"
)

func newSeedCmd(opts *cliOptions) *cobra.Command {
	var dsn string
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Apply the generated SQL scripts to a database",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := load.File(opts.modelFile)
			if err != nil {
				return err
			}
			cfg := doc.ResolvedConfig()
			if opts.outputDir != "" {
				cfg.OutputPath = opts.outputDir
			}
			if dsn == "" {
				dsn = cfg.ConnectionString
			}
			if dsn == "" {
				return fmt.Errorf("no connection string: pass --dsn or set connectionString in the model file")
			}

			db, err := dbseed.Open(string(cfg.DatabaseProvider), dsn)
			if err != nil {
				return err
			}
			defer db.Close()

			scripts := []string{}
			if migrate {
				scripts = append(scripts, filepath.Join(cfg.OutputPath, "Infrastructure/Persistence/Migrations/0001_initial.sql"))
			}
			scripts = append(scripts, filepath.Join(cfg.OutputPath, "scripts/seed.sql"))

			for _, path := range scripts {
				raw, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				if err := dbseed.Apply(cmd.Context(), db, string(raw)); err != nil {
					return err
				}
				color.Green("applied %s", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dsn, "dsn", "", "database connection string")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply the initial migration before the seed rows")
	return cmd
}
