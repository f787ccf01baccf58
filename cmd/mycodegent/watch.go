package main

import (
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CarlvinJerry/MyCodegent/fswriter"
	"github.com/CarlvinJerry/MyCodegent/gen"
)

func newWatchCmd(opts *cliOptions) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the model file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts)
			if err != nil {
				return err
			}
			defer log.Sync()

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			// Watch the directory: editors replace files on save, which drops
			// a watch placed on the file itself.
			if err := watcher.Add(filepath.Dir(opts.modelFile)); err != nil {
				return err
			}

			run := func() {
				entities, cfg, err := resolveRun(opts)
				if err != nil {
					color.Red("reload failed: %v", err)
					return
				}
				engine := gen.NewEngine(fswriter.New(cfg.OutputPath), log)
				arts, err := engine.Generate(cmd.Context(), entities, cfg)
				if err != nil {
					color.Red("generation failed: %v", err)
					return
				}
				color.Green("regenerated %d files", len(arts))
			}
			run()

			target := filepath.Clean(opts.modelFile)
			var timer *time.Timer
			for {
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					log.Warn("watch error", zap.Error(err))
				case ev, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(ev.Name) != target {
						continue
					}
					if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
						continue
					}
					// Debounce: editors fire several events per save.
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(debounce, run)
				}
			}
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 300*time.Millisecond, "delay between a change and the rerun")
	return cmd
}
