package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// cliOptions are the flags shared by every subcommand. Values resolve in the
// usual precedence: flag, then MYCODEGENT_* environment variable, then the
// config file named by --config.
type cliOptions struct {
	configFile string
	modelFile  string
	outputDir  string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:           "mycodegent",
		Short:         "Generate layered web-app projects from entity models",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			viper.SetEnvPrefix("mycodegent")
			viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			viper.AutomaticEnv()
			if opts.configFile != "" {
				viper.SetConfigFile(opts.configFile)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}
			if err := viper.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if v := viper.GetString("model"); v != "" && !cmd.Flags().Changed("model") {
				opts.modelFile = v
			}
			if v := viper.GetString("output"); v != "" && !cmd.Flags().Changed("output") {
				opts.outputDir = v
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file")
	cmd.PersistentFlags().StringVarP(&opts.modelFile, "model", "m", "mycodegent.yaml", "entity model file")
	cmd.PersistentFlags().StringVarP(&opts.outputDir, "output", "o", "", "output directory (overrides the model file)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newGenerateCmd(opts),
		newAddCmd(opts),
		newPreviewCmd(opts),
		newSeedCmd(opts),
		newServeCmd(opts),
		newWatchCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger(opts *cliOptions) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if opts.verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
