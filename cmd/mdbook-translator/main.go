package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BUB97/mdbook-translator/internal/cli"
	"github.com/BUB97/mdbook-translator/internal/models"
	"github.com/BUB97/mdbook-translator/internal/processor"
)

func main() {
	flags := cli.NewFlags()
	logger := newLogger()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
		cli.ResolveConfig(flags)
		if flags.Verbose {
			logger.SetLevel(logrus.DebugLevel)
		}
	})

	// Preprocessor mode: mdBook pipes [context, book] on stdin and
	// reads the translated book from stdout.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		proc := processor.NewProcessor(flags, logger)
		return proc.RunPreprocessor(cmd.Context(), os.Stdin, os.Stdout)
	}

	rootCmd.AddCommand(supportsCommand())
	rootCmd.AddCommand(translateCommand(flags, logger))
	rootCmd.AddCommand(modelsCommand(flags))

	// Cobra prints usage on RunE errors by default; a failed
	// translation run is not a usage problem.
	rootCmd.SilenceUsage = true

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.WithError(err).Error("Run failed")
		os.Exit(1)
	}
}

// supportsCommand implements the mdBook handshake: exit 0 when the
// renderer is supported. This preprocessor only rewrites chapter text,
// so every renderer is.
func supportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supports <renderer>",
		Short: "Check whether a renderer is supported by this preprocessor",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			os.Exit(0)
		},
	}
}

func translateCommand(flags *cli.Flags, logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <file.md>...",
		Short: "Translate standalone Markdown files outside an mdBook build",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			proc := processor.NewProcessor(flags, logger)
			return proc.RunStandalone(cmd.Context(), args)
		},
	}
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", "", "Output directory (default: next to the source with a language suffix)")
	return cmd
}

func modelsCommand(flags *cli.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List models available for the configured provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lister, err := models.NewLister(flags.Provider, cli.GetAPIKey(flags.Provider), flags.BaseURL)
			if err != nil {
				return err
			}
			return lister.ListAvailableModels(cmd.Context(), os.Stdout)
		},
	}
}

// newLogger builds the stderr logger. Stdout belongs to the
// preprocessor protocol and must stay clean.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: false,
	})
	return logger
}
