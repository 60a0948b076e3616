package main

import (
	"os"

	"github.com/sahilchouksey/todo-monkeys/config"
	"github.com/sahilchouksey/todo-monkeys/console"
	"github.com/sahilchouksey/todo-monkeys/services/monkey"
	"github.com/sahilchouksey/todo-monkeys/utils"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		maxDistance int
		noColor     bool
	)

	rootCmd := &cobra.Command{
		Use:          "monkeys",
		Short:        "Monkey finder: browse, search and pick monkeys from the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadENV(); err != nil {
				return err
			}
			getEnv, err := config.Get()
			if err != nil {
				return err
			}
			logger, err := utils.NewLogger(getEnv.GO_ENV, getEnv.LOG_LEVEL)
			if err != nil {
				return err
			}
			defer logger.Sync()

			menu := console.NewMenu(monkey.NewService(), cmd.InOrStdin(), cmd.OutOrStdout(), console.Options{
				MaxDistance: maxDistance,
				NoColor:     noColor,
				Logger:      logger,
			})
			return menu.Run()
		},
	}

	rootCmd.Flags().IntVar(&maxDistance, "max-distance", monkey.DefaultMaxDistance, "maximum edit distance for fuzzy search")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable styled output")

	return rootCmd
}
