package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"teamflow-tracker/internal/config"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tracker",
		Short:         "Project, member and task tracker",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env は既存の環境変数を上書きしない
			return config.LoadDotEnv(".env")
		},
	}
	rootCmd.PersistentFlags().String("config", "", "config file (YAML)")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(demoCmd())

	return rootCmd
}
