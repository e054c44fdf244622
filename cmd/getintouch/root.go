package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fezwebco/getintouch/pkg/config"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "getintouch",
		Short:         "Contact form backend for a portfolio site",
		Long:          `getintouch accepts "get in touch" form submissions and emails the site owner and the visitor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			if envFile == "" {
				return nil
			}
			return config.LoadEnvFile(envFile)
		},
	}

	cmd.PersistentFlags().String("env-file", "", "Load environment variables from this file before reading configuration")
	cmd.AddCommand(newServeCmd(), newPreviewCmd())
	return cmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
