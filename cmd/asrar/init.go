package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zaibaitech/asrar-core/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration",
		Long:  "Writes a default .asrar/config.yaml in the current directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}
			if err := config.WriteDefault(cwd); err != nil {
				return err
			}
			fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))
			fmt.Println("Edit it to set your location and personal element.")
			return nil
		},
	}
}
