package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHoursCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hours",
		Short: "Show the 24 planetary hours of the solar day",
		Long:  "Computes the unequal planetary hours from sunrise to the next sunrise and their Chaldean rulers.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHours(cmd)
		},
	}
}

func runHours(cmd *cobra.Command) error {
	ctx := cmd.Context()

	when, err := parseWhen(globalWhen)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		result, err := d.HoursHandler.Handle(ctx, when, d.Latitude, d.Longitude)
		if err != nil {
			return fmt.Errorf("computing hours: %w", err)
		}
		fmt.Print(renderWheel(result.Wheel, when))
		return nil
	})
}
