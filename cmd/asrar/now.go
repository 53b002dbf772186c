package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current planetary hour and your alignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(cmd)
		},
	}
}

func runNow(cmd *cobra.Command) error {
	ctx := cmd.Context()

	when, err := parseWhen(globalWhen)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		element, err := d.UserElement()
		if err != nil {
			return err
		}

		// One reading covers everything shown here; computing the hour
		// wheel separately would run the solar math twice.
		reading, err := d.ReadingHandler.Handle(ctx, when, d.Latitude, d.Longitude, element)
		if err != nil {
			return fmt.Errorf("computing current hour: %w", err)
		}
		fmt.Print(renderCurrentHour(reading.Wheel, reading.CurrentHour, when))
		fmt.Print(renderAlignment(reading.Alignment))
		return nil
	})
}
