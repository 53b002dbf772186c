package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReadingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reading",
		Short: "Show a full reading: hours, dignities and alignment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReading(cmd)
		},
	}
}

func runReading(cmd *cobra.Command) error {
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

		reading, err := d.ReadingHandler.Handle(ctx, when, d.Latitude, d.Longitude, element)
		if err != nil {
			return fmt.Errorf("composing reading: %w", err)
		}

		fmt.Printf("Reading %s\n\n", dimStyle.Render(reading.ID))
		fmt.Print(renderWheel(reading.Wheel, when))
		fmt.Println()
		fmt.Print(renderAlignment(reading.Alignment))
		fmt.Println()
		for _, dig := range reading.Dignities {
			fmt.Print(renderDignity(dig, reading.Provenance))
			fmt.Println()
		}
		return nil
	})
}
