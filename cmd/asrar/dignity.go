package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zaibaitech/asrar-core/internal/domain/entities"
)

func newDignityCmd() *cobra.Command {
	var (
		signName   string
		degree     float64
		day        bool
		retrograde bool
	)

	cmd := &cobra.Command{
		Use:   "dignity <planet>",
		Short: "Evaluate a planet's essential dignity",
		Long: "Scores a planet against the seven classical dignity rules. Without --sign the\n" +
			"planet's current position is taken from the ephemeris (snapshot or approximate).",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDignity(cmd, args[0], signName, degree, day, retrograde)
		},
	}

	cmd.Flags().StringVarP(&signName, "sign", "s", "", "Evaluate a fixed placement in this sign instead of the live position")
	cmd.Flags().Float64VarP(&degree, "degree", "d", 0, "Degree within the sign, 0–29.99 (with --sign)")
	cmd.Flags().BoolVar(&day, "day", true, "Treat the chart as a day chart (with --sign)")
	cmd.Flags().BoolVar(&retrograde, "retrograde", false, "Treat the planet as retrograde (with --sign)")

	return cmd
}

func runDignity(cmd *cobra.Command, planetName, signName string, degree float64, day, retrograde bool) error {
	ctx := cmd.Context()

	planet, err := entities.ParsePlanet(planetName)
	if err != nil {
		return err
	}

	return withDeps(func(d *Deps) error {
		if signName != "" {
			sign, err := entities.ParseSign(signName)
			if err != nil {
				return err
			}
			result, err := d.DignityHandler.HandlePlacement(planet, sign, degree, day, retrograde)
			if err != nil {
				return err
			}
			fmt.Print(renderDignity(result.Result, result.Provenance))
			return nil
		}

		when, err := parseWhen(globalWhen)
		if err != nil {
			return err
		}
		result, err := d.DignityHandler.Handle(ctx, planet, when, d.Latitude, d.Longitude)
		if err != nil {
			return fmt.Errorf("evaluating dignity: %w", err)
		}
		fmt.Print(renderDignity(result.Result, result.Provenance))
		return nil
	})
}
