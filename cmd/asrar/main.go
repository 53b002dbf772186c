// Package main provides the entry point for the asrar CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"

	globalLatitude  float64
	globalLongitude float64
	globalWhen      string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "asrar",
		Short:   "Planetary hours and essential dignity from the classical tables",
		Version: version,
	}

	rootCmd.PersistentFlags().Float64Var(&globalLatitude, "lat", latitudeUnset, "Latitude override (decimal degrees, north positive)")
	rootCmd.PersistentFlags().Float64Var(&globalLongitude, "lon", longitudeUnset, "Longitude override (decimal degrees, east positive)")
	rootCmd.PersistentFlags().StringVar(&globalWhen, "at", "", "Moment to compute for (RFC 3339 or '2006-01-02 15:04'), default now")

	rootCmd.AddCommand(
		newInitCmd(),
		newHoursCmd(),
		newNowCmd(),
		newDignityCmd(),
		newReadingCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
