package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goigc/internal/app"
)

func main() {
	config := app.DefaultConfig()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "goigc [file.igc]",
		Short: "IGC flight log decoder",
		Long: `IGC flight log decoder.

Reads an IGC-format flight recorder log line by line, decodes each record
(fixes, headers, task declarations, events, extension definitions, ...),
and writes the result as a CSV track or a JSON record stream. Malformed
lines are reported and skipped unless --strict is given.

Example usage:
  goigc flight.igc
  goigc --format json --output flight.json flight.igc
  goigc --strict --output track.csv.gz --gzip flight.igc`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				app.ShowVersion()
				return nil
			}

			if configFile != "" {
				fromFlags := config
				if err := config.LoadFile(configFile); err != nil {
					return err
				}
				// Flags given explicitly win over config file values.
				if cmd.Flags().Changed("output") {
					config.OutputPath = fromFlags.OutputPath
				}
				if cmd.Flags().Changed("format") {
					config.Format = fromFlags.Format
				}
				if cmd.Flags().Changed("gzip") {
					config.Gzip = fromFlags.Gzip
				}
				if cmd.Flags().Changed("strict") {
					config.Strict = fromFlags.Strict
				}
				if cmd.Flags().Changed("verbose") {
					config.Verbose = fromFlags.Verbose
				}
			}

			if len(args) == 1 {
				config.InputPath = args[0]
			}

			application := app.NewApplication(config)
			return application.Run()
		},
	}

	rootCmd.Flags().StringVarP(&config.OutputPath, "output", "o", "", "Output file (default stdout)")
	rootCmd.Flags().StringVarP(&config.Format, "format", "f", config.Format, "Output format: csv or json")
	rootCmd.Flags().BoolVarP(&config.Gzip, "gzip", "z", false, "Gzip-compress the output file")
	rootCmd.Flags().BoolVarP(&config.Strict, "strict", "s", false, "Abort on the first malformed line")
	rootCmd.Flags().BoolVarP(&config.Verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML config file")
	rootCmd.Flags().BoolVar(&config.ShowVersion, "version", false, "Show version information")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
