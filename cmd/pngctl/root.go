package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool

	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pngctl",
	Short: "Embed, inspect, and remove custom chunks in PNG files",
	Long: `pngctl manipulates the chunk stream of PNG files. It can embed
arbitrary payloads (such as hidden messages) as custom chunks, locate and
decode them, remove them again, and report on a file's chunk layout, all
while keeping the output byte-for-byte compliant with the container's
framing and CRC rules.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// initLogger configures the diagnostic logger from the global flags. Primary
// command output goes through printInfo; the logger carries the --verbose
// chatter on stderr so piped output stays clean.
func initLogger() {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	log = zerolog.New(output).With().Timestamp().Str("app", "pngctl").Logger()
	switch {
	case quiet:
		log = log.Level(zerolog.ErrorLevel)
	case verbose:
		log = log.Level(zerolog.DebugLevel)
	default:
		log = log.Level(zerolog.WarnLevel)
	}
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
