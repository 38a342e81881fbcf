package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <png>",
		Short: "Validate a file and report its chunk layout",
		Long: `The info command validates the container's signature and every chunk
frame, then reports totals: file size, chunk count, critical vs ancillary
chunks, and a per-type tally.

Example:
  pngctl info photo.png
  pngctl info photo.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type fileInfo struct {
	File      string         `json:"file"`
	Size      int            `json:"size"`
	Chunks    int            `json:"chunks"`
	Critical  int            `json:"critical"`
	Ancillary int            `json:"ancillary"`
	Invalid   int            `json:"invalid"`
	ByType    map[string]int `json:"by_type"`
}

func runInfo(args []string) error {
	pngPath := args[0]

	log.Debug().Str("path", pngPath).Msg("opening container")
	f, err := png.Open(pngPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", pngPath, err)
	}

	info := fileInfo{
		File:   pngPath,
		Size:   len(f.Serialize()),
		Chunks: len(f.Chunks()),
		ByType: make(map[string]int),
	}
	for _, c := range f.Chunks() {
		typ := c.Type()
		info.ByType[typ.String()]++
		if typ.IsCritical() {
			info.Critical++
		} else {
			info.Ancillary++
		}
		if !typ.IsValid() {
			info.Invalid++
		}
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nFile Information:\n")
	printInfo("  File:       %s\n", info.File)
	printInfo("  Size:       %d bytes\n", info.Size)
	printInfo("  Chunks:     %d\n", info.Chunks)
	printInfo("  Critical:   %d\n", info.Critical)
	printInfo("  Ancillary:  %d\n", info.Ancillary)
	if info.Invalid > 0 {
		printInfo("  Invalid:    %d (type codes violating the reserved bit)\n", info.Invalid)
	}
	printInfo("  Types:\n")
	seen := make(map[string]bool)
	for _, c := range f.Chunks() {
		name := c.Type().String()
		if seen[name] {
			continue
		}
		seen[name] = true
		printInfo("    %s x%d\n", name, info.ByType[name])
	}
	return nil
}
