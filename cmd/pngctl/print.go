package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

func init() {
	rootCmd.AddCommand(newPrintCmd())
}

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <png>",
		Short: "Print every chunk in the file",
		Long: `The print command lists each chunk in stream order with its length, type,
payload size, and CRC.

Example:
  pngctl print photo.png
  pngctl print photo.png --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(args)
		},
	}
	return cmd
}

func runPrint(args []string) error {
	pngPath := args[0]

	log.Debug().Str("path", pngPath).Msg("opening container")
	f, err := png.Open(pngPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", pngPath, err)
	}

	if jsonOut {
		type chunkInfo struct {
			Index  int    `json:"index"`
			Type   string `json:"type"`
			Length uint32 `json:"length"`
			CRC    uint32 `json:"crc"`
		}
		out := make([]chunkInfo, 0, len(f.Chunks()))
		for i, c := range f.Chunks() {
			out = append(out, chunkInfo{
				Index:  i,
				Type:   c.Type().String(),
				Length: c.Length(),
				CRC:    c.Checksum(),
			})
		}
		return printJSON(out)
	}

	for i, c := range f.Chunks() {
		printInfo("Chunk %d:\n%s\n", i, c)
	}
	return nil
}
