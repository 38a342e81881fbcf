package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

var removeOutput string

func init() {
	cmd := newRemoveCmd()
	cmd.Flags().
		StringVarP(&removeOutput, "output", "o", "", "Write the result to this path instead of rewriting the input")
	rootCmd.AddCommand(cmd)
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <png> <type>",
		Short: "Remove the first chunk with the given type",
		Long: `The remove command deletes the first chunk whose type matches and rewrites
the file. The relative order of the remaining chunks is preserved.

Example:
  pngctl remove stego.png ruSt
  pngctl remove stego.png ruSt -o clean.png`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args)
		},
	}
	return cmd
}

func runRemove(args []string) error {
	pngPath, typeText := args[0], args[1]

	log.Debug().Str("path", pngPath).Msg("opening container")
	f, err := png.Open(pngPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", pngPath, err)
	}

	removed, err := f.RemoveChunk(typeText)
	if err != nil {
		return fmt.Errorf("failed to remove %q chunk: %w", typeText, err)
	}

	outPath := removeOutput
	if outPath == "" {
		outPath = pngPath
	}
	log.Debug().Str("path", outPath).Int("chunks", len(f.Chunks())).Msg("writing container")
	if err := f.WriteFile(outPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	printInfo("Removed %d-byte %s chunk, wrote %s\n", removed.Length(), removed.Type(), outPath)
	return nil
}
