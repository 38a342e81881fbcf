package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/pngkit/pkg/png"
)

var decodeLatin1 bool

func init() {
	cmd := newDecodeCmd()
	cmd.Flags().
		BoolVar(&decodeLatin1, "latin1", false, "Decode the payload as ISO 8859-1 (the tEXt character set) instead of UTF-8")
	rootCmd.AddCommand(cmd)
}

func newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <png> <type>",
		Short: "Print the message stored in a chunk",
		Long: `The decode command locates the first chunk with the given type and prints
its payload as text.

Example:
  pngctl decode stego.png ruSt
  pngctl decode photo.png teXt --latin1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(args)
		},
	}
	return cmd
}

func runDecode(args []string) error {
	pngPath, typeText := args[0], args[1]

	log.Debug().Str("path", pngPath).Msg("opening container")
	f, err := png.Open(pngPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", pngPath, err)
	}

	typ, err := png.ParseTypeCode(typeText)
	if err != nil {
		return fmt.Errorf("bad chunk type: %w", err)
	}

	c, ok := f.ChunkByType(typ)
	if !ok {
		return fmt.Errorf("no %s chunk in %s: %w", typ, pngPath, png.ErrChunkNotFound)
	}

	var message string
	if decodeLatin1 {
		message, err = c.TextLatin1()
	} else {
		message, err = c.Text()
	}
	if err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    pngPath,
			"type":    typ.String(),
			"length":  c.Length(),
			"message": message,
		})
	}
	fmt.Println(message)
	return nil
}
