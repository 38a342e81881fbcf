/*
Package png models a PNG datastream as its signature plus an ordered list of
chunks, without interpreting image data. It is built for embedding, locating,
and removing application-defined chunks while keeping the file compliant with
the container's framing and CRC rules.

# Quick Start

Hide a message in an existing file:

	f, err := png.Open("in.png")
	if err != nil {
	    log.Fatal(err)
	}
	typ, _ := png.ParseTypeCode("ruSt")
	f.AppendChunk(png.NewChunk(typ, []byte("secret")))
	err = f.WriteFile("out.png")

Read it back:

	f, _ := png.Open("out.png")
	if c, ok := f.ChunkByType(typ); ok {
	    msg, _ := c.Text()
	    fmt.Println(msg)
	}

# Guarantees

  - Parsing is all-or-nothing: a bad signature, truncated frame, or CRC
    mismatch yields an error and no partial File.
  - Chunk order is preserved across append, remove, and serialize.
  - Length and CRC fields are recomputed on every serialize, so a parsed
    file round-trips byte-identically.

Errors are sentinel values; test with errors.Is.
*/
package png
