package png

import "github.com/joshuapare/pngkit/internal/mmfile"

// Open parses the container file at path. The file is memory-mapped where
// the platform allows; chunk payloads are copied before the mapping is
// released, so the returned File is independent of the file on disk.
func Open(path string) (*File, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, err
	}
	defer m.Close()
	return Parse(m.Data)
}
