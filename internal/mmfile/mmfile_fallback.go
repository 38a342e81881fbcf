//go:build !unix

package mmfile

import "os"

// Open reads the entire file when mmap is not available. Container files in
// this tool are small enough that a full read is acceptable.
func Open(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{Data: data}, nil
}
