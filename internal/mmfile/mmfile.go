// Package mmfile provides platform-specific helpers for loading container
// files as read-only byte slices, memory-mapped where the platform allows.
package mmfile

// Mapping holds a file's contents. Data must not be mutated or retained past
// Close; callers that keep payload slices copy them first.
type Mapping struct {
	Data  []byte
	close func() error
}

// Close releases the mapping. Safe to call on a nil or already-closed value.
func (m *Mapping) Close() error {
	if m == nil || m.close == nil {
		return nil
	}
	fn := m.close
	m.close = nil
	return fn()
}
